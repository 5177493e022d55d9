package usecase

import (
	"context"
	"errors"
	"log"
	"sort"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/matching"
	"jobboard/internal/domain/profile"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

// recommendationMinScore is the floor a job must clear to be shown as a
// recommendation. Ranked search applies no such floor.
const recommendationMinScore = 0.3

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

// RankedJob is one scored catalog entry, the shared result shape of
// recommendations and ranked search.
type RankedJob struct {
	Job           job.Job
	Company       job.Company
	MatchScore    float64
	MatchReasons  []string
	SkillsMatched []string
	SkillsMissing []string
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]RankedJob, error)
}

type Recommendation struct {
	users     repository.UserRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	cache     RankingCache
	logger    *log.Logger
}

func NewRecommendationUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	cache RankingCache,
	logger *log.Logger,
) *Recommendation {
	return &Recommendation{users: users, jobs: jobs, companies: companies, cache: cache, logger: logger}
}

// GetRecommendations ranks the active catalog for one candidate. A
// missing user degrades to an empty list rather than an error; the page
// showing recommendations should render empty, not break.
func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]RankedJob, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	cacheKey := RecommendationCacheKey(userID, limit)
	if u.cache != nil {
		var cached []RankedJob
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Recommend] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []RankedJob{}, nil
		}
		return nil, ErrInternal
	}
	prof := profile.Extract(usr)

	jobs, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	active := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.IsActive {
			active = append(active, j)
		}
	}

	companyByID, err := u.resolveCompanies(ctx, active)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RankedJob, 0, len(active))
	for _, j := range active {
		c, ok := companyByID[j.CompanyID]
		if !ok {
			continue
		}
		res := matching.ScoreJob(prof, j)
		if res.MatchScore <= recommendationMinScore {
			continue
		}
		out = append(out, RankedJob{
			Job:           j,
			Company:       c,
			MatchScore:    res.MatchScore,
			MatchReasons:  res.MatchReasons,
			SkillsMatched: res.SkillsMatched,
			SkillsMissing: res.SkillsMissing,
		})
	}

	// stable: equal scores keep catalog order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if len(out) > limit {
		out = out[:limit]
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}
	return out, nil
}

// resolveCompanies batches the company lookups for a candidate job set
// into a single query keyed by the distinct company IDs.
func (u *Recommendation) resolveCompanies(ctx context.Context, jobs []job.Job) (map[uuid.UUID]job.Company, error) {
	return batchCompanies(ctx, u.companies, jobs)
}

func batchCompanies(ctx context.Context, companies repository.CompanyRepository, jobs []job.Job) (map[uuid.UUID]job.Company, error) {
	seen := make(map[uuid.UUID]struct{}, len(jobs))
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		if j.CompanyID == uuid.Nil {
			continue
		}
		if _, ok := seen[j.CompanyID]; ok {
			continue
		}
		seen[j.CompanyID] = struct{}{}
		ids = append(ids, j.CompanyID)
	}
	return companies.FindByIDs(ctx, ids)
}
