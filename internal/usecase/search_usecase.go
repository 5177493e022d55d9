package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"jobboard/internal/domain/matching"
	"jobboard/internal/domain/profile"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type SearchParams struct {
	Query    string
	UserID   *uuid.UUID
	Location string
	JobType  string
	Limit    int
	Offset   int
}

type SearchUsecase interface {
	Search(ctx context.Context, params SearchParams) ([]RankedJob, error)
}

type Search struct {
	users     repository.UserRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	cache     RankingCache
	logger    *log.Logger
}

func NewSearchUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	cache RankingCache,
	logger *log.Logger,
) *Search {
	return &Search{users: users, jobs: jobs, companies: companies, cache: cache, logger: logger}
}

// Search ranks the catalog's text-search results. A known caller gets
// profile-based scoring; anonymous callers get query-relevance scoring.
// Unlike recommendations there is no minimum-score filter and no
// truncation beyond the catalog query's own paging.
func (u *Search) Search(ctx context.Context, params SearchParams) ([]RankedJob, error) {
	if params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	cacheKey := SearchCacheKey(params)
	lockKey := SearchLockKey(cacheKey)
	if u.cache != nil {
		var cached []RankedJob
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Search] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	lockAcquired := false
	if u.cache != nil {
		if ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second); err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			// another request is computing the same search; give it a
			// moment, then fall through and compute ourselves
			time.Sleep(300 * time.Millisecond)
			var cached []RankedJob
			if hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached); err2 == nil && hit {
				return cached, nil
			}
		}
	}

	prof := u.resolveProfile(ctx, params.UserID)

	jobs, err := u.jobs.Search(ctx, params.Query, repository.JobSearchFilter{
		Location: params.Location,
		JobType:  params.JobType,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		return nil, ErrInternal
	}

	companyByID, err := batchCompanies(ctx, u.companies, jobs)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		c, ok := companyByID[j.CompanyID]
		if !ok {
			continue
		}

		var res matching.MatchResult
		if prof != nil {
			res = matching.ScoreJob(*prof, j)
		} else {
			res = matching.ScoreByRelevance(params.Query, j)
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

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

// resolveProfile returns nil for anonymous or unknown callers, which
// switches scoring to relevance-only mode.
func (u *Search) resolveProfile(ctx context.Context, userID *uuid.UUID) *profile.CandidateProfile {
	if userID == nil || *userID == uuid.Nil {
		return nil
	}
	usr, err := u.users.GetByID(ctx, *userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) && u.logger != nil {
			u.logger.Printf("[Search] user lookup failed, falling back to relevance: %v", err)
		}
		return nil
	}
	p := profile.Extract(usr)
	return &p
}
