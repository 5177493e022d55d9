package usecase

import (
	"context"
	"errors"
	"sort"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/matching"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

// similarityMinScore is the floor for a posting to count as similar.
const similarityMinScore = 0.4

const (
	defaultSimilarJobsLimit = 5
	maxSimilarJobsLimit     = 50
)

type SimilarJob struct {
	Job        job.Job
	Similarity float64
}

type SimilarJobsUsecase interface {
	GetSimilarJobs(ctx context.Context, jobID uuid.UUID, limit int) ([]SimilarJob, error)
}

type SimilarJobs struct {
	jobs repository.JobRepository
}

func NewSimilarJobsUsecase(jobs repository.JobRepository) *SimilarJobs {
	return &SimilarJobs{jobs: jobs}
}

// GetSimilarJobs lists active postings resembling the target. A missing
// target degrades to an empty list; the target never appears in its own
// results.
func (u *SimilarJobs) GetSimilarJobs(ctx context.Context, jobID uuid.UUID, limit int) ([]SimilarJob, error) {
	if limit <= 0 {
		limit = defaultSimilarJobsLimit
	}
	if limit > maxSimilarJobsLimit {
		limit = maxSimilarJobsLimit
	}

	target, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return []SimilarJob{}, nil
		}
		return nil, ErrInternal
	}

	all, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SimilarJob, 0, len(all))
	for _, j := range all {
		if !j.IsActive || j.ID == target.ID {
			continue
		}
		sim := matching.Similarity(target, j)
		if sim <= similarityMinScore {
			continue
		}
		out = append(out, SimilarJob{Job: j, Similarity: sim})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
