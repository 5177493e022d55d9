package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

func TestSearch_AnonymousUsesRelevance(t *testing.T) {
	companyID := uuid.New()
	titleHit := job.Job{ID: uuid.New(), CompanyID: companyID,
		Title: "React Developer", Description: "Frontend work.",
		RequiredSkills: []string{"React"}, IsActive: true}
	descHit := job.Job{ID: uuid.New(), CompanyID: companyID,
		Title: "Frontend Engineer", Description: "We use react heavily.",
		RequiredSkills: []string{"CSS"}, IsActive: true}

	uc := NewSearchUsecase(
		mockUserRepo{},
		mockJobRepo{jobs: []job.Job{descHit, titleHit}},
		mockCompanyRepo{companies: map[uuid.UUID]job.Company{companyID: {ID: companyID, Name: "Acme"}}},
		nil, nil,
	)

	out, err := uc.Search(context.Background(), SearchParams{Query: "react"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out))
	}
	// title (0.4) + skills (0.3) beats description (0.3)
	if out[0].Job.ID != titleHit.ID {
		t.Fatalf("expected title match first, got %q", out[0].Job.Title)
	}
	if out[0].MatchScore <= out[1].MatchScore {
		t.Fatalf("results not sorted descending: %v then %v", out[0].MatchScore, out[1].MatchScore)
	}
	if len(out[0].SkillsMissing) != 0 {
		t.Fatalf("relevance mode must leave SkillsMissing empty, got %v", out[0].SkillsMissing)
	}
}

func TestSearch_KnownUserUsesProfileScoring(t *testing.T) {
	userID := uuid.New()
	companyID := uuid.New()
	j := job.Job{ID: uuid.New(), CompanyID: companyID, Title: "Backend Engineer",
		RequiredSkills: []string{"Go", "Rust"}, ExperienceLevel: "mid", IsActive: true}

	uc := NewSearchUsecase(
		mockUserRepo{users: map[uuid.UUID]user.User{userID: {
			ID: userID, Skills: []string{"Go"}, Experience: "mid",
		}}},
		mockJobRepo{jobs: []job.Job{j}},
		mockCompanyRepo{companies: map[uuid.UUID]job.Company{companyID: {ID: companyID}}},
		nil, nil,
	)

	out, err := uc.Search(context.Background(), SearchParams{Query: "backend", UserID: &userID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	// profile scorer classifies required skills; relevance mode would not
	if len(out[0].SkillsMissing) != 1 || out[0].SkillsMissing[0] != "Rust" {
		t.Fatalf("expected profile-based skill classification, got missing=%v", out[0].SkillsMissing)
	}
}

func TestSearch_UnknownUserFallsBackToRelevance(t *testing.T) {
	ghost := uuid.New()
	companyID := uuid.New()
	j := job.Job{ID: uuid.New(), CompanyID: companyID, Title: "Data Engineer",
		RequiredSkills: []string{"Spark"}, IsActive: true}

	uc := NewSearchUsecase(
		mockUserRepo{users: map[uuid.UUID]user.User{}},
		mockJobRepo{jobs: []job.Job{j}},
		mockCompanyRepo{companies: map[uuid.UUID]job.Company{companyID: {ID: companyID}}},
		nil, nil,
	)

	out, err := uc.Search(context.Background(), SearchParams{Query: "data", UserID: &ghost})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	if len(out[0].MatchReasons) != 1 || out[0].MatchReasons[0] != "Title matches search" {
		t.Fatalf("expected relevance reasons, got %v", out[0].MatchReasons)
	}
}

func TestSearch_NoThresholdApplied(t *testing.T) {
	companyID := uuid.New()
	j := job.Job{ID: uuid.New(), CompanyID: companyID, Title: "Accountant", IsActive: true}

	uc := NewSearchUsecase(
		mockUserRepo{},
		mockJobRepo{jobs: []job.Job{j}},
		mockCompanyRepo{companies: map[uuid.UUID]job.Company{companyID: {ID: companyID}}},
		nil, nil,
	)

	out, err := uc.Search(context.Background(), SearchParams{Query: "golang"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// zero-score results still come back in search, unlike recommendations
	if len(out) != 1 || out[0].MatchScore != 0 {
		t.Fatalf("expected one zero-score result, got %v", out)
	}
}

func TestSearch_SkipsJobsWithMissingCompany(t *testing.T) {
	j := job.Job{ID: uuid.New(), CompanyID: uuid.New(), Title: "Orphan", IsActive: true}

	uc := NewSearchUsecase(
		mockUserRepo{},
		mockJobRepo{jobs: []job.Job{j}},
		mockCompanyRepo{companies: map[uuid.UUID]job.Company{}},
		nil, nil,
	)

	out, err := uc.Search(context.Background(), SearchParams{Query: "orphan"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected orphan job skipped, got %d results", len(out))
	}
}

func TestSearch_NegativeOffsetInvalid(t *testing.T) {
	uc := NewSearchUsecase(mockUserRepo{}, mockJobRepo{}, mockCompanyRepo{}, nil, nil)
	if _, err := uc.Search(context.Background(), SearchParams{Offset: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
