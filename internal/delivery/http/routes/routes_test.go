package routes

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type matchItem struct {
	Job struct {
		JobID uuid.UUID `json:"job_id"`
		Title string    `json:"title"`
	} `json:"job"`
	MatchScore    float64  `json:"match_score"`
	MatchReasons  []string `json:"match_reasons"`
	SkillsMissing []string `json:"skills_missing"`
}

type similarItem struct {
	Job struct {
		JobID uuid.UUID `json:"job_id"`
	} `json:"job"`
	Similarity float64 `json:"similarity"`
}

type stubRecommendations struct {
	gotUserID uuid.UUID
	gotLimit  int
	items     []usecase.RankedJob
	err       error
}

func (s *stubRecommendations) GetRecommendations(_ context.Context, userID uuid.UUID, limit int) ([]usecase.RankedJob, error) {
	s.gotUserID = userID
	s.gotLimit = limit
	return s.items, s.err
}

type stubSimilarJobs struct {
	gotJobID uuid.UUID
	items    []usecase.SimilarJob
	err      error
}

func (s *stubSimilarJobs) GetSimilarJobs(_ context.Context, jobID uuid.UUID, _ int) ([]usecase.SimilarJob, error) {
	s.gotJobID = jobID
	return s.items, s.err
}

type stubSearch struct {
	gotParams usecase.SearchParams
	items     []usecase.RankedJob
	err       error
}

func (s *stubSearch) Search(_ context.Context, params usecase.SearchParams) ([]usecase.RankedJob, error) {
	s.gotParams = params
	return s.items, s.err
}

func newTestApp(rec usecase.RecommendationUsecase, sim usecase.SimilarJobsUsecase, search usecase.SearchUsecase, jwtSvc jwt.Service) *fiber.App {
	logger := log.New(io.Discard, "", 0)

	f := fiber.New()
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := NewRegistry(
		handler.NewHealthHandler(nil, nil),
		handler.NewRecommendationHandler(rec, 0),
		handler.NewSimilarJobsHandler(sim, 0),
		handler.NewSearchHandler(search),
		middleware.NewIdentityMiddleware(jwtSvc),
	)
	registry.Register(f)
	return f
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestRecommendationsRouteWithQueryUserID(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()
	rec := &stubRecommendations{
		items: []usecase.RankedJob{{
			Job:           job.Job{ID: jobID, Title: "Backend Engineer"},
			Company:       job.Company{Name: "Acme"},
			MatchScore:    0.8,
			MatchReasons:  []string{"Strong skills match (3/4 skills)"},
			SkillsMatched: []string{"Go"},
		}},
	}
	app := newTestApp(rec, &stubSimilarJobs{}, &stubSearch{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/recommendations?userId="+userID.String()+"&limit=3", nil)
	status, env := doRequest(t, app, req)

	if status != http.StatusOK || env.Status != http.StatusOK {
		t.Fatalf("status = %d / envelope %d, want 200", status, env.Status)
	}
	if rec.gotUserID != userID {
		t.Errorf("usecase saw user %s, want %s", rec.gotUserID, userID)
	}
	if rec.gotLimit != 3 {
		t.Errorf("usecase saw limit %d, want 3", rec.gotLimit)
	}

	var items []matchItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Job.JobID != jobID || items[0].MatchScore != 0.8 {
		t.Errorf("item = %+v", items[0])
	}
	if items[0].SkillsMissing == nil {
		t.Errorf("skills_missing should encode as an empty array, not null")
	}
}

func TestRecommendationsRouteWithBearerToken(t *testing.T) {
	userID := uuid.New()
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	token, err := jwtSvc.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rec := &stubRecommendations{}
	app := newTestApp(rec, &stubSimilarJobs{}, &stubSearch{}, jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	status, _ := doRequest(t, app, req)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if rec.gotUserID != userID {
		t.Errorf("usecase saw user %s, want token subject %s", rec.gotUserID, userID)
	}
}

func TestRecommendationsRouteWithoutIdentity(t *testing.T) {
	app := newTestApp(&stubRecommendations{}, &stubSimilarJobs{}, &stubSearch{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/recommendations", nil)
	status, env := doRequest(t, app, req)

	if status != http.StatusBadRequest || env.Status != http.StatusBadRequest {
		t.Fatalf("status = %d / envelope %d, want 400", status, env.Status)
	}
}

func TestRecommendationsRouteHidesInternalErrors(t *testing.T) {
	rec := &stubRecommendations{err: usecase.ErrInternal}
	app := newTestApp(rec, &stubSimilarJobs{}, &stubSearch{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/recommendations?userId="+uuid.NewString(), nil)
	status, env := doRequest(t, app, req)

	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if env.Message != "internal server error" {
		t.Errorf("message = %q, internal detail must not leak", env.Message)
	}
}

func TestSimilarJobsRoute(t *testing.T) {
	targetID := uuid.New()
	otherID := uuid.New()
	sim := &stubSimilarJobs{
		items: []usecase.SimilarJob{{Job: job.Job{ID: otherID}, Similarity: 0.75}},
	}
	app := newTestApp(&stubRecommendations{}, sim, &stubSearch{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+targetID.String()+"/similar", nil)
	status, env := doRequest(t, app, req)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if sim.gotJobID != targetID {
		t.Errorf("usecase saw job %s, want %s", sim.gotJobID, targetID)
	}

	var items []similarItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 1 || items[0].Job.JobID != otherID || items[0].Similarity != 0.75 {
		t.Errorf("items = %+v", items)
	}
}

func TestSimilarJobsRouteRejectsBadID(t *testing.T) {
	app := newTestApp(&stubRecommendations{}, &stubSimilarJobs{}, &stubSearch{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/not-a-uuid/similar", nil)
	status, _ := doRequest(t, app, req)

	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestSearchRouteAnonymous(t *testing.T) {
	search := &stubSearch{}
	app := newTestApp(&stubRecommendations{}, &stubSimilarJobs{}, search, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/search?query=go&location=Remote&job_type=full-time&limit=5&offset=10", nil)
	status, _ := doRequest(t, app, req)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	got := search.gotParams
	want := usecase.SearchParams{Query: "go", Location: "Remote", JobType: "full-time", Limit: 5, Offset: 10}
	if got.Query != want.Query || got.Location != want.Location || got.JobType != want.JobType ||
		got.Limit != want.Limit || got.Offset != want.Offset {
		t.Errorf("params = %+v, want %+v", got, want)
	}
	if got.UserID != nil {
		t.Errorf("anonymous search must not carry a user ID, got %v", got.UserID)
	}
}

func TestSearchRouteRejectsNegativeOffset(t *testing.T) {
	search := &stubSearch{err: usecase.ErrInvalidInput}
	app := newTestApp(&stubRecommendations{}, &stubSimilarJobs{}, search, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/search?offset=-1", nil)
	status, _ := doRequest(t, app, req)

	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(&stubRecommendations{}, &stubSimilarJobs{}, &stubSearch{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	status, env := doRequest(t, app, req)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var checks map[string]string
	if err := json.Unmarshal(env.Data, &checks); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if checks["database"] != "not configured" || checks["cache"] != "not configured" {
		t.Errorf("checks = %v", checks)
	}
}
