package routes

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health          *handler.HealthHandler
	recommendations *handler.RecommendationHandler
	similar         *handler.SimilarJobsHandler
	search          *handler.SearchHandler
	identity        *middleware.IdentityMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	recommendations *handler.RecommendationHandler,
	similar *handler.SimilarJobsHandler,
	search *handler.SearchHandler,
	identity *middleware.IdentityMiddleware,
) *Registry {
	return &Registry{
		health:          health,
		recommendations: recommendations,
		similar:         similar,
		search:          search,
		identity:        identity,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1", r.identity.Middleware())

	jobs := v1.Group("/jobs")
	r.recommendations.RegisterRoutes(jobs)
	r.search.RegisterRoutes(jobs)
	// registered last so /recommendations and /search never collide
	// with the :id parameter
	r.similar.RegisterRoutes(jobs)
}
