package handler

import (
	"context"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	checks := fiber.Map{}

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "not configured"
	} else if err := h.db.Ping(c.Context()); err != nil {
		dbStatus = "unreachable"
	}
	checks["database"] = dbStatus

	cacheStatus := "ok"
	if h.cache == nil {
		cacheStatus = "not configured"
	} else if err := h.cache.Ping(c.Context()); err != nil {
		// the cache is best-effort, so a dead Redis only degrades
		cacheStatus = "unreachable"
	}
	checks["cache"] = cacheStatus

	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
