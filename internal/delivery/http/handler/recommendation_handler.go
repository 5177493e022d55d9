package handler

import (
	"errors"
	"strconv"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc           usecase.RecommendationUsecase
	defaultLimit int
}

// NewRecommendationHandler builds the handler. defaultLimit applies when
// the request omits limit; zero defers to the usecase default.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, defaultLimit int) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, defaultLimit: defaultLimit}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := callerUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing or invalid userId", nil, nil)
	}

	limit := parseQueryInt(c, "limit", h.defaultLimit)

	items, err := h.uc.GetRecommendations(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponses(items))
}

// callerUserID prefers the identity middleware's resolution, falling
// back to the userId query parameter.
func callerUserID(c fiber.Ctx) (uuid.UUID, bool) {
	if id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok && id != uuid.Nil {
		return id, true
	}
	raw := c.Query("userId")
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
