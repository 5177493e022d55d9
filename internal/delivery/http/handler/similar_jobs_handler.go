package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SimilarJobsHandler struct {
	uc           usecase.SimilarJobsUsecase
	defaultLimit int
}

func NewSimilarJobsHandler(uc usecase.SimilarJobsUsecase, defaultLimit int) *SimilarJobsHandler {
	return &SimilarJobsHandler{uc: uc, defaultLimit: defaultLimit}
}

func (h *SimilarJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/similar", h.GetSimilarJobs)
}

func (h *SimilarJobsHandler) GetSimilarJobs(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	limit := parseQueryInt(c, "limit", h.defaultLimit)

	items, err := h.uc.GetSimilarJobs(c.Context(), jobID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSimilarJobResponses(items))
}
