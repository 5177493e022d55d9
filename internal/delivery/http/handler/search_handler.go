package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/search", h.Search)
}

func (h *SearchHandler) Search(c fiber.Ctx) error {
	params := usecase.SearchParams{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Limit:    parseQueryInt(c, "limit", 0),
		Offset:   parseQueryInt(c, "offset", 0),
	}

	// identity is optional here: anonymous searches rank by relevance
	if id, ok := callerUserID(c); ok {
		params.UserID = &id
	}

	items, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponses(items))
}
