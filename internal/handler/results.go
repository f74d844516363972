package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/andripeetso/group-calendar-scheduler/internal/middleware"
	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/service"
)

type ResultsHandler struct {
	svc *service.OverlapService
}

func NewResultsHandler(svc *service.OverlapService) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// GetOverlap handles GET /api/overlap — the aggregated per-date tallies.
func (h *ResultsHandler) GetOverlap(c fiber.Ctx) error {
	results, err := h.svc.Overlap(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to aggregate votes")
	}
	if results == nil {
		results = []model.DateOverlap{}
	}
	return c.JSON(results)
}

// GetDay handles GET /api/overlap/day?date=YYYY-MM-DD — one date's count
// plus the voters who submitted anything partitioned into available and
// unavailable. maxCount is the global maximum for intensity scaling.
func (h *ResultsHandler) GetDay(c fiber.Ctx) error {
	date := fiber.Query[string](c, "date")
	if _, err := time.ParseInLocation(time.DateOnly, date, time.UTC); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR",
			"date must be a calendar date (YYYY-MM-DD)")
	}

	results, err := h.svc.Overlap(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to aggregate votes")
	}

	available, unavailable := service.PartitionVoters(results, date)
	if available == nil {
		available = []string{}
	}
	if unavailable == nil {
		unavailable = []string{}
	}

	return c.JSON(fiber.Map{
		"date":        date,
		"count":       len(available),
		"available":   available,
		"unavailable": unavailable,
		"maxCount":    service.MaxCount(results),
	})
}
