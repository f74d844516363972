package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/andripeetso/group-calendar-scheduler/internal/middleware"
	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/service"
)

type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler(svc *service.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// Submit handles POST /api/votes
func (h *VoteHandler) Submit(c fiber.Ctx) error {
	var req model.VoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateVoterName(req.VoterName)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}
	req.VoterName = name

	if errMsg := middleware.ValidateDateList(req.Dates); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}

	resp, err := h.svc.Submit(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, model.ErrUnknownVoter):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "UNKNOWN_VOTER",
				"No such voter on the roster")
		case errors.Is(err, model.ErrAlreadyVoted):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_VOTED",
				"This voter has already voted")
		default:
			return storeError(c, err, "Failed to submit vote")
		}
	}

	Metrics.SubmissionsTotal.Inc()
	return c.JSON(resp)
}

// Delete handles DELETE /api/votes — a voter withdrawing their own vote.
// Idempotent: deleting a vote that does not exist succeeds.
func (h *VoteHandler) Delete(c fiber.Ctx) error {
	var req model.VoteDeleteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateVoterName(req.VoterName)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}

	if err := h.svc.ResetOne(c.Context(), name); err != nil {
		if errors.Is(err, model.ErrValidation) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}
		return storeError(c, err, "Failed to delete vote")
	}

	Metrics.ResetsTotal.WithLabelValues("one").Inc()
	return c.JSON(fiber.Map{"success": true})
}

// List handles GET /api/admin/votes
func (h *VoteHandler) List(c fiber.Ctx) error {
	votes, err := h.svc.ListVotes(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to list votes")
	}
	if votes == nil {
		votes = []model.VoterDates{}
	}
	return c.JSON(votes)
}

// DeleteAll handles DELETE /api/admin/votes/all
func (h *VoteHandler) DeleteAll(c fiber.Ctx) error {
	if err := h.svc.ResetAll(c.Context()); err != nil {
		return storeError(c, err, "Failed to delete all votes")
	}

	Metrics.ResetsTotal.WithLabelValues("all").Inc()
	return c.JSON(fiber.Map{"success": true})
}
