package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/andripeetso/group-calendar-scheduler/internal/middleware"
	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/service"
)

type RosterHandler struct {
	svc *service.AdminService
}

func NewRosterHandler(svc *service.AdminService) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// List handles GET /api/voters — public, so the client can render the
// voter picker with per-voter voted status.
func (h *RosterHandler) List(c fiber.Ctx) error {
	voters, err := h.svc.ListVoters(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to list voters")
	}
	if voters == nil {
		voters = []model.Voter{}
	}
	return c.JSON(voters)
}

// Add handles POST /api/admin/voters
func (h *RosterHandler) Add(c fiber.Ctx) error {
	var req model.AddVoterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateVoterName(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}

	if err := h.svc.AddVoter(c.Context(), name); err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, model.ErrDuplicateName):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "DUPLICATE_NAME",
				"A voter with this name already exists")
		default:
			return storeError(c, err, "Failed to add voter")
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

// Remove handles DELETE /api/admin/voters. The voter's cast submission, if
// any, stays in the results.
func (h *RosterHandler) Remove(c fiber.Ctx) error {
	var req model.RemoveVoterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateVoterName(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}

	if err := h.svc.RemoveVoter(c.Context(), name); err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND",
				"No such voter on the roster")
		default:
			return storeError(c, err, "Failed to remove voter")
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
