package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/andripeetso/group-calendar-scheduler/internal/middleware"
	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/service"
)

// ConfigHandler serves the two singleton settings: the voting window and
// the header message. Reads are public; writes sit behind the admin gate.
type ConfigHandler struct {
	window *service.WindowService
	admin  *service.AdminService
}

func NewConfigHandler(window *service.WindowService, admin *service.AdminService) *ConfigHandler {
	return &ConfigHandler{window: window, admin: admin}
}

// GetWindow handles GET /api/window. An unset window comes back as null,
// which the client renders as "no months available".
func (h *ConfigHandler) GetWindow(c fiber.Ctx) error {
	window, err := h.window.Get(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to fetch voting window")
	}
	if window == nil {
		return c.JSON(nil)
	}
	return c.JSON(model.WindowResponse{
		StartDate: window.StartDate.Format(time.DateOnly),
		EndDate:   window.EndDate.Format(time.DateOnly),
	})
}

// GetCalendar handles GET /api/window/months — the window's months with
// their currently selectable dates. "Today" is evaluated per request.
func (h *ConfigHandler) GetCalendar(c fiber.Ctx) error {
	months, err := h.window.Calendar(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to compute calendar")
	}
	return c.JSON(months)
}

// SetWindow handles PUT /api/admin/window.
func (h *ConfigHandler) SetWindow(c fiber.Ctx) error {
	var req model.WindowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if err := h.window.Set(c.Context(), req); err != nil {
		if errors.Is(err, model.ErrValidation) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}
		return storeError(c, err, "Failed to update voting window")
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetHeader handles GET /api/header.
func (h *ConfigHandler) GetHeader(c fiber.Ctx) error {
	text, err := h.admin.GetHeader(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to fetch header text")
	}
	return c.JSON(model.HeaderResponse{Text: text})
}

// SetHeader handles PUT /api/admin/header. Any string is accepted, empty
// included.
func (h *ConfigHandler) SetHeader(c fiber.Ctx) error {
	var req model.HeaderRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if errMsg := middleware.ValidateHeaderText(req.Text); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}

	if err := h.admin.SetHeader(c.Context(), req.Text); err != nil {
		return storeError(c, err, "Failed to update header text")
	}

	return c.JSON(model.HeaderResponse{Text: req.Text})
}
