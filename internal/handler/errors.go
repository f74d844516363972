package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andripeetso/group-calendar-scheduler/internal/middleware"
)

// storeError maps a non-domain failure onto the API envelope. Connectivity
// trouble (timeouts, errors raised before the server saw the statement) is
// 503 so clients can retry; anything else is 500. Writes are single
// transactions, so neither case leaves a partial effect.
func storeError(c fiber.Ctx, err error, message string) error {
	if isTransient(err) {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE",
			"Database temporarily unavailable. Please try again.")
	}
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", message)
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	// True when the failure happened before any part of the statement
	// reached the server, so a retry cannot double-apply.
	return pgconn.SafeToRetry(err)
}
