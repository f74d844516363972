package middleware

import (
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v3"
)

// Field limits matching database schema expectations.
const (
	MaxVoterNameLen = 64
	MaxHeaderLen    = 2048
	// One whole window at day granularity can never legitimately exceed
	// a few years of dates; anything bigger is a malformed request.
	MaxDatesPerSubmission = 366
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVoterName trims and checks a voter name. Names are case-sensitive
// identifiers, so only whitespace is normalized. Returns the cleaned name
// and an error message ("" when valid).
func ValidateVoterName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "voter name is required"
	}
	if len(name) > MaxVoterNameLen {
		return "", "voter name must be at most 64 characters"
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", "voter name contains invalid characters"
		}
	}
	return name, ""
}

// ValidateDateList bounds the shape of a submitted date list before the
// service parses the individual dates.
func ValidateDateList(dates []string) string {
	if len(dates) == 0 {
		return "at least one date is required"
	}
	if len(dates) > MaxDatesPerSubmission {
		return "too many dates in one submission"
	}
	return ""
}

// ValidateHeaderText bounds the admin header message.
func ValidateHeaderText(text string) string {
	if len(text) > MaxHeaderLen {
		return "header text must be at most 2048 characters"
	}
	return ""
}
