package model

import (
	"errors"
	"fmt"
)

// Domain error kinds. Handlers map these to API error codes; everything else
// coming out of the repositories is treated as a store failure.
var (
	ErrValidation    = errors.New("validation failed")
	ErrUnknownVoter  = errors.New("unknown voter")
	ErrAlreadyVoted  = errors.New("voter has already voted")
	ErrDuplicateName = errors.New("voter name already exists")
	ErrNotFound      = errors.New("not found")
)

// Validationf wraps ErrValidation with detail so callers can both match the
// kind with errors.Is and surface the message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
