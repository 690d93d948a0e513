package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error classes. Every failure crossing a component boundary wraps exactly
// one of these so the orchestrator can choose cooldown and retry behavior.
var (
	// ErrInfrastructure covers storage/database/NLP unavailability; retried
	// at the next scheduled pass.
	ErrInfrastructure = errors.New("infrastructure error")
	// ErrRateLimit is an NLP 429; same retry accounting, longer cooldown.
	ErrRateLimit = errors.New("rate limited")
	// ErrValidation covers malformed metadata or empty extracted text; the
	// item is skipped and logged, never retried inline.
	ErrValidation = errors.New("validation failed")
	// ErrQuarantined marks a PDF moved to the failed bucket after the
	// extraction retry ceiling; requires manual reprocessing.
	ErrQuarantined = errors.New("quarantined")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsRateLimit reports whether err is rate-limit-class (longer cooldown).
func IsRateLimit(err error) bool {
	return errors.Is(err, ErrRateLimit)
}

// IsValidation reports whether err is validation-class (skip, no retry).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
