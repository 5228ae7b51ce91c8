package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/vooz/donation-processor/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error raised during operation to a domain error.
// The driver message is kept in the wrapped text for logs.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrDonationNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation timed out: %w", errs.ErrDatabaseConnection, operation, err)
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "violates"):
		return fmt.Errorf("%w: %s: %s", errs.ErrConstraintViolation, operation, err.Error())

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out: %s", errs.ErrDatabaseConnection, operation, err.Error())

	default:
		return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
	}
}
