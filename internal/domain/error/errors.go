package error

import (
	"context"
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest     = 4000
	CodeInvalidSubmission  = 4001
	CodeInvalidPaymentData = 4002
	CodeInvalidDonationID  = 4003
	CodeInvalidInvoiceID   = 4004
	CodeStatusConflict     = 4009
	CodeInvalidSignature   = 4010
	CodeDonationNotFound   = 4040
	CodeRefundNotAllowed   = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeGatewayUnavailable = 5020
	CodeGatewayTimeout     = 5040
)

// Base error types
var (
	// ErrInvalidSignature is returned when a webhook body does not match its X-Content-HMAC header
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidPaymentData is returned when a parsed payment event fails the validity check
	ErrInvalidPaymentData = errors.New("invalid payment data")

	// ErrInvalidInvoiceID is returned when an invoice reference does not encode a donation id
	ErrInvalidInvoiceID = errors.New("invalid invoice ID")

	// ErrInvalidSubmission is returned when a donation form submission has field errors
	ErrInvalidSubmission = errors.New("invalid donation submission")

	// ErrInvalidDonationID is returned when a donation id is zero or malformed
	ErrInvalidDonationID = errors.New("donation ID must be positive")

	// ErrInvalidAmount is returned when an amount cannot be parsed as money
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidStatus is returned for an unknown payment status value
	ErrInvalidStatus = errors.New("invalid payment status")

	// ErrDonationNotFound is returned when the requested donation doesn't exist
	ErrDonationNotFound = errors.New("donation not found")

	// ErrStatusConflict is returned when a transition would overwrite a terminal status
	ErrStatusConflict = errors.New("payment status is already terminal")

	// ErrRefundNotAllowed is returned when a donation has no settled transaction to refund
	ErrRefundNotAllowed = errors.New("donation cannot be refunded")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrGatewayUnavailable is returned when the payment processor API cannot be reached
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayTimeout is returned when a payment processor API call exceeds its deadline
	ErrGatewayTimeout = errors.New("payment gateway timeout")

	// ErrNotificationQueueFull is returned when the notification queue cannot accept more events
	ErrNotificationQueueFull = errors.New("notification queue is full")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSubmission):
		return CodeInvalidSubmission
	case errors.Is(err, ErrInvalidPaymentData), errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidStatus):
		return CodeInvalidPaymentData
	case errors.Is(err, ErrInvalidDonationID):
		return CodeInvalidDonationID
	case errors.Is(err, ErrInvalidInvoiceID):
		return CodeInvalidInvoiceID
	case errors.Is(err, ErrStatusConflict):
		return CodeStatusConflict
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrDonationNotFound):
		return CodeDonationNotFound
	case errors.Is(err, ErrRefundNotAllowed):
		return CodeRefundNotAllowed
	case errors.Is(err, ErrGatewayTimeout):
		return CodeGatewayTimeout
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// WebhookError describes a failure at one stage of webhook processing
type WebhookError struct {
	Kind          string
	Stage         string
	InvoiceID     string
	TransactionID int64
	Err           error
}

// Error implements the error interface for WebhookError
func (e *WebhookError) Error() string {
	return fmt.Sprintf("%s webhook failed at %s (invoice: %q, transaction: %d): %v",
		e.Kind, e.Stage, e.InvoiceID, e.TransactionID, e.Err)
}

// Unwrap returns the underlying error
func (e *WebhookError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *WebhookError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "webhook_error",
		"webhook":        e.Kind,
		"stage":          e.Stage,
		"invoice_id":     e.InvoiceID,
		"transaction_id": e.TransactionID,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewWebhookError creates a webhook processing error
func NewWebhookError(kind, stage, invoiceID string, transactionID int64, err error) error {
	return &WebhookError{
		Kind:          kind,
		Stage:         stage,
		InvoiceID:     invoiceID,
		TransactionID: transactionID,
		Err:           err,
	}
}

// TransitionError describes a refused payment status change
type TransitionError struct {
	DonationID uint64
	Current    string
	Attempted  string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("refused status transition for donation %d: %s -> %s",
		e.DonationID, e.Current, e.Attempted)
}

// Is checks if the target error is an ErrStatusConflict
func (e *TransitionError) Is(target error) bool {
	return target == ErrStatusConflict
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "status_transition",
		"anomaly":          "non_monotonic_transition",
		"donation_id":      e.DonationID,
		"current_status":   e.Current,
		"attempted_status": e.Attempted,
		"error_code":       CodeStatusConflict,
	}
}

// NewTransitionError creates a new refused transition error
func NewTransitionError(donationID uint64, current, attempted string) error {
	return &TransitionError{
		DonationID: donationID,
		Current:    current,
		Attempted:  attempted,
	}
}

// GatewayError describes a failed call to the payment processor API
type GatewayError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("payment gateway call %s failed with status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("payment gateway call %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "gateway_error",
		"endpoint":    e.Endpoint,
		"http_status": e.StatusCode,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewGatewayError creates a new gateway error
func NewGatewayError(endpoint string, statusCode int, err error) error {
	return &GatewayError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsDonationNotFoundError checks if the error is a donation not found error
func IsDonationNotFoundError(err error) bool {
	return errors.Is(err, ErrDonationNotFound)
}

// IsStatusConflictError checks if the error is a refused terminal overwrite
func IsStatusConflictError(err error) bool {
	return errors.Is(err, ErrStatusConflict)
}

// IsTimeoutError reports whether the caller may retry the failed operation
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrGatewayTimeout) || errors.Is(err, context.DeadlineExceeded)
}
