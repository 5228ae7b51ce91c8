package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// SignatureVerifier checks that a webhook body came from the payment processor
type SignatureVerifier interface {
	Verify(rawBody []byte, signature string) bool
}

// APIResult is the processor's answer to an API call
type APIResult struct {
	Success bool           `json:"Success"`
	Message string         `json:"Message,omitempty"`
	Model   map[string]any `json:"Model,omitempty"`
}

// PaymentGateway is the subset of the processor API used by staff tooling
type PaymentGateway interface {
	// Refund returns money for a transaction. A nil amount refunds in full.
	//
	// Possible errors:
	// - ErrGatewayTimeout: If the call exceeded its deadline
	// - ErrGatewayUnavailable: If the processor could not be reached
	Refund(ctx context.Context, transactionID int64, amount *decimal.Decimal) (*APIResult, error)

	// GetTransaction fetches the processor's view of a transaction
	//
	// Possible errors:
	// - ErrGatewayTimeout: If the call exceeded its deadline
	// - ErrGatewayUnavailable: If the processor could not be reached
	GetTransaction(ctx context.Context, transactionID int64) (*APIResult, error)
}
