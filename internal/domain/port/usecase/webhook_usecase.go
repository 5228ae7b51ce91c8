package usecase

import (
	"context"
)

// Processor response codes
const (
	// CodeAccepted lets the processor proceed or marks a notification as handled
	CodeAccepted = 0
	// CodeRejected makes the processor decline the charge
	CodeRejected = 13
)

// Webhook kinds
const (
	WebhookCheck = "check"
	WebhookPay   = "pay"
	WebhookFail  = "fail"
)

// WebhookRequest is one processor notification as received over HTTP
type WebhookRequest struct {
	Body        []byte
	Signature   string
	ContentType string
}

// WebhookResult is what the processor gets back
type WebhookResult struct {
	HTTPStatus int
	Code       int
	Message    string
}

// WebhookUseCase drives donation payment status from processor notifications.
// None of the methods return an error: every failure is already mapped to the
// response the processor must receive.
type WebhookUseCase interface {
	// Check gates a charge before it happens. Any failure rejects the charge.
	Check(ctx context.Context, req WebhookRequest) WebhookResult

	// Pay records a successful payment. Anything after signature
	// verification answers accepted so the processor stops retrying.
	Pay(ctx context.Context, req WebhookRequest) WebhookResult

	// Fail records a rejected payment with the same response policy as Pay
	Fail(ctx context.Context, req WebhookRequest) WebhookResult
}
