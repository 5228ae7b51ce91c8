package webhook

import (
	"net/http"

	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

// Messages returned to the processor with a rejection
const (
	MsgInvalidSignature   = "Invalid signature"
	MsgInvalidPaymentData = "Invalid payment data"
	MsgInvalidInvoiceID   = "Invalid invoice ID"
	MsgDonationNotFound   = "Donation not found"
	MsgInternalError      = "Internal server error"
)

func accepted() usecase.WebhookResult {
	return usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: usecase.CodeAccepted}
}

func rejected(message string) usecase.WebhookResult {
	return usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: usecase.CodeRejected, Message: message}
}

func unauthorized() usecase.WebhookResult {
	return usecase.WebhookResult{HTTPStatus: http.StatusUnauthorized, Code: usecase.CodeRejected, Message: MsgInvalidSignature}
}

// unverifiedFailure answers a crash that happened before the signature was
// known to be good. The processor retries on a 5xx.
func unverifiedFailure() usecase.WebhookResult {
	return usecase.WebhookResult{HTTPStatus: http.StatusInternalServerError, Code: usecase.CodeRejected, Message: MsgInternalError}
}
