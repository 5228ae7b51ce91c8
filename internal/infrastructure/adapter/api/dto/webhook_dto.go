package dto

// WebhookResponse is the body the payment processor expects back.
// The message key is omitted on success.
type WebhookResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}
