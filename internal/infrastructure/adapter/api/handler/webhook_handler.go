package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/dto"
)

// SignatureHeader carries base64(HMAC-SHA256(body)) from the processor
const SignatureHeader = "X-Content-HMAC"

// MaxWebhookBodyBytes caps a notification body; real ones are a few KiB
const MaxWebhookBodyBytes = 64 << 10

// WebhookHandler receives payment processor notifications
type WebhookHandler struct {
	webhookUseCase usecase.WebhookUseCase
	logger         coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(webhookUseCase usecase.WebhookUseCase, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
		logger:         logger,
	}
}

// Check handles the pre-charge notification
func (h *WebhookHandler) Check(c *gin.Context) {
	h.handle(c, usecase.WebhookCheck, h.webhookUseCase.Check)
}

// Pay handles the successful payment notification
func (h *WebhookHandler) Pay(c *gin.Context) {
	h.handle(c, usecase.WebhookPay, h.webhookUseCase.Pay)
}

// Fail handles the rejected payment notification
func (h *WebhookHandler) Fail(c *gin.Context) {
	h.handle(c, usecase.WebhookFail, h.webhookUseCase.Fail)
}

func (h *WebhookHandler) handle(
	c *gin.Context,
	kind string,
	process func(ctx context.Context, req usecase.WebhookRequest) usecase.WebhookResult,
) {
	// The signature covers the exact bytes, so the body is read raw
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		statusCode := http.StatusBadRequest
		message := "Unreadable request body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			statusCode = http.StatusRequestEntityTooLarge
			message = "Request body too large"
		}

		h.logger.Warn("Failed to read webhook body", map[string]any{
			"webhook": kind,
			"limit":   MaxWebhookBodyBytes,
			"error":   err.Error(),
		})
		c.JSON(statusCode, dto.WebhookResponse{
			Code:    usecase.CodeRejected,
			Message: message,
		})
		return
	}

	result := process(c.Request.Context(), usecase.WebhookRequest{
		Body:        body,
		Signature:   c.GetHeader(SignatureHeader),
		ContentType: c.ContentType(),
	})

	c.JSON(result.HTTPStatus, dto.WebhookResponse{
		Code:    result.Code,
		Message: result.Message,
	})
}
