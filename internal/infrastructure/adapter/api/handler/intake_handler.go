package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
	"github.com/vooz/donation-processor/internal/domain/usecase/intake"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/dto"
)

// MsgMethodNotAllowed is returned for anything but POST on the form route
const MsgMethodNotAllowed = "Метод не поддерживается"

// IntakeHandler handles the donation form
type IntakeHandler struct {
	intakeUseCase usecase.IntakeUseCase
	logger        coreport.Logger
}

// NewIntakeHandler creates a new intake handler instance
func NewIntakeHandler(intakeUseCase usecase.IntakeUseCase, logger coreport.Logger) *IntakeHandler {
	return &IntakeHandler{
		intakeUseCase: intakeUseCase,
		logger:        logger,
	}
}

// Submit handles POST of the donation form
func (h *IntakeHandler) Submit(c *gin.Context) {
	var form dto.IntakeForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("Invalid donation form encoding", map[string]any{
			"error":        err.Error(),
			"content_type": c.ContentType(),
		})
		c.JSON(http.StatusBadRequest, dto.IntakeResponse{
			Success: false,
			Message: intake.MsgSubmitFailed,
		})
		return
	}

	result, err := h.intakeUseCase.Submit(c.Request.Context(), form.ToSubmission())
	if err != nil {
		// Details are logged by the usecase; the donor only sees a generic message
		_ = c.Error(err)
		c.JSON(http.StatusOK, dto.IntakeResponse{
			Success: false,
			Message: intake.MsgSubmitFailed,
		})
		return
	}

	if !result.Success {
		c.JSON(http.StatusOK, dto.IntakeResponse{
			Success: false,
			Errors:  result.Errors,
		})
		return
	}

	c.JSON(http.StatusOK, dto.IntakeResponse{
		Success:     true,
		Message:     result.Message,
		ElementID:   result.DonationID,
		PaymentData: result.PaymentData,
	})
}

// Options handles GET of the form configuration
func (h *IntakeHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, h.intakeUseCase.Options())
}

// MethodNotAllowed answers non-POST requests to the form route
func (h *IntakeHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.IntakeResponse{
		Success: false,
		Message: MsgMethodNotAllowed,
	})
}
