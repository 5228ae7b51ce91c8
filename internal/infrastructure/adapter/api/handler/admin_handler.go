package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vooz/donation-processor/internal/domain/entity"
	domainerr "github.com/vooz/donation-processor/internal/domain/error"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles staff requests
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// GetDonation handles GET /admin/donations/:id
func (h *AdminHandler) GetDonation(c *gin.Context) {
	id, ok := parseDonationID(c)
	if !ok {
		return
	}

	donation, err := h.adminUseCase.GetDonation(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDonationResponse(donation))
}

// RefundDonation handles POST /admin/donations/:id/refund
func (h *AdminHandler) RefundDonation(c *gin.Context) {
	id, ok := parseDonationID(c)
	if !ok {
		return
	}

	var req dto.RefundRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid request format: " + err.Error(),
			})
			return
		}
	}

	var amount *decimal.Decimal
	if req.Amount != "" {
		parsed, err := decimal.NewFromString(req.Amount)
		if err != nil {
			writeError(c, domainerr.ErrInvalidAmount)
			return
		}
		amount = &parsed
	}

	result, err := h.adminUseCase.RefundDonation(c.Request.Context(), id, amount)
	if err != nil {
		writeError(c, err)
		return
	}

	h.logger.Info("Refund issued from admin route", map[string]any{
		"donation_id": id,
		"success":     result.Success,
		"admin":       c.GetString(gin.AuthUserKey),
	})
	c.JSON(http.StatusOK, result)
}

// OverrideStatus handles PUT /admin/donations/:id/status
func (h *AdminHandler) OverrideStatus(c *gin.Context) {
	id, ok := parseDonationID(c)
	if !ok {
		return
	}

	var req dto.StatusOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidStatus),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	donation, err := h.adminUseCase.OverrideStatus(c.Request.Context(), id, entity.PaymentStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	h.logger.Info("Payment status set from admin route", map[string]any{
		"donation_id":    id,
		"payment_status": req.Status,
		"admin":          c.GetString(gin.AuthUserKey),
	})
	c.JSON(http.StatusOK, dto.NewDonationResponse(donation))
}

// GetTransaction handles GET /admin/transactions/:id
func (h *AdminHandler) GetTransaction(c *gin.Context) {
	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid transaction ID format",
		})
		return
	}

	result, err := h.adminUseCase.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseDonationID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidDonationID),
			Message: "Invalid donation ID format",
		})
		return 0, false
	}
	return id, true
}

// writeError maps domain errors to HTTP status codes
func writeError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrDonationNotFound):
		statusCode = http.StatusNotFound
		message = "Donation not found"
	case errors.Is(err, domainerr.ErrInvalidDonationID),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidStatus),
		errors.Is(err, domainerr.ErrInvalidRequest):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrRefundNotAllowed):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, domainerr.ErrGatewayTimeout):
		statusCode = http.StatusGatewayTimeout
		message = "Payment processor timed out"
	case errors.Is(err, domainerr.ErrGatewayUnavailable):
		statusCode = http.StatusBadGateway
		message = "Payment processor unavailable"
	}

	_ = c.Error(err)
	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
