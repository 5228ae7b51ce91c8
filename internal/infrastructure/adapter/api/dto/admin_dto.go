package dto

import (
	"time"

	"github.com/vooz/donation-processor/internal/domain/entity"
)

// DonationResponse is the staff view of a donation. The recurrent token is
// never exposed, only whether one is stored.
type DonationResponse struct {
	ID              uint64         `json:"id"`
	Code            string         `json:"code"`
	Name            string         `json:"name"`
	Amount          string         `json:"amount"`
	Cadence         string         `json:"cadence"`
	PaymentType     string         `json:"paymentType"`
	DonorName       string         `json:"donorName"`
	Email           string         `json:"email"`
	Comment         string         `json:"comment,omitempty"`
	SubmittedAt     time.Time      `json:"submittedAt"`
	PaymentStatus   string         `json:"paymentStatus"`
	TransactionID   int64          `json:"transactionId,omitempty"`
	HasPaymentToken bool           `json:"hasPaymentToken"`
	PaymentDetails  map[string]any `json:"paymentDetails,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// NewDonationResponse maps a donation to its staff view
func NewDonationResponse(d *entity.Donation) DonationResponse {
	return DonationResponse{
		ID:              d.ID,
		Code:            d.Code,
		Name:            d.Name,
		Amount:          entity.FormatAmount(d.Amount),
		Cadence:         string(d.Cadence),
		PaymentType:     d.Cadence.Label(),
		DonorName:       d.DonorName,
		Email:           d.Email,
		Comment:         d.Comment,
		SubmittedAt:     d.SubmittedAt,
		PaymentStatus:   string(d.PaymentStatus),
		TransactionID:   d.TransactionID,
		HasPaymentToken: d.PaymentToken != "",
		PaymentDetails:  d.PaymentDetails,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// RefundRequest optionally limits a refund to part of the donation
type RefundRequest struct {
	Amount string `json:"amount" binding:"omitempty,numeric"`
}

// StatusOverrideRequest sets a payment status by hand
type StatusOverrideRequest struct {
	Status string `json:"status" binding:"required,oneof=pending success rejected"`
}

// HealthResponse reports service readiness
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
