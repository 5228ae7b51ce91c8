package dto

import (
	"strings"

	"github.com/vooz/donation-processor/internal/domain/entity"
)

// IntakeForm is the donation form as posted by the browser
type IntakeForm struct {
	Amount      string `form:"amount"`
	PaymentType string `form:"paymentType"`
	DonorName   string `form:"donorName"`
	Email       string `form:"email"`
	Comment     string `form:"comment"`
}

// ToSubmission trims every field
func (f IntakeForm) ToSubmission() entity.DonationSubmission {
	return entity.DonationSubmission{
		Amount:      strings.TrimSpace(f.Amount),
		PaymentType: strings.TrimSpace(f.PaymentType),
		DonorName:   strings.TrimSpace(f.DonorName),
		Email:       strings.TrimSpace(f.Email),
		Comment:     strings.TrimSpace(f.Comment),
	}
}

// IntakeResponse is the answer to a form submission
type IntakeResponse struct {
	Success     bool                    `json:"success"`
	Message     string                  `json:"message,omitempty"`
	ElementID   uint64                  `json:"elementId,omitempty"`
	PaymentData *entity.PaymentData     `json:"paymentData,omitempty"`
	Errors      entity.ValidationErrors `json:"errors,omitempty"`
}
