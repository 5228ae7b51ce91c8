package usecase

import (
	"context"

	"github.com/vooz/donation-processor/internal/domain/entity"
)

// IntakeResult contains info about a processed donation form
type IntakeResult struct {
	Success     bool
	Message     string
	DonationID  uint64
	PaymentData *entity.PaymentData
	Errors      entity.ValidationErrors
}

// IntakeOptions is what the donation form needs to render
type IntakeOptions struct {
	PresetAmounts       []int    `json:"presetAmounts"`
	PaymentTypes        []string `json:"paymentTypes"`
	PublicID            string   `json:"publicId"`
	Currency            string   `json:"currency"`
	Language            string   `json:"language"`
	Skin                string   `json:"skin"`
	RequireConfirmation bool     `json:"requireConfirmation"`
	RecurrentEnabled    bool     `json:"recurrentEnabled"`
	TestMode            bool     `json:"testMode"`
}

// IntakeUseCase defines donation form operations
type IntakeUseCase interface {
	// Submit validates a form, stores a pending donation and returns the
	// widget descriptor. Validation failures come back in the result with
	// a nil error; store failures return a wrapped ErrInternalServer.
	Submit(ctx context.Context, submission entity.DonationSubmission) (*IntakeResult, error)

	// Options returns the form configuration
	Options() IntakeOptions
}
