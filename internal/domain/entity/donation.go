package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	errs "github.com/vooz/donation-processor/internal/domain/error"
)

// PaymentStatus is the processor-driven lifecycle state of a donation
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// ParsePaymentStatus converts a stored value into a PaymentStatus
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	status := PaymentStatus(value)
	switch status {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidStatus, value)
	}
}

// IsTerminal reports whether no further webhook may change the status
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusRejected
}

// CanTransitionTo reports whether moving to target keeps terminal states monotonic.
// Only pending may move, and only to a terminal status.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	return s == PaymentStatusPending && target.IsTerminal()
}

// Cadence tells whether a donation is charged once or every month
type Cadence string

const (
	CadenceOneTime Cadence = "one_time"
	CadenceMonthly Cadence = "monthly"
)

// Form labels for the two cadences
const (
	CadenceLabelOneTime = "Единоразовый платеж"
	CadenceLabelMonthly = "Ежемесячный платеж"
)

// CadenceLabels lists the accepted form labels in display order
var CadenceLabels = []string{CadenceLabelOneTime, CadenceLabelMonthly}

// CadenceFromLabel maps a form label to a Cadence. Unknown labels fall back
// to one_time; validation rejects them before a record is built.
func CadenceFromLabel(label string) Cadence {
	if label == CadenceLabelMonthly {
		return CadenceMonthly
	}
	return CadenceOneTime
}

// Label returns the form label for the cadence
func (c Cadence) Label() string {
	if c == CadenceMonthly {
		return CadenceLabelMonthly
	}
	return CadenceLabelOneTime
}

// submittedAtLayout renders timestamps as dd.mm.YYYY HH:MM:SS
const submittedAtLayout = "02.01.2006 15:04:05"

// Donation represents a donation pledge and its payment state
type Donation struct {
	ID             uint64
	Code           string // unique per record
	Name           string
	Amount         decimal.Decimal
	Cadence        Cadence
	DonorName      string
	Email          string
	Comment        string
	SubmittedAt    time.Time
	PaymentStatus  PaymentStatus
	TransactionID  int64
	PaymentToken   string
	PaymentDetails map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewDonation builds a pending donation from a validated submission
func NewDonation(submission DonationSubmission, now time.Time) (*Donation, error) {
	amount, err := submission.ParsedAmount()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSubmission, err.Error())
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidSubmission)
	}

	return &Donation{
		Code:          "donation-" + uuid.NewString(),
		Name:          fmt.Sprintf("%s - %s руб. (%s)", submission.DonorName, FormatAmount(amount), FormatSubmittedAt(now)),
		Amount:        amount,
		Cadence:       CadenceFromLabel(submission.PaymentType),
		DonorName:     submission.DonorName,
		Email:         submission.Email,
		Comment:       submission.Comment,
		SubmittedAt:   now,
		PaymentStatus: PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// FormatSubmittedAt renders a timestamp the way donation names and mails show it
func FormatSubmittedAt(t time.Time) string {
	return t.Format(submittedAtLayout)
}

// IsRecurrent reports whether the donation should request a recurring charge
func (d *Donation) IsRecurrent() bool {
	return d.Cadence == CadenceMonthly
}
