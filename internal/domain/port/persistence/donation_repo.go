package persistence

import (
	"context"

	"github.com/vooz/donation-processor/internal/domain/entity"
)

// TransitionOutcome classifies the result of a conditional status change
type TransitionOutcome int

const (
	// TransitionApplied means the record moved from pending to the target status
	TransitionApplied TransitionOutcome = iota
	// TransitionDuplicate means the record already held the target status
	TransitionDuplicate
	// TransitionConflict means the record holds the other terminal status
	TransitionConflict
)

// String returns the outcome name used in logs
func (o TransitionOutcome) String() string {
	switch o {
	case TransitionApplied:
		return "applied"
	case TransitionDuplicate:
		return "duplicate"
	case TransitionConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// StatusTransition describes a webhook-driven status change and the
// processor data stored along with it
type StatusTransition struct {
	DonationID    uint64
	Target        entity.PaymentStatus
	TransactionID int64
	PaymentToken  string
	Details       map[string]any
}

// TransitionResult carries the outcome and the status found in the store
type TransitionResult struct {
	Outcome TransitionOutcome
	Current entity.PaymentStatus
}

// DonationRepository defines the record store operations the processor needs
type DonationRepository interface {
	// Create stores a new donation and returns its assigned id.
	// The id is also written back into donation.ID.
	//
	// Possible errors:
	// - ErrConstraintViolation: If the record violates a table constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, donation *entity.Donation) (uint64, error)

	// GetByID retrieves a donation by id
	//
	// Possible errors:
	// - ErrDonationNotFound: If no donation has the given id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Donation, error)

	// UpdateStatus overwrites the payment status unconditionally.
	// Only the operator override uses it; webhooks go through TransitionStatus.
	//
	// Possible errors:
	// - ErrDonationNotFound: If no donation has the given id
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatus(ctx context.Context, id uint64, status entity.PaymentStatus) error

	// TransitionStatus sets the target status only while the record is pending.
	// When nothing changes, the current status is read back to tell a
	// duplicate delivery from a conflicting one.
	//
	// Possible errors:
	// - ErrDonationNotFound: If no donation has the given id
	// - ErrDatabaseConnection: If database connection fails
	TransitionStatus(ctx context.Context, transition StatusTransition) (*TransitionResult, error)
}
