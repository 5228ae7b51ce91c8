package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
)

// MemoryDonationRepository is a mutex-guarded in-memory DonationRepository.
// TransitionStatus has the same compare-and-set semantics as the SQL store,
// which makes it suitable for concurrency tests.
type MemoryDonationRepository struct {
	mu          sync.Mutex
	nextID      uint64
	donations   map[uint64]entity.Donation
	transitions int
}

// NewMemoryDonationRepository creates an empty store
func NewMemoryDonationRepository() *MemoryDonationRepository {
	return &MemoryDonationRepository{donations: map[uint64]entity.Donation{}}
}

// Create stores a copy of the donation under a fresh id
func (r *MemoryDonationRepository) Create(_ context.Context, donation *entity.Donation) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	donation.ID = r.nextID
	r.donations[donation.ID] = *donation
	return donation.ID, nil
}

// GetByID returns a copy of the stored donation
func (r *MemoryDonationRepository) GetByID(_ context.Context, id uint64) (*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	donation, ok := r.donations[id]
	if !ok {
		return nil, errs.ErrDonationNotFound
	}
	return &donation, nil
}

// UpdateStatus overwrites the status unconditionally
func (r *MemoryDonationRepository) UpdateStatus(_ context.Context, id uint64, status entity.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	donation, ok := r.donations[id]
	if !ok {
		return errs.ErrDonationNotFound
	}
	donation.PaymentStatus = status
	donation.UpdatedAt = time.Now()
	r.donations[id] = donation
	return nil
}

// TransitionStatus applies the transition only while the donation is pending
func (r *MemoryDonationRepository) TransitionStatus(_ context.Context, transition persistence.StatusTransition) (*persistence.TransitionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	donation, ok := r.donations[transition.DonationID]
	if !ok {
		return nil, errs.ErrDonationNotFound
	}

	current := donation.PaymentStatus
	switch {
	case current.CanTransitionTo(transition.Target):
		donation.PaymentStatus = transition.Target
		donation.TransactionID = transition.TransactionID
		if transition.PaymentToken != "" {
			donation.PaymentToken = transition.PaymentToken
		}
		donation.PaymentDetails = transition.Details
		donation.UpdatedAt = time.Now()
		r.donations[donation.ID] = donation
		r.transitions++
		return &persistence.TransitionResult{Outcome: persistence.TransitionApplied, Current: transition.Target}, nil
	case current == transition.Target:
		return &persistence.TransitionResult{Outcome: persistence.TransitionDuplicate, Current: current}, nil
	default:
		return &persistence.TransitionResult{Outcome: persistence.TransitionConflict, Current: current}, nil
	}
}

// AppliedTransitions counts transitions that actually changed a record
func (r *MemoryDonationRepository) AppliedTransitions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transitions
}
