package database

import (
	"context"

	"github.com/vooz/donation-processor/internal/domain/entity"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
)

var _ persistence.DonationRepository = (*ResilientDonationRepository)(nil)

// ResilientDonationRepository retries idempotent store calls on transient
// errors and reports slow ones. Create is never retried.
type ResilientDonationRepository struct {
	next    persistence.DonationRepository
	retry   RetryConfig
	metrics *MetricsCollector
	logger  coreport.Logger
}

// NewResilientDonationRepository wraps next
func NewResilientDonationRepository(
	next persistence.DonationRepository,
	retry RetryConfig,
	metrics *MetricsCollector,
	logger coreport.Logger,
) *ResilientDonationRepository {
	return &ResilientDonationRepository{
		next:    next,
		retry:   retry,
		metrics: metrics,
		logger:  logger,
	}
}

// Create stores a new donation
func (r *ResilientDonationRepository) Create(ctx context.Context, donation *entity.Donation) (uint64, error) {
	var id uint64
	_, err := r.metrics.Measure("create", nil, func() error {
		var err error
		id, err = r.next.Create(ctx, donation)
		return err
	})
	return id, err
}

// GetByID retrieves a donation by id
func (r *ResilientDonationRepository) GetByID(ctx context.Context, id uint64) (*entity.Donation, error) {
	var donation *entity.Donation
	err := r.withRetry(ctx, "get_by_id", id, func() error {
		var err error
		donation, err = r.next.GetByID(ctx, id)
		return err
	})
	return donation, err
}

// UpdateStatus overwrites the payment status
func (r *ResilientDonationRepository) UpdateStatus(ctx context.Context, id uint64, status entity.PaymentStatus) error {
	return r.withRetry(ctx, "update_status", id, func() error {
		return r.next.UpdateStatus(ctx, id, status)
	})
}

// TransitionStatus applies a conditional status change. Retrying is safe
// because a repeated attempt reports a duplicate instead of applying twice.
func (r *ResilientDonationRepository) TransitionStatus(ctx context.Context, transition persistence.StatusTransition) (*persistence.TransitionResult, error) {
	var result *persistence.TransitionResult
	err := r.withRetry(ctx, "transition_status", transition.DonationID, func() error {
		var err error
		result, err = r.next.TransitionStatus(ctx, transition)
		return err
	})
	return result, err
}

func (r *ResilientDonationRepository) withRetry(ctx context.Context, operation string, id uint64, fn func() error) error {
	_, err := r.metrics.Measure(operation, map[string]any{"donation_id": id}, func() error {
		return RetryOnTransientError(ctx, r.retry, fn, r.logger)
	})
	return err
}
