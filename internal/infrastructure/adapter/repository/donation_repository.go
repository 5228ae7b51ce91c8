package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ persistence.DonationRepository = (*DonationRepository)(nil)

// DonationRepository implements DonationRepository using GORM
type DonationRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDonationRepository creates a new DonationRepository instance
func NewDonationRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *DonationRepository {
	return &DonationRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *DonationRepository) handleDatabaseError(operation string, err error, donationID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Donation not found", map[string]any{
			"donation_id": donationID,
			"operation":   operation,
		})
		return errs.ErrDonationNotFound
	}

	errorType := r.errorClassifier.Classify(err)
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"donation_id": donationID,
		"error":       err.Error(),
		"error_type":  string(errorType),
	})

	if errorType == ConstraintError || errorType == DuplicateKeyError {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new donation and writes the assigned id back
func (r *DonationRepository) Create(ctx context.Context, donation *entity.Donation) (uint64, error) {
	r.logger.Debug("Creating donation", map[string]any{
		"code":    donation.Code,
		"amount":  donation.Amount.String(),
		"cadence": string(donation.Cadence),
	})

	donationModel := entityToModel(donation)
	if err := r.db.WithContext(ctx).Create(donationModel).Error; err != nil {
		return 0, r.handleDatabaseError("creating donation", err, 0)
	}

	donation.ID = donationModel.ID
	return donationModel.ID, nil
}

// GetByID retrieves a donation by id
func (r *DonationRepository) GetByID(ctx context.Context, id uint64) (*entity.Donation, error) {
	var donationModel model.Donation
	if err := r.db.WithContext(ctx).First(&donationModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting donation", err, id)
	}

	donation, err := modelToEntity(&donationModel)
	if err != nil {
		r.logger.Error("Stored donation is not valid", map[string]any{
			"donation_id": id,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return donation, nil
}

// UpdateStatus overwrites the payment status unconditionally
func (r *DonationRepository) UpdateStatus(ctx context.Context, id uint64, status entity.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"updated_at":     r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating donation status", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrDonationNotFound
	}

	r.logger.Info("Donation status overwritten", map[string]any{
		"donation_id": id,
		"status":      string(status),
	})
	return nil
}

// TransitionStatus moves a pending donation to a terminal status in a single
// conditional UPDATE. When no row changes, the record is read back to
// classify the outcome.
func (r *DonationRepository) TransitionStatus(ctx context.Context, transition persistence.StatusTransition) (*persistence.TransitionResult, error) {
	updates := map[string]any{
		"payment_status": string(transition.Target),
		"updated_at":     r.timeProvider.Now(),
	}
	if transition.TransactionID > 0 {
		updates["transaction_id"] = transition.TransactionID
	}
	if transition.PaymentToken != "" {
		updates["payment_token"] = transition.PaymentToken
	}
	if len(transition.Details) > 0 {
		updates["payment_details"] = datatypes.JSONMap(transition.Details)
	}

	result := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("id = ? AND payment_status = ?", transition.DonationID, string(entity.PaymentStatusPending)).
		Updates(updates)
	if result.Error != nil {
		return nil, r.handleDatabaseError("transitioning donation status", result.Error, transition.DonationID)
	}

	if result.RowsAffected > 0 {
		return &persistence.TransitionResult{
			Outcome: persistence.TransitionApplied,
			Current: transition.Target,
		}, nil
	}

	current, err := r.currentStatus(ctx, transition.DonationID)
	if err != nil {
		return nil, err
	}

	switch {
	case current == transition.Target:
		return &persistence.TransitionResult{Outcome: persistence.TransitionDuplicate, Current: current}, nil
	case current.IsTerminal():
		return &persistence.TransitionResult{Outcome: persistence.TransitionConflict, Current: current}, nil
	default:
		// only an unconditional UpdateStatus back to pending can lead here
		return nil, fmt.Errorf("%w: donation %d still pending after conditional update",
			errs.ErrDatabaseConnection, transition.DonationID)
	}
}

func (r *DonationRepository) currentStatus(ctx context.Context, id uint64) (entity.PaymentStatus, error) {
	var donationModel model.Donation
	err := r.db.WithContext(ctx).
		Select("id", "payment_status").
		First(&donationModel, id).Error
	if err != nil {
		return "", r.handleDatabaseError("reading donation status", err, id)
	}
	return entity.ParsePaymentStatus(donationModel.PaymentStatus)
}
