package intake

import (
	"context"
	"fmt"
	"sort"

	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/domain/port/notification"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

// Submit validates the form, stores a pending donation and returns the data
// the browser needs to open the payment widget
func (s *Service) Submit(ctx context.Context, submission entity.DonationSubmission) (*usecase.IntakeResult, error) {
	if validationErrors := submission.Validate(); len(validationErrors) > 0 {
		s.logger.Info("Donation submission rejected", map[string]any{
			"fields": fieldNames(validationErrors),
		})
		return &usecase.IntakeResult{
			Success: false,
			Errors:  validationErrors,
		}, nil
	}

	now := s.timeProvider.Now()
	donation, err := entity.NewDonation(submission, now)
	if err != nil {
		s.logger.Error("Failed to build donation from a valid submission", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	donationID, err := s.createDonation(ctx, donation)
	if err != nil {
		s.logger.Error("Failed to save donation", map[string]any{
			"error":      err.Error(),
			"error_code": errs.ErrorCode(err),
			"email":      donation.Email,
			"amount":     donation.Amount.String(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	invoiceID := entity.GenerateInvoiceID(donationID, now)
	paymentData := entity.BuildPaymentData(donation, invoiceID, s.settings.Widget)

	if err := s.notifier.Notify(ctx, notification.Event{
		Type:       notification.EventDonationSubmitted,
		Donation:   *donation,
		OccurredAt: now,
	}); err != nil {
		s.logger.Warn("Failed to queue submission notification", map[string]any{
			"donation_id": donationID,
			"error":       err.Error(),
		})
	}

	s.logger.Info("Donation submitted", map[string]any{
		"donation_id": donationID,
		"invoice_id":  invoiceID,
		"amount":      donation.Amount.String(),
		"cadence":     string(donation.Cadence),
	})

	return &usecase.IntakeResult{
		Success:     true,
		Message:     MsgSubmitted,
		DonationID:  donationID,
		PaymentData: &paymentData,
	}, nil
}

// createDonation stores the donation inside a unit of work
func (s *Service) createDonation(ctx context.Context, donation *entity.Donation) (uint64, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back donation creation", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	id, err := s.uow.GetDonationRepository(txCtx).Create(txCtx, donation)
	if err != nil {
		return 0, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return id, nil
}

func fieldNames(validationErrors entity.ValidationErrors) []string {
	names := make([]string, 0, len(validationErrors))
	for name := range validationErrors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
