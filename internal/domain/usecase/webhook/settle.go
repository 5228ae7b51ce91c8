package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/domain/port/notification"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

// Pay records a successful payment
func (s *Service) Pay(ctx context.Context, req usecase.WebhookRequest) usecase.WebhookResult {
	return s.settle(ctx, usecase.WebhookPay, entity.PaymentStatusSuccess, req)
}

// Fail records a rejected payment
func (s *Service) Fail(ctx context.Context, req usecase.WebhookRequest) usecase.WebhookResult {
	return s.settle(ctx, usecase.WebhookFail, entity.PaymentStatusRejected, req)
}

// settle runs a Pay or Fail notification. Once the signature is verified the
// processor always gets an accepted answer; failures only reach the log.
func (s *Service) settle(
	ctx context.Context,
	kind string,
	target entity.PaymentStatus,
	req usecase.WebhookRequest,
) (result usecase.WebhookResult) {
	verified := false
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic in payment webhook", map[string]any{
				"webhook":  kind,
				"verified": verified,
				"panic":    fmt.Sprint(r),
			})
			if verified {
				result = accepted()
			} else {
				result = unverifiedFailure()
			}
		}
	}()

	if !s.verifier.Verify(req.Body, req.Signature) {
		s.logger.Warn("Rejected webhook with invalid signature", map[string]any{
			"webhook": kind,
		})
		return unauthorized()
	}
	verified = true

	if err := s.applySettlement(ctx, kind, target, s.parseEvent(req)); err != nil {
		s.logSettlementFailure(err)
	}
	return accepted()
}

func (s *Service) applySettlement(ctx context.Context, kind string, target entity.PaymentStatus, event entity.PaymentEvent) error {
	if !event.IsValid() {
		return errs.NewWebhookError(kind, "validate", event.InvoiceID, event.TransactionID, errs.ErrInvalidPaymentData)
	}

	donationID, ok := entity.ExtractDonationID(event.InvoiceID)
	if !ok {
		return errs.NewWebhookError(kind, "correlate", event.InvoiceID, event.TransactionID, errs.ErrInvalidInvoiceID)
	}

	if s.alreadyDelivered(ctx, kind, event) {
		return nil
	}

	if kind == usecase.WebhookPay && !event.IsSuccessful() {
		s.logger.Warn("Pay notification carries a non-success status", map[string]any{
			"donation_id":    donationID,
			"transaction_id": event.TransactionID,
			"status":         event.Status,
		})
	}

	transition := persistence.StatusTransition{
		DonationID:    donationID,
		Target:        target,
		TransactionID: event.TransactionID,
		Details:       event.Details(),
	}
	if kind == usecase.WebhookPay && event.HasToken() {
		transition.PaymentToken = *event.Token
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	outcome, err := s.donationRepo.TransitionStatus(storeCtx, transition)
	if err != nil {
		return errs.NewWebhookError(kind, "transition", event.InvoiceID, event.TransactionID, err)
	}

	switch outcome.Outcome {
	case persistence.TransitionApplied:
		s.logApplied(kind, donationID, event)
		s.rememberDelivery(ctx, kind, event)
		s.notifyOutcome(ctx, kind, donationID, event)

	case persistence.TransitionDuplicate:
		s.logger.Info("Duplicate payment notification ignored", map[string]any{
			"webhook":        kind,
			"donation_id":    donationID,
			"transaction_id": event.TransactionID,
			"payment_status": string(outcome.Current),
		})
		s.rememberDelivery(ctx, kind, event)

	case persistence.TransitionConflict:
		conflict := &errs.TransitionError{
			DonationID: donationID,
			Current:    string(outcome.Current),
			Attempted:  string(target),
		}
		fields := conflict.LogFields()
		fields["webhook"] = kind
		fields["transaction_id"] = event.TransactionID
		s.logger.Warn("Refused payment status change on settled donation", fields)
	}

	return nil
}

func (s *Service) logApplied(kind string, donationID uint64, event entity.PaymentEvent) {
	if kind == usecase.WebhookPay {
		s.logger.Info("Payment successful", map[string]any{
			"donation_id":    donationID,
			"transaction_id": event.TransactionID,
			"amount":         event.Amount.String(),
			"currency":       event.Currency,
			"test_mode":      event.TestMode,
		})
		if event.HasToken() {
			s.logger.Info("Recurrent payment token received", map[string]any{
				"donation_id": donationID,
				"token":       *event.Token,
			})
		}
		return
	}

	s.logger.Info("Payment failed", map[string]any{
		"donation_id":    donationID,
		"transaction_id": event.TransactionID,
		"status":         event.Status,
		"status_code":    event.StatusCode,
		"reason":         event.Reason,
		"reason_code":    event.ReasonCode,
	})
}

func (s *Service) logSettlementFailure(err error) {
	fields := logFields(err)
	switch {
	case errors.Is(err, errs.ErrInvalidPaymentData),
		errors.Is(err, errs.ErrInvalidInvoiceID),
		errs.IsDonationNotFoundError(err):
		s.logger.Warn("Payment notification dropped", fields)
	default:
		s.logger.Error("Payment notification processing failed", fields)
	}
}

func (s *Service) notifyOutcome(ctx context.Context, kind string, donationID uint64, event entity.PaymentEvent) {
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	donation, err := s.donationRepo.GetByID(storeCtx, donationID)
	if err != nil {
		s.logger.Warn("Could not load donation for notification", map[string]any{
			"donation_id": donationID,
			"error":       err.Error(),
		})
		return
	}

	n := notification.Event{
		Type:          notification.EventPaymentSucceeded,
		Donation:      *donation,
		TransactionID: event.TransactionID,
		OccurredAt:    s.timeProvider.Now(),
	}
	if kind == usecase.WebhookFail {
		n.Type = notification.EventPaymentRejected
		n.Reason = event.Reason
	}

	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("Failed to queue payment notification", map[string]any{
			"donation_id": donationID,
			"event":       string(n.Type),
			"error":       err.Error(),
		})
	}
}
