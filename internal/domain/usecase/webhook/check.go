package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

// Check gates a charge before the processor attempts it. Every failure,
// including a panic, rejects the charge.
func (s *Service) Check(ctx context.Context, req usecase.WebhookRequest) (result usecase.WebhookResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic in check webhook", map[string]any{
				"webhook": usecase.WebhookCheck,
				"panic":   fmt.Sprint(r),
			})
			result = rejected(MsgInternalError)
		}
	}()

	if !s.verifier.Verify(req.Body, req.Signature) {
		s.logger.Warn("Rejected webhook with invalid signature", map[string]any{
			"webhook": usecase.WebhookCheck,
		})
		return unauthorized()
	}

	event := s.parseEvent(req)
	if !event.IsValid() {
		s.logger.Warn("Rejected check with invalid payment data", map[string]any{
			"transaction_id": event.TransactionID,
			"invoice_id":     event.InvoiceID,
			"amount":         event.Amount.String(),
		})
		return rejected(MsgInvalidPaymentData)
	}

	donationID, ok := entity.ExtractDonationID(event.InvoiceID)
	if !ok {
		s.logger.Warn("Rejected check with unknown invoice format", map[string]any{
			"transaction_id": event.TransactionID,
			"invoice_id":     event.InvoiceID,
		})
		return rejected(MsgInvalidInvoiceID)
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	donation, err := s.donationRepo.GetByID(storeCtx, donationID)
	if err != nil {
		whErr := errs.NewWebhookError(usecase.WebhookCheck, "lookup", event.InvoiceID, event.TransactionID, err)
		if errs.IsDonationNotFoundError(err) {
			s.logger.Warn("Rejected check for missing donation", logFields(whErr))
			return rejected(MsgDonationNotFound)
		}
		s.logger.Error("Check failed to load donation", logFields(whErr))
		return rejected(MsgInternalError)
	}

	if donation.PaymentStatus.IsTerminal() {
		s.logger.Warn("Check received for donation with final payment status", map[string]any{
			"donation_id":    donation.ID,
			"payment_status": string(donation.PaymentStatus),
			"transaction_id": event.TransactionID,
		})
	}

	s.logger.Info("Payment check passed", map[string]any{
		"donation_id":    donation.ID,
		"transaction_id": event.TransactionID,
		"amount":         event.Amount.String(),
		"currency":       event.Currency,
		"test_mode":      event.TestMode,
	})
	return accepted()
}

// logFields extracts structured fields from a typed error
func logFields(err error) map[string]any {
	var whErr *errs.WebhookError
	if errors.As(err, &whErr) {
		return whErr.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
