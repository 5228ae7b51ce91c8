package webhook

import (
	"context"

	"github.com/vooz/donation-processor/internal/domain/entity"
)

// alreadyDelivered consults the delivery guard. A guard failure is logged and
// treated as unseen; the conditional update still protects the record.
func (s *Service) alreadyDelivered(ctx context.Context, kind string, event entity.PaymentEvent) bool {
	seen, err := s.guard.Seen(ctx, kind, event.TransactionID)
	if err != nil {
		s.logger.Warn("Delivery guard lookup failed", map[string]any{
			"webhook":        kind,
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		})
		return false
	}

	if seen {
		s.logger.Info("Replayed payment notification ignored", map[string]any{
			"webhook":        kind,
			"transaction_id": event.TransactionID,
			"invoice_id":     event.InvoiceID,
		})
	}
	return seen
}

func (s *Service) rememberDelivery(ctx context.Context, kind string, event entity.PaymentEvent) {
	if err := s.guard.Remember(ctx, kind, event.TransactionID); err != nil {
		s.logger.Warn("Failed to record payment notification delivery", map[string]any{
			"webhook":        kind,
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		})
	}
}
