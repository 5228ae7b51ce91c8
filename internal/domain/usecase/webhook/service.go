package webhook

import (
	"context"

	"github.com/vooz/donation-processor/internal/domain/entity"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/gateway"
	"github.com/vooz/donation-processor/internal/domain/port/notification"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

var _ usecase.WebhookUseCase = (*Service)(nil)

// Service is the payment notification state machine. It verifies, parses and
// correlates each notification, then moves the donation's payment status.
type Service struct {
	verifier     gateway.SignatureVerifier
	donationRepo persistence.DonationRepository
	guard        persistence.DeliveryGuard
	notifier     notification.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	storeTimeout coreport.Duration
}

// NewService creates a webhook service. storeTimeout bounds every record
// store call; zero leaves the request context as the only limit.
func NewService(
	verifier gateway.SignatureVerifier,
	donationRepo persistence.DonationRepository,
	guard persistence.DeliveryGuard,
	notifier notification.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	storeTimeout coreport.Duration,
) *Service {
	return &Service{
		verifier:     verifier,
		donationRepo: donationRepo,
		guard:        guard,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

// parseEvent decodes the body and builds the typed event. It never fails.
func (s *Service) parseEvent(req usecase.WebhookRequest) entity.PaymentEvent {
	payload := entity.DecodeWebhookBody(req.Body, req.ContentType)
	return entity.ParsePaymentEvent(payload, s.timeProvider.Now())
}

// storeContext bounds a record store call
func (s *Service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return s.timeProvider.WithTimeout(ctx, s.storeTimeout)
}
