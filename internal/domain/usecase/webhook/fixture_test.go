package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
	mcore "github.com/vooz/donation-processor/mocks/port/core"
	mgw "github.com/vooz/donation-processor/mocks/port/gateway"
	mnotif "github.com/vooz/donation-processor/mocks/port/notification"
	mpers "github.com/vooz/donation-processor/mocks/port/persistence"
)

var fixedNow = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

type fixture struct {
	verifier *mgw.MockSignatureVerifier
	repo     *mpers.MockDonationRepository
	guard    *mpers.MockDeliveryGuard
	notifier *mnotif.MockNotifier
	clock    *mcore.MockTimeProvider
	logger   *mcore.MockLogger
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		verifier: mgw.NewMockSignatureVerifier(t),
		repo:     mpers.NewMockDonationRepository(t),
		guard:    mpers.NewMockDeliveryGuard(t),
		notifier: mnotif.NewMockNotifier(t),
		clock:    mcore.NewMockTimeProvider(t),
		logger:   mcore.NewMockLogger(t),
	}

	f.clock.EXPECT().Now().Return(fixedNow).Maybe()
	f.clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()

	return f
}

// service builds the service after test-specific log expectations are set,
// so those take precedence over the catch-all ones
func (f *fixture) service() *Service {
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(f.verifier, f.repo, f.guard, f.notifier, f.clock, f.logger, coreport.Second)
}

func (f *fixture) signatureOK() {
	f.verifier.EXPECT().Verify(mock.Anything, "sig").Return(true).Maybe()
}

func notificationBody(t *testing.T, overrides map[string]any) []byte {
	payload := map[string]any{
		"TransactionId": 504,
		"Amount":        1000,
		"Currency":      "RUB",
		"InvoiceId":     "VOOZ-DONATION-7-1709647629",
		"Status":        "Completed",
		"StatusCode":    3,
		"TestMode":      1,
	}
	for key, value := range overrides {
		if value == nil {
			delete(payload, key)
			continue
		}
		payload[key] = value
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}

func request(body []byte) usecase.WebhookRequest {
	return usecase.WebhookRequest{Body: body, Signature: "sig", ContentType: "application/json"}
}
