package webhook

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vooz/donation-processor/internal/domain/entity"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
	mpers "github.com/vooz/donation-processor/mocks/port/persistence"
)

// memoryFixture wires the service to the in-memory store so transitions
// really race on one record
func memoryFixture(t *testing.T) (*Service, *mpers.MemoryDonationRepository, *entity.Donation) {
	f := newFixture(t)
	f.signatureOK()
	f.guard.EXPECT().Seen(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Maybe()
	f.guard.EXPECT().Remember(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	repo := mpers.NewMemoryDonationRepository()
	donation, err := entity.NewDonation(entity.DonationSubmission{
		Amount:      "1000",
		PaymentType: entity.CadenceLabelOneTime,
		DonorName:   "Anna",
		Email:       "a@b.com",
	}, fixedNow)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), donation)
	require.NoError(t, err)

	svc := NewService(f.verifier, repo, f.guard, f.notifier, f.clock, f.logger, coreport.Second)
	return svc, repo, donation
}

func TestPayHappyPath(t *testing.T) {
	svc, repo, donation := memoryFixture(t)
	invoiceID := entity.GenerateInvoiceID(donation.ID, fixedNow)

	check := svc.Check(context.Background(), request(notificationBody(t, map[string]any{"InvoiceId": invoiceID})))
	assert.Equal(t, usecase.CodeAccepted, check.Code)

	result := svc.Pay(context.Background(), request(notificationBody(t, map[string]any{"InvoiceId": invoiceID, "Token": "tk_1"})))
	assert.Equal(t, acceptedResult, result)

	stored, err := repo.GetByID(context.Background(), donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, stored.PaymentStatus)
	assert.Equal(t, int64(504), stored.TransactionID)
	assert.Equal(t, "tk_1", stored.PaymentToken)
	assert.Equal(t, "Completed", stored.PaymentDetails["status"])
}

func TestConcurrentDuplicatePay(t *testing.T) {
	svc, repo, donation := memoryFixture(t)
	body := notificationBody(t, map[string]any{"InvoiceId": entity.GenerateInvoiceID(donation.ID, fixedNow)})

	const deliveries = 16
	results := make([]usecase.WebhookResult, deliveries)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = svc.Pay(context.Background(), request(body))
		}(i)
	}
	close(start)
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, acceptedResult, result)
	}
	assert.Equal(t, 1, repo.AppliedTransitions())

	stored, err := repo.GetByID(context.Background(), donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, stored.PaymentStatus)
}

func TestConcurrentPayAndFailSettleOnce(t *testing.T) {
	svc, repo, donation := memoryFixture(t)
	invoiceID := entity.GenerateInvoiceID(donation.ID, fixedNow)
	payBody := notificationBody(t, map[string]any{"InvoiceId": invoiceID})
	failBody := notificationBody(t, map[string]any{"InvoiceId": invoiceID, "TransactionId": 505, "Status": "Declined"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			svc.Pay(context.Background(), request(payBody))
		}()
		go func() {
			defer wg.Done()
			svc.Fail(context.Background(), request(failBody))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.AppliedTransitions())

	stored, err := repo.GetByID(context.Background(), donation.ID)
	require.NoError(t, err)
	assert.True(t, stored.PaymentStatus.IsTerminal())
}

func TestLateFailKeepsSuccess(t *testing.T) {
	svc, repo, donation := memoryFixture(t)
	invoiceID := entity.GenerateInvoiceID(donation.ID, fixedNow)

	svc.Pay(context.Background(), request(notificationBody(t, map[string]any{"InvoiceId": invoiceID})))
	result := svc.Fail(context.Background(), request(notificationBody(t, map[string]any{"InvoiceId": invoiceID, "Status": "Declined"})))

	assert.Equal(t, acceptedResult, result)
	stored, err := repo.GetByID(context.Background(), donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, stored.PaymentStatus)
}
