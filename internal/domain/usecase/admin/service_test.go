package admin

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/domain/port/gateway"
	mcore "github.com/vooz/donation-processor/mocks/port/core"
	mgw "github.com/vooz/donation-processor/mocks/port/gateway"
	mpers "github.com/vooz/donation-processor/mocks/port/persistence"
)

func newService(t *testing.T) (*Service, *mpers.MockDonationRepository, *mgw.MockPaymentGateway) {
	repo := mpers.NewMockDonationRepository(t)
	gw := mgw.NewMockPaymentGateway(t)
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(repo, gw, logger), repo, gw
}

func settledDonation() *entity.Donation {
	return &entity.Donation{
		ID:            5,
		Amount:        decimal.NewFromInt(1000),
		PaymentStatus: entity.PaymentStatusSuccess,
		TransactionID: 777,
	}
}

func TestGetDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns stored donation", func(t *testing.T) {
		service, repo, _ := newService(t)
		repo.EXPECT().GetByID(ctx, uint64(5)).Return(settledDonation(), nil).Once()

		donation, err := service.GetDonation(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(777), donation.TransactionID)
	})

	t.Run("Zero id is rejected without a lookup", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.GetDonation(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidDonationID)
	})

	t.Run("Not found is passed through", func(t *testing.T) {
		service, repo, _ := newService(t)
		repo.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrDonationNotFound).Once()

		_, err := service.GetDonation(ctx, 9)

		assert.ErrorIs(t, err, errs.ErrDonationNotFound)
	})
}

func TestRefundDonation(t *testing.T) {
	ctx := context.Background()
	half := decimal.NewFromInt(500)
	tooMuch := decimal.NewFromInt(1500)
	negative := decimal.NewFromInt(-1)

	testCases := []struct {
		name        string
		donation    *entity.Donation
		amount      *decimal.Decimal
		expectCall  bool
		result      *gateway.APIResult
		gatewayErr  error
		expectedErr error
	}{
		{
			name:       "Full refund of settled donation",
			donation:   settledDonation(),
			expectCall: true,
			result:     &gateway.APIResult{Success: true},
		},
		{
			name:       "Partial refund",
			donation:   settledDonation(),
			amount:     &half,
			expectCall: true,
			result:     &gateway.APIResult{Success: true},
		},
		{
			name:       "Declined refund is returned, not an error",
			donation:   settledDonation(),
			expectCall: true,
			result:     &gateway.APIResult{Success: false, Message: "API request failed with code 400"},
		},
		{
			name: "Pending donation cannot be refunded",
			donation: &entity.Donation{
				ID: 5, Amount: decimal.NewFromInt(1000), PaymentStatus: entity.PaymentStatusPending,
			},
			expectedErr: errs.ErrRefundNotAllowed,
		},
		{
			name: "Success without transaction id cannot be refunded",
			donation: &entity.Donation{
				ID: 5, Amount: decimal.NewFromInt(1000), PaymentStatus: entity.PaymentStatusSuccess,
			},
			expectedErr: errs.ErrRefundNotAllowed,
		},
		{
			name:        "Refund larger than donation",
			donation:    settledDonation(),
			amount:      &tooMuch,
			expectedErr: errs.ErrRefundNotAllowed,
		},
		{
			name:        "Non-positive refund amount",
			donation:    settledDonation(),
			amount:      &negative,
			expectedErr: errs.ErrInvalidAmount,
		},
		{
			name:        "Gateway timeout",
			donation:    settledDonation(),
			expectCall:  true,
			gatewayErr:  errs.NewGatewayError("/payments/refund", 0, errs.ErrGatewayTimeout),
			expectedErr: errs.ErrGatewayTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repo, gw := newService(t)
			repo.EXPECT().GetByID(ctx, uint64(5)).Return(tc.donation, nil).Once()
			if tc.expectCall {
				gw.EXPECT().Refund(ctx, int64(777), tc.amount).Return(tc.result, tc.gatewayErr).Once()
			}

			result, err := service.RefundDonation(ctx, 5, tc.amount)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.result, result)
		})
	}
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Delegates to gateway", func(t *testing.T) {
		service, _, gw := newService(t)
		expected := &gateway.APIResult{Success: true, Model: map[string]any{"Status": "Completed"}}
		gw.EXPECT().GetTransaction(ctx, int64(777)).Return(expected, nil).Once()

		result, err := service.GetTransaction(ctx, 777)

		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("Rejects non-positive id", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.GetTransaction(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Gateway unavailable", func(t *testing.T) {
		service, _, gw := newService(t)
		gw.EXPECT().GetTransaction(ctx, int64(1)).
			Return(nil, errs.NewGatewayError("/payments/get", 502, errs.ErrGatewayUnavailable)).Once()

		_, err := service.GetTransaction(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestOverrideStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Overwrites a terminal status", func(t *testing.T) {
		service, repo, _ := newService(t)
		repo.EXPECT().GetByID(ctx, uint64(5)).Return(settledDonation(), nil).Once()
		repo.EXPECT().UpdateStatus(ctx, uint64(5), entity.PaymentStatusRejected).Return(nil).Once()

		donation, err := service.OverrideStatus(ctx, 5, entity.PaymentStatusRejected)

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusRejected, donation.PaymentStatus)
	})

	t.Run("Unknown status is rejected without a lookup", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.OverrideStatus(ctx, 5, entity.PaymentStatus("refunded"))

		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("Missing donation", func(t *testing.T) {
		service, repo, _ := newService(t)
		repo.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrDonationNotFound).Once()

		_, err := service.OverrideStatus(ctx, 9, entity.PaymentStatusPending)

		assert.ErrorIs(t, err, errs.ErrDonationNotFound)
	})

	t.Run("Store failure is passed through", func(t *testing.T) {
		service, repo, _ := newService(t)
		repo.EXPECT().GetByID(ctx, uint64(5)).Return(settledDonation(), nil).Once()
		repo.EXPECT().UpdateStatus(ctx, uint64(5), entity.PaymentStatusPending).Return(errs.ErrDatabaseConnection).Once()

		_, err := service.OverrideStatus(ctx, 5, entity.PaymentStatusPending)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
