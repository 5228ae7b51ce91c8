package webhook

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

func TestCheck(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		overrides  map[string]any
		setupMocks func(f *fixture)
		expected   usecase.WebhookResult
	}{
		{
			name: "Invalid signature",
			setupMocks: func(f *fixture) {
				f.verifier.EXPECT().Verify(mock.Anything, "sig").Return(false).Once()
			},
			expected: usecase.WebhookResult{HTTPStatus: http.StatusUnauthorized, Code: 13, Message: MsgInvalidSignature},
		},
		{
			name:       "Zero amount",
			overrides:  map[string]any{"Amount": 0},
			setupMocks: func(f *fixture) { f.signatureOK() },
			expected:   usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgInvalidPaymentData},
		},
		{
			name:       "Missing transaction id",
			overrides:  map[string]any{"TransactionId": nil},
			setupMocks: func(f *fixture) { f.signatureOK() },
			expected:   usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgInvalidPaymentData},
		},
		{
			name:       "Foreign invoice format",
			overrides:  map[string]any{"InvoiceId": "ORDER-7"},
			setupMocks: func(f *fixture) { f.signatureOK() },
			expected:   usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgInvalidInvoiceID},
		},
		{
			name: "Donation not found",
			setupMocks: func(f *fixture) {
				f.signatureOK()
				f.repo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrDonationNotFound).Once()
			},
			expected: usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgDonationNotFound},
		},
		{
			name: "Store failure",
			setupMocks: func(f *fixture) {
				f.signatureOK()
				f.repo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrDatabaseConnection).Once()
			},
			expected: usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgInternalError},
		},
		{
			name: "Panic in store",
			setupMocks: func(f *fixture) {
				f.signatureOK()
				f.repo.EXPECT().GetByID(mock.Anything, uint64(7)).
					RunAndReturn(func(context.Context, uint64) (*entity.Donation, error) {
						panic("connection pool exploded")
					}).Once()
			},
			expected: usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgInternalError},
		},
		{
			name: "Panic in verifier",
			setupMocks: func(f *fixture) {
				f.verifier.EXPECT().Verify(mock.Anything, "sig").
					RunAndReturn(func([]byte, string) bool { panic("bad key") }).Once()
			},
			expected: usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgInternalError},
		},
		{
			name: "Pending donation passes",
			setupMocks: func(f *fixture) {
				f.signatureOK()
				f.repo.EXPECT().GetByID(mock.Anything, uint64(7)).
					Return(&entity.Donation{ID: 7, PaymentStatus: entity.PaymentStatusPending}, nil).Once()
			},
			expected: usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 0},
		},
		{
			name: "Settled donation passes with warning",
			setupMocks: func(f *fixture) {
				f.signatureOK()
				f.repo.EXPECT().GetByID(mock.Anything, uint64(7)).
					Return(&entity.Donation{ID: 7, PaymentStatus: entity.PaymentStatusSuccess}, nil).Once()
				f.logger.EXPECT().Warn("Check received for donation with final payment status", mock.Anything).Once()
			},
			expected: usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMocks(f)

			result := f.service().Check(ctx, request(notificationBody(t, tc.overrides)))

			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestCheckRejectionsAreStable(t *testing.T) {
	f := newFixture(t)
	f.signatureOK()
	f.repo.EXPECT().GetByID(mock.Anything, uint64(999999)).Return(nil, errs.ErrDonationNotFound).Twice()
	svc := f.service()

	req := request(notificationBody(t, map[string]any{"InvoiceId": "VOOZ-DONATION-999999-123"}))
	first := svc.Check(context.Background(), req)
	second := svc.Check(context.Background(), req)

	assert.Equal(t, first, second)
	assert.Equal(t, 13, first.Code)
	assert.Equal(t, MsgDonationNotFound, first.Message)
}

func TestCheckMalformedBodies(t *testing.T) {
	bodies := map[string][]byte{
		"empty":      nil,
		"not json":   []byte("<xml/>"),
		"json array": []byte(`[{"TransactionId": 1}]`),
		"wrong type": []byte(`{"TransactionId": "x", "Amount": "y", "InvoiceId": 5}`),
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.signatureOK()

			result := f.service().Check(context.Background(), request(body))

			assert.Equal(t, usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: 13, Message: MsgInvalidPaymentData}, result)
		})
	}
}

func TestCheckLogsStoreFailureWithStage(t *testing.T) {
	f := newFixture(t)
	f.signatureOK()
	f.repo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errors.New("boom")).Once()
	f.logger.EXPECT().Error("Check failed to load donation", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["stage"] == "lookup" && fields["webhook"] == usecase.WebhookCheck
	})).Once()

	result := f.service().Check(context.Background(), request(notificationBody(t, nil)))

	assert.Equal(t, MsgInternalError, result.Message)
}
