package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vooz/donation-processor/internal/domain/entity"
	domainerr "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/domain/port/gateway"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
	"github.com/vooz/donation-processor/internal/domain/usecase/intake"
	mcore "github.com/vooz/donation-processor/mocks/port/core"
	musecase "github.com/vooz/donation-processor/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWebhookHandler(t *testing.T) {
	raw := "TransactionId=1&Amount=1000&InvoiceId=VOOZ-DONATION-5-1"

	t.Run("Passes raw body and signature, success has no message", func(t *testing.T) {
		uc := musecase.NewMockWebhookUseCase(t)
		uc.EXPECT().Pay(mock.Anything, mock.MatchedBy(func(req usecase.WebhookRequest) bool {
			return string(req.Body) == raw &&
				req.Signature == "c2ln" &&
				req.ContentType == "application/x-www-form-urlencoded"
		})).Return(usecase.WebhookResult{HTTPStatus: http.StatusOK, Code: usecase.CodeAccepted}).Once()

		router := gin.New()
		router.POST("/pay", NewWebhookHandler(uc, newLogger(t)).Pay)

		req := httptest.NewRequest(http.MethodPost, "/pay", strings.NewReader(raw))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(SignatureHeader, "c2ln")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"code":0}`, w.Body.String())
	})

	t.Run("Invalid signature", func(t *testing.T) {
		uc := musecase.NewMockWebhookUseCase(t)
		uc.EXPECT().Check(mock.Anything, mock.Anything).Return(usecase.WebhookResult{
			HTTPStatus: http.StatusUnauthorized,
			Code:       usecase.CodeRejected,
			Message:    "Invalid signature",
		}).Once()

		router := gin.New()
		router.POST("/check", NewWebhookHandler(uc, newLogger(t)).Check)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(raw)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"code":13,"message":"Invalid signature"}`, w.Body.String())
	})

	t.Run("Fail is routed to its use case", func(t *testing.T) {
		uc := musecase.NewMockWebhookUseCase(t)
		uc.EXPECT().Fail(mock.Anything, mock.Anything).
			Return(usecase.WebhookResult{HTTPStatus: http.StatusOK}).Once()

		router := gin.New()
		router.POST("/fail", NewWebhookHandler(uc, newLogger(t)).Fail)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fail", strings.NewReader(raw)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Oversized body is refused before processing", func(t *testing.T) {
		uc := musecase.NewMockWebhookUseCase(t)
		logger := mcore.NewMockLogger(t)
		logger.EXPECT().Warn("Failed to read webhook body", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["webhook"] == usecase.WebhookPay
		})).Once()

		router := gin.New()
		router.POST("/pay", NewWebhookHandler(uc, logger).Pay)

		body := strings.Repeat("a", MaxWebhookBodyBytes+1)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pay", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, float64(usecase.CodeRejected), decode(t, w)["code"])
	})

	t.Run("Body at the limit is processed", func(t *testing.T) {
		body := strings.Repeat("a", MaxWebhookBodyBytes)
		uc := musecase.NewMockWebhookUseCase(t)
		uc.EXPECT().Check(mock.Anything, mock.MatchedBy(func(req usecase.WebhookRequest) bool {
			return len(req.Body) == MaxWebhookBodyBytes
		})).Return(usecase.WebhookResult{HTTPStatus: http.StatusOK}).Once()

		router := gin.New()
		router.POST("/check", NewWebhookHandler(uc, newLogger(t)).Check)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIntakeHandler(t *testing.T) {
	form := url.Values{
		"amount":      {" 1000 "},
		"paymentType": {entity.CadenceLabelOneTime},
		"donorName":   {" Anna "},
		"email":       {"a@b.com"},
	}

	setup := func(t *testing.T) (*gin.Engine, *musecase.MockIntakeUseCase) {
		uc := musecase.NewMockIntakeUseCase(t)
		h := NewIntakeHandler(uc, newLogger(t))
		router := gin.New()
		router.POST("/donate", h.Submit)
		router.GET("/donate", h.MethodNotAllowed)
		router.GET("/donate/options", h.Options)
		return router, uc
	}

	t.Run("Success returns element id and payment data", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().Submit(mock.Anything, entity.DonationSubmission{
			Amount:      "1000",
			PaymentType: entity.CadenceLabelOneTime,
			DonorName:   "Anna",
			Email:       "a@b.com",
		}).Return(&usecase.IntakeResult{
			Success:    true,
			Message:    intake.MsgSubmitted,
			DonationID: 42,
			PaymentData: &entity.PaymentData{
				PublicID:  "pk_test",
				Amount:    1000,
				InvoiceID: "VOOZ-DONATION-42-1709647629",
				Data:      entity.PaymentMetadata{Name: "Anna"},
			},
		}, nil).Once()

		w := postForm(router, "/donate", form)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(42), body["elementId"])
		paymentData := body["paymentData"].(map[string]any)
		assert.Equal(t, "VOOZ-DONATION-42-1709647629", paymentData["invoiceId"])
		assert.Equal(t, false, paymentData["requireEmail"])
		assert.NotContains(t, body, "errors")
	})

	t.Run("Validation errors", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().Submit(mock.Anything, mock.Anything).Return(&usecase.IntakeResult{
			Errors: entity.ValidationErrors{"amount": "Сумма должна быть больше 0"},
		}, nil).Once()

		w := postForm(router, "/donate", form)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"errors":{"amount":"Сумма должна быть больше 0"}}`, w.Body.String())
	})

	t.Run("Internal error hides details", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(nil, domainerr.ErrInternalServer).Once()

		w := postForm(router, "/donate", form)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Ошибка при отправке заявки. Попробуйте позже."}`, w.Body.String())
	})

	t.Run("Other methods are refused", func(t *testing.T) {
		router, _ := setup(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/donate", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Метод не поддерживается"}`, w.Body.String())
	})

	t.Run("Options", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().Options().Return(usecase.IntakeOptions{
			PresetAmounts: []int{500, 1000},
			PaymentTypes:  entity.CadenceLabels,
			PublicID:      "pk_test",
		}).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/donate/options", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, []any{float64(500), float64(1000)}, body["presetAmounts"])
		assert.Equal(t, "pk_test", body["publicId"])
	})
}

func TestAdminHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *musecase.MockAdminUseCase) {
		uc := musecase.NewMockAdminUseCase(t)
		h := NewAdminHandler(uc, newLogger(t))
		router := gin.New()
		router.GET("/donations/:id", h.GetDonation)
		router.POST("/donations/:id/refund", h.RefundDonation)
		router.GET("/transactions/:id", h.GetTransaction)
		router.PUT("/donations/:id/status", h.OverrideStatus)
		return router, uc
	}

	t.Run("Get donation hides the token", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().GetDonation(mock.Anything, uint64(5)).Return(&entity.Donation{
			ID:            5,
			Amount:        decimal.NewFromInt(1000),
			Cadence:       entity.CadenceMonthly,
			PaymentStatus: entity.PaymentStatusSuccess,
			TransactionID: 777,
			PaymentToken:  "tk_secret",
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/donations/5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "tk_secret")
		body := decode(t, w)
		assert.Equal(t, "1000", body["amount"])
		assert.Equal(t, "success", body["paymentStatus"])
		assert.Equal(t, true, body["hasPaymentToken"])
	})

	t.Run("Unknown donation", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().GetDonation(mock.Anything, uint64(9)).Return(nil, domainerr.ErrDonationNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/donations/9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, float64(domainerr.CodeDonationNotFound), decode(t, w)["code"])
	})

	t.Run("Malformed id", func(t *testing.T) {
		router, _ := setup(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/donations/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Partial refund", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().RefundDonation(mock.Anything, uint64(5), mock.MatchedBy(func(amount *decimal.Decimal) bool {
			return amount != nil && amount.Equal(decimal.RequireFromString("250.50"))
		})).Return(&gateway.APIResult{Success: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/donations/5/refund", strings.NewReader(`{"amount":"250.50"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(t, w)["Success"])
	})

	t.Run("Full refund without body", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().RefundDonation(mock.Anything, uint64(5), (*decimal.Decimal)(nil)).
			Return(&gateway.APIResult{Success: true}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/donations/5/refund", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Refund amount must be numeric", func(t *testing.T) {
		router, _ := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/donations/5/refund", strings.NewReader(`{"amount":"ten"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Refund not allowed", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().RefundDonation(mock.Anything, uint64(5), mock.Anything).
			Return(nil, domainerr.ErrRefundNotAllowed).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/donations/5/refund", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Status override", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().OverrideStatus(mock.Anything, uint64(5), entity.PaymentStatusRejected).Return(&entity.Donation{
			ID:            5,
			Amount:        decimal.NewFromInt(1000),
			PaymentStatus: entity.PaymentStatusRejected,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/donations/5/status", strings.NewReader(`{"status":"rejected"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rejected", decode(t, w)["paymentStatus"])
	})

	t.Run("Status override rejects unknown status", func(t *testing.T) {
		router, _ := setup(t)

		req := httptest.NewRequest(http.MethodPut, "/donations/5/status", strings.NewReader(`{"status":"refunded"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(domainerr.CodeInvalidPaymentData), decode(t, w)["code"])
	})

	t.Run("Gateway timeout", func(t *testing.T) {
		router, uc := setup(t)
		uc.EXPECT().GetTransaction(mock.Anything, int64(777)).
			Return(nil, domainerr.NewGatewayError("/payments/get", 0, domainerr.ErrGatewayTimeout)).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions/777", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Equal(t, float64(domainerr.CodeGatewayTimeout), decode(t, w)["code"])
	})
}

type stubChecker struct {
	err error
}

func (s stubChecker) Check(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Database up", expected: http.StatusOK},
		{name: "Database down", err: errors.New("connection refused"), expected: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(stubChecker{err: tc.err}).Health)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}
