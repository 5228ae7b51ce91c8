package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentEvent(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	t.Run("Full JSON payload", func(t *testing.T) {
		body := []byte(`{
			"TransactionId": 504,
			"Amount": 1000.50,
			"Currency": "RUB",
			"DateTime": "2024-03-05 14:07:09",
			"Email": "a@b.com",
			"Name": "ANNA",
			"InvoiceId": "VOOZ-DONATION-7-1709647629",
			"Description": "Пожертвование ВООЗ - Ежемесячное",
			"AccountId": "a@b.com",
			"Status": "Completed",
			"StatusCode": 3,
			"CardFirstSix": "424242",
			"CardLastFour": "4242",
			"CardType": "Visa",
			"TestMode": 0,
			"Token": "tk_123",
			"Data": {"name": "Anna"}
		}`)

		event := ParsePaymentEvent(DecodeWebhookBody(body, "application/json"), now)

		assert.Equal(t, int64(504), event.TransactionID)
		assert.True(t, decimal.RequireFromString("1000.50").Equal(event.Amount))
		assert.Equal(t, "RUB", event.Currency)
		assert.Equal(t, "2024-03-05 14:07:09", event.DateTime)
		assert.Equal(t, "VOOZ-DONATION-7-1709647629", event.InvoiceID)
		assert.Equal(t, "3", event.StatusCode)
		assert.Equal(t, "Visa", event.CardType)
		assert.False(t, event.TestMode)
		require.NotNil(t, event.Token)
		assert.Equal(t, "tk_123", *event.Token)
		assert.True(t, event.HasToken())
		assert.Equal(t, "Anna", event.Data["name"])
		assert.True(t, event.IsValid())
		assert.True(t, event.IsSuccessful())
	})

	t.Run("Empty payload gets defaults", func(t *testing.T) {
		event := ParsePaymentEvent(map[string]any{}, now)

		assert.Equal(t, int64(0), event.TransactionID)
		assert.True(t, event.Amount.IsZero())
		assert.Equal(t, DefaultCurrency, event.Currency)
		assert.Equal(t, now.Format(time.RFC3339), event.DateTime)
		assert.True(t, event.TestMode)
		assert.Nil(t, event.Token)
		assert.NotNil(t, event.Data)
		assert.False(t, event.IsValid())
		assert.False(t, event.IsSuccessful())
	})

	t.Run("Nil payload", func(t *testing.T) {
		event := ParsePaymentEvent(nil, now)
		assert.False(t, event.IsValid())
	})

	t.Run("Wrongly typed values fall back to zero", func(t *testing.T) {
		payload := map[string]any{
			"TransactionId": "not-a-number",
			"Amount":        []any{1, 2},
			"Currency":      "USD",
			"InvoiceId":     map[string]any{"x": 1},
			"TestMode":      "false",
			"Data":          "not json",
		}

		event := ParsePaymentEvent(payload, now)

		assert.Equal(t, int64(0), event.TransactionID)
		assert.True(t, event.Amount.IsZero())
		assert.Equal(t, "USD", event.Currency)
		assert.Equal(t, "", event.InvoiceID)
		assert.False(t, event.TestMode)
		assert.Empty(t, event.Data)
	})

	t.Run("Form encoded payload", func(t *testing.T) {
		body := []byte("TransactionId=77&Amount=500&Currency=RUB&InvoiceId=VOOZ-DONATION-3-1&Status=Declined&Reason=InsufficientFunds&ReasonCode=5051&TestMode=1&Data=%7B%22name%22%3A%22Anna%22%7D")

		event := ParsePaymentEvent(DecodeWebhookBody(body, "application/x-www-form-urlencoded; charset=utf-8"), now)

		assert.Equal(t, int64(77), event.TransactionID)
		assert.True(t, decimal.NewFromInt(500).Equal(event.Amount))
		assert.Equal(t, "InsufficientFunds", event.Reason)
		assert.Equal(t, "5051", event.ReasonCode)
		assert.True(t, event.TestMode)
		assert.Equal(t, "Anna", event.Data["name"])
		assert.True(t, event.IsValid())
		assert.False(t, event.IsSuccessful())
	})
}

func TestPaymentEventValidity(t *testing.T) {
	base := PaymentEvent{
		TransactionID: 1,
		Amount:        decimal.NewFromInt(100),
		Currency:      "RUB",
		InvoiceID:     "VOOZ-DONATION-1-1",
	}
	require.True(t, base.IsValid())

	testCases := []struct {
		name   string
		mutate func(e *PaymentEvent)
	}{
		{"Zero transaction", func(e *PaymentEvent) { e.TransactionID = 0 }},
		{"Negative transaction", func(e *PaymentEvent) { e.TransactionID = -1 }},
		{"Zero amount", func(e *PaymentEvent) { e.Amount = decimal.Zero }},
		{"Negative amount", func(e *PaymentEvent) { e.Amount = decimal.NewFromInt(-1) }},
		{"Empty currency", func(e *PaymentEvent) { e.Currency = "" }},
		{"Empty invoice", func(e *PaymentEvent) { e.InvoiceID = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := base
			tc.mutate(&event)
			assert.False(t, event.IsValid())
		})
	}
}

func TestDecodeWebhookBody(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		contentType string
		expectedLen int
	}{
		{"JSON object", `{"a":1,"b":"x"}`, "application/json", 2},
		{"JSON without content type", `{"a":1}`, "", 1},
		{"JSON array", `[1,2,3]`, "application/json", 0},
		{"JSON null", `null`, "application/json", 0},
		{"Broken JSON", `{"a":`, "application/json", 0},
		{"Empty body", ``, "application/json", 0},
		{"Form", `a=1&b=2`, "application/x-www-form-urlencoded", 2},
		{"Broken form", `a=%zz`, "application/x-www-form-urlencoded", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := DecodeWebhookBody([]byte(tc.body), tc.contentType)
			assert.NotNil(t, payload)
			assert.Len(t, payload, tc.expectedLen)
		})
	}
}

func TestPaymentEventDetails(t *testing.T) {
	token := "tk_secret"
	event := PaymentEvent{
		TransactionID: 9,
		Amount:        decimal.RequireFromString("250.00"),
		Currency:      "RUB",
		InvoiceID:     "VOOZ-DONATION-1-1",
		Status:        "Declined",
		Reason:        "InsufficientFunds",
		Token:         &token,
		Data:          map[string]any{"name": "Anna"},
	}

	details := event.Details()

	assert.Equal(t, int64(9), details["transaction_id"])
	assert.Equal(t, "250", details["amount"])
	assert.Equal(t, "InsufficientFunds", details["reason"])
	assert.NotContains(t, details, "token")
	assert.NotContains(t, details, "card_type")
	assert.Equal(t, map[string]any{"name": "Anna"}, details["data"])
}
