package entity

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency applies when a notification carries no currency
const DefaultCurrency = "RUB"

// Processor statuses that mean the money was taken
const (
	ProcessorStatusAuthorized = "Authorized"
	ProcessorStatusCompleted  = "Completed"
)

// PaymentEvent is one processor notification in typed form. It exists only
// for the duration of a webhook call.
type PaymentEvent struct {
	TransactionID int64
	Amount        decimal.Decimal
	Currency      string
	DateTime      string
	Email         string
	Name          string
	InvoiceID     string
	Description   string
	AccountID     string
	Status        string
	StatusCode    string
	Reason        string
	ReasonCode    string
	CardFirstSix  string
	CardLastFour  string
	CardType      string
	TestMode      bool
	Token         *string
	Data          map[string]any
}

// ParsePaymentEvent extracts a PaymentEvent from a decoded payload. It never
// fails: missing or malformed values fall back to zero values, except
// Currency ("RUB"), DateTime (now) and TestMode (true).
func ParsePaymentEvent(payload map[string]any, now time.Time) PaymentEvent {
	event := PaymentEvent{
		TransactionID: int64Value(payload["TransactionId"]),
		Amount:        decimalValue(payload["Amount"]),
		Currency:      stringValue(payload["Currency"]),
		DateTime:      stringValue(payload["DateTime"]),
		Email:         stringValue(payload["Email"]),
		Name:          stringValue(payload["Name"]),
		InvoiceID:     stringValue(payload["InvoiceId"]),
		Description:   stringValue(payload["Description"]),
		AccountID:     stringValue(payload["AccountId"]),
		Status:        stringValue(payload["Status"]),
		StatusCode:    stringValue(payload["StatusCode"]),
		Reason:        stringValue(payload["Reason"]),
		ReasonCode:    stringValue(payload["ReasonCode"]),
		CardFirstSix:  stringValue(payload["CardFirstSix"]),
		CardLastFour:  stringValue(payload["CardLastFour"]),
		CardType:      stringValue(payload["CardType"]),
		TestMode:      boolValue(payload["TestMode"], true),
		Data:          mapValue(payload["Data"]),
	}

	if payload["Currency"] == nil {
		event.Currency = DefaultCurrency
	}
	if event.DateTime == "" {
		event.DateTime = now.Format(time.RFC3339)
	}
	if token := stringValue(payload["Token"]); token != "" {
		event.Token = &token
	}

	return event
}

// IsValid reports whether the event may drive a state transition
func (e PaymentEvent) IsValid() bool {
	return e.TransactionID > 0 &&
		e.Amount.IsPositive() &&
		e.Currency != "" &&
		e.InvoiceID != ""
}

// IsSuccessful reports whether the processor says the money was taken
func (e PaymentEvent) IsSuccessful() bool {
	return e.Status == ProcessorStatusAuthorized || e.Status == ProcessorStatusCompleted
}

// HasToken reports whether a recurring-charge token came with the event
func (e PaymentEvent) HasToken() bool {
	return e.Token != nil && *e.Token != ""
}

// Details returns the processor-reported fields stored with the donation.
// The token is stored in its own column and left out here.
func (e PaymentEvent) Details() map[string]any {
	details := map[string]any{
		"transaction_id": e.TransactionID,
		"amount":         e.Amount.String(),
		"currency":       e.Currency,
		"date_time":      e.DateTime,
		"email":          e.Email,
		"name":           e.Name,
		"invoice_id":     e.InvoiceID,
		"description":    e.Description,
		"status":         e.Status,
		"status_code":    e.StatusCode,
		"test_mode":      e.TestMode,
	}

	optional := map[string]string{
		"account_id":     e.AccountID,
		"reason":         e.Reason,
		"reason_code":    e.ReasonCode,
		"card_first_six": e.CardFirstSix,
		"card_last_four": e.CardLastFour,
		"card_type":      e.CardType,
	}
	for key, value := range optional {
		if value != "" {
			details[key] = value
		}
	}
	if len(e.Data) > 0 {
		details["data"] = e.Data
	}

	return details
}

// DecodeWebhookBody turns a JSON object or a form-encoded body into a
// payload map. Anything it cannot read yields an empty map.
func DecodeWebhookBody(raw []byte, contentType string) map[string]any {
	payload := map[string]any{}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/x-www-form-urlencoded" {
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return payload
		}
		for key := range values {
			payload[key] = values.Get(key)
		}
		return payload
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil || payload == nil {
		return map[string]any{}
	}
	return payload
}

func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		if value {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

func int64Value(v any) int64 {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		if f, err := value.Float64(); err == nil {
			return int64(f)
		}
	case float64:
		return int64(value)
	case int:
		return int64(value)
	case int64:
		return value
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return i
		}
	}
	return 0
}

func decimalValue(v any) decimal.Decimal {
	switch value := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(value.String()); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(value)
	case int:
		return decimal.NewFromInt(int64(value))
	case int64:
		return decimal.NewFromInt(value)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func boolValue(v any, fallback bool) bool {
	switch value := v.(type) {
	case nil:
		return fallback
	case bool:
		return value
	case json.Number:
		f, err := value.Float64()
		return err == nil && f != 0
	case float64:
		return value != 0
	case int:
		return value != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "", "0", "false":
			return false
		default:
			return true
		}
	default:
		return fallback
	}
}

func mapValue(v any) map[string]any {
	switch value := v.(type) {
	case map[string]any:
		return value
	case string:
		data := map[string]any{}
		if err := json.Unmarshal([]byte(value), &data); err == nil {
			return data
		}
	}
	return map[string]any{}
}
