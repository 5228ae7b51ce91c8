package cloudpayments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	"github.com/vooz/donation-processor/internal/infrastructure/config"
	mcore "github.com/vooz/donation-processor/mocks/port/core"
)

func newTestClient(t *testing.T, serverURL string, timeout time.Duration) *Client {
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewClient(config.CloudPaymentsConfig{
		PublicID:   "pk_test",
		APISecret:  "secret",
		APIURL:     serverURL + "/",
		APITimeout: timeout,
	}, logger)
}

func TestClient_Refund(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments/refund", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "pk_test", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"Success":true,"Message":null}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, time.Second)

	t.Run("Partial refund sends amount", func(t *testing.T) {
		amount := decimal.RequireFromString("250.50")

		result, err := client.Refund(context.Background(), 777, &amount)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, float64(777), received["TransactionId"])
		assert.Equal(t, 250.5, received["Amount"])
	})

	t.Run("Full refund omits amount", func(t *testing.T) {
		_, err := client.Refund(context.Background(), 777, nil)

		require.NoError(t, err)
		assert.NotContains(t, received, "Amount")
	})
}

func TestClient_GetTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/get", r.URL.Path)
		_, _ = w.Write([]byte(`{"Success":true,"Model":{"TransactionId":777,"Status":"Completed"}}`))
	}))
	defer server.Close()

	result, err := newTestClient(t, server.URL, time.Second).GetTransaction(context.Background(), 777)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Completed", result.Model["Status"])
}

func TestClient_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	result, err := newTestClient(t, server.URL, time.Second).GetTransaction(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "API request failed with code 401", result.Message)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestClient(t, server.URL, 50*time.Millisecond).GetTransaction(context.Background(), 1)

	assert.ErrorIs(t, err, errs.ErrGatewayTimeout)
	assert.True(t, errs.IsTimeoutError(err))
	var gwErr *errs.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "/payments/get", gwErr.Endpoint)
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(t, url, time.Second).Refund(context.Background(), 1, nil)

	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
}

func TestClient_Placeholder(t *testing.T) {
	client := NewClient(config.CloudPaymentsConfig{
		PublicID:  "pk_test",
		APISecret: config.PlaceholderAPISecret,
		APIURL:    "http://127.0.0.1:1",
	}, mcore.NewMockLogger(t))
	amount := decimal.NewFromInt(100)

	result, err := client.Refund(context.Background(), 5, &amount)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Test mode - placeholder keys", result.Message)
	assert.Equal(t, "Completed", result.Model["Status"])
	assert.Equal(t, 100.0, result.Model["Amount"])
	id := result.Model["TransactionId"].(int64)
	assert.GreaterOrEqual(t, id, int64(100000))
	assert.LessOrEqual(t, id, int64(999999))
}
