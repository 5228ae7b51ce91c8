package cloudpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/gateway"
	"github.com/vooz/donation-processor/internal/infrastructure/config"
)

const (
	endpointRefund = "/payments/refund"
	endpointGet    = "/payments/get"

	placeholderMessage = "Test mode - placeholder keys"
	maxResponseBytes   = 1 << 20
	defaultTimeout     = 10 * time.Second
)

var _ gateway.PaymentGateway = (*Client)(nil)

// Client calls the processor's server API with Basic publicId:apiSecret auth
type Client struct {
	publicID    string
	apiSecret   string
	baseURL     string
	placeholder bool
	httpClient  *http.Client
	logger      coreport.Logger
}

// NewClient creates a client from the processor settings
func NewClient(conf config.CloudPaymentsConfig, logger coreport.Logger) *Client {
	timeout := conf.APITimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		publicID:    conf.PublicID,
		apiSecret:   conf.APISecret,
		baseURL:     strings.TrimRight(conf.APIURL, "/"),
		placeholder: conf.UsesPlaceholderSecret(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Refund returns money for a transaction; a nil amount refunds in full
func (c *Client) Refund(ctx context.Context, transactionID int64, amount *decimal.Decimal) (*gateway.APIResult, error) {
	payload := map[string]any{
		"TransactionId": transactionID,
	}
	if amount != nil {
		payload["Amount"] = amount.InexactFloat64()
	}
	return c.call(ctx, endpointRefund, payload)
}

// GetTransaction fetches the processor's view of a transaction
func (c *Client) GetTransaction(ctx context.Context, transactionID int64) (*gateway.APIResult, error) {
	return c.call(ctx, endpointGet, map[string]any{
		"TransactionId": transactionID,
	})
}

func (c *Client) call(ctx context.Context, endpoint string, payload map[string]any) (*gateway.APIResult, error) {
	if c.placeholder {
		return placeholderResult(payload), nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicID, c.apiSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errs.NewGatewayError(endpoint, 0, fmt.Errorf("%w: %s", errs.ErrGatewayTimeout, err.Error()))
		}
		return nil, errs.NewGatewayError(endpoint, 0, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error()))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		c.logger.Warn("Payment processor API returned non-200", map[string]any{
			"endpoint":    endpoint,
			"http_status": resp.StatusCode,
		})
		return &gateway.APIResult{
			Success: false,
			Message: fmt.Sprintf("API request failed with code %d", resp.StatusCode),
		}, nil
	}

	var result gateway.APIResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		c.logger.Warn("Payment processor API returned an unreadable body", map[string]any{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return &gateway.APIResult{}, nil
	}

	c.logger.Debug("Payment processor API call completed", map[string]any{
		"endpoint": endpoint,
		"success":  result.Success,
	})
	return &result, nil
}

func placeholderResult(payload map[string]any) *gateway.APIResult {
	amount, ok := payload["Amount"]
	if !ok {
		amount = 0
	}

	return &gateway.APIResult{
		Success: true,
		Message: placeholderMessage,
		Model: map[string]any{
			"TransactionId": int64(100000 + rand.Intn(900000)),
			"Amount":        amount,
			"Status":        "Completed",
		},
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
