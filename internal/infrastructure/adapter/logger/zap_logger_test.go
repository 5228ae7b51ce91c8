package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vooz/donation-processor/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	observed, logs := observer.New(level)
	logger := newWithCore(observed, level)

	logger.Debug("hidden", nil)
	logger.Info("Payment successful", map[string]any{"donation_id": uint64(42)})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Payment successful", entry.Message)
	assert.Equal(t, uint64(42), entry.ContextMap()["donation_id"])

	logger.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, logger.GetLevel())
	logger.Warn("hidden", nil)
	logger.Error("shown", nil)
	assert.Equal(t, 2, logs.Len())
}

func TestZapLoggerWith(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	observed, logs := observer.New(level)
	logger := newWithCore(observed, level)

	child := logger.With(map[string]any{"request_id": "abc"})
	child.Info("Donation submitted", map[string]any{"invoice_id": "VOOZ-DONATION-1-1"})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "VOOZ-DONATION-1-1", fields["invoice_id"])

	// child shares the parent's level
	logger.SetLevel(core.LogLevelError)
	child.Info("hidden", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, logger.GetLevel())
	assert.Same(t, logger, logger.With(map[string]any{"a": 1}))
	assert.NoError(t, logger.Flush())
}
