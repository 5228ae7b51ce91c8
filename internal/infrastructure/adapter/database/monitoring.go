package database

import (
	"time"

	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
)

// QueryMetrics holds metrics about a store operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector times store operations and reports the slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// Measure runs fn and logs it when it took longer than the slow threshold
func (c *MetricsCollector) Measure(operation string, fields map[string]any, fn func() error) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	err := fn()

	metrics := &QueryMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Since(start).Std(),
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		logFields := map[string]any{
			"operation":   operation,
			"duration_ms": metrics.Duration.Milliseconds(),
			"failed":      metrics.Failed,
		}
		for k, v := range fields {
			logFields[k] = v
		}
		if metrics.Failed {
			logFields["error_message"] = metrics.ErrorMessage
		}
		c.logger.Warn("Slow donation store operation", logFields)
	}

	return metrics, err
}
