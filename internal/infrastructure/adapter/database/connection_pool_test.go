package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	mcore "github.com/vooz/donation-processor/mocks/port/core"
)

type fakeStats struct {
	stats sql.DBStats
}

func (f fakeStats) Stats() sql.DBStats { return f.stats }

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	return f.err
}

func TestConnectionPoolMonitor(t *testing.T) {
	log := mcore.NewMockLogger(t)
	log.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

	monitor := NewConnectionPoolMonitor(fakeStats{sql.DBStats{MaxOpenConnections: 10, InUse: 9, Idle: 1}}, log)
	monitor.Start(time.Hour)
	defer monitor.Stop()

	metrics := monitor.GetMetrics()
	assert.Equal(t, 9, metrics.InUse)
	assert.Equal(t, 10, metrics.MaxOpenConnections)

	monitor.Stop()
}

func TestHealthChecker(t *testing.T) {
	log := mcore.NewMockLogger(t)

	healthy := NewHealthChecker(fakePinger{}, log, time.Second)
	assert.NoError(t, healthy.Check(context.Background()))

	log.EXPECT().Error("Database ping failed", mock.Anything).Once()
	down := NewHealthChecker(fakePinger{err: errors.New("connection refused")}, log, time.Second)
	assert.ErrorContains(t, down.Check(context.Background()), "connection refused")
}
