package notification

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/notification"
	mcore "github.com/vooz/donation-processor/mocks/port/core"
	mnotif "github.com/vooz/donation-processor/mocks/port/notification"
)

func newTestDeps(t *testing.T) (*mnotif.MockSender, *mcore.MockTimeProvider, *mcore.MockLogger) {
	sender := mnotif.NewMockSender(t)
	clock := mcore.NewMockTimeProvider(t)
	logger := mcore.NewMockLogger(t)

	clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return sender, clock, logger
}

func event(id uint64) notification.Event {
	return notification.Event{
		Type:     notification.EventDonationSubmitted,
		Donation: entity.Donation{ID: id},
	}
}

func TestDispatcherDeliversAndDrains(t *testing.T) {
	sender, clock, logger := newTestDeps(t)

	var delivered atomic.Int32
	sender.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, e notification.Event) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			delivered.Add(1)
			return nil
		}).Times(5)

	d := NewDispatcher(sender, clock, logger, 2, 10, coreport.Second)
	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, d.Notify(context.Background(), event(i)))
	}

	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, int32(5), delivered.Load())
}

func TestDispatcherQueueFull(t *testing.T) {
	sender, clock, logger := newTestDeps(t)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	sender.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, notification.Event) error {
			started <- struct{}{}
			<-release
			return nil
		}).Times(2)

	d := NewDispatcher(sender, clock, logger, 1, 1, 0)

	require.NoError(t, d.Notify(context.Background(), event(1)))
	<-started
	require.NoError(t, d.Notify(context.Background(), event(2)))

	err := d.Notify(context.Background(), event(3))
	assert.ErrorIs(t, err, errs.ErrNotificationQueueFull)

	close(release)
	require.NoError(t, d.Shutdown(context.Background()))
}

func TestDispatcherKeepsWorkingAfterFailures(t *testing.T) {
	sender, clock, logger := newTestDeps(t)

	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(e notification.Event) bool { return e.Donation.ID == 1 })).
		Return(errors.New("smtp: 421 try later")).Once()
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(e notification.Event) bool { return e.Donation.ID == 2 })).
		RunAndReturn(func(context.Context, notification.Event) error { panic("template exploded") }).Once()
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(e notification.Event) bool { return e.Donation.ID == 3 })).
		Return(nil).Once()

	d := NewDispatcher(sender, clock, logger, 1, 10, 0)
	for i := uint64(1); i <= 3; i++ {
		require.NoError(t, d.Notify(context.Background(), event(i)))
	}

	require.NoError(t, d.Shutdown(context.Background()))
}

func TestDispatcherRejectsAfterShutdown(t *testing.T) {
	sender, clock, logger := newTestDeps(t)

	d := NewDispatcher(sender, clock, logger, 1, 1, 0)
	require.NoError(t, d.Shutdown(context.Background()))

	err := d.Notify(context.Background(), event(1))
	assert.ErrorIs(t, err, errs.ErrNotificationQueueFull)

	// second shutdown is a no-op
	require.NoError(t, d.Shutdown(context.Background()))
}

func TestDispatcherShutdownTimeout(t *testing.T) {
	sender, clock, logger := newTestDeps(t)

	release := make(chan struct{})
	defer close(release)
	sender.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, notification.Event) error {
			<-release
			return nil
		}).Once()

	d := NewDispatcher(sender, clock, logger, 1, 1, 0)
	require.NoError(t, d.Notify(context.Background(), event(1)))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)
}
