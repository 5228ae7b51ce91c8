package notification

import (
	"context"
	"time"

	"github.com/vooz/donation-processor/internal/domain/entity"
)

// EventType names something donors or staff should hear about
type EventType string

const (
	EventDonationSubmitted EventType = "donation_submitted"
	EventPaymentSucceeded  EventType = "payment_succeeded"
	EventPaymentRejected   EventType = "payment_rejected"
)

// Event is a notification about a donation
type Event struct {
	Type          EventType
	Donation      entity.Donation
	TransactionID int64
	Reason        string
	OccurredAt    time.Time
}

// Notifier accepts events for asynchronous delivery. Notify must not block
// the caller on delivery.
type Notifier interface {
	// Notify queues an event
	//
	// Possible errors:
	// - ErrNotificationQueueFull: If the queue cannot take more events
	Notify(ctx context.Context, event Event) error
}

// Sender delivers a single event synchronously
type Sender interface {
	Send(ctx context.Context, event Event) error
}
