package persistence

import (
	"context"
)

// DeliveryGuard remembers which processor notifications were already handled.
// It only short-circuits replays; the conditional status update stays the
// source of truth.
type DeliveryGuard interface {
	// Seen reports whether a notification of this kind for this transaction
	// was handled before
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the backing cache is unreachable
	Seen(ctx context.Context, kind string, transactionID int64) (bool, error)

	// Remember marks the notification as handled
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the backing cache is unreachable
	Remember(ctx context.Context, kind string, transactionID int64) error
}
