package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
)

const keyPrefix = "dp:webhook:"

var (
	_ persistence.DeliveryGuard = (*RedisDeliveryGuard)(nil)
	_ persistence.DeliveryGuard = NoopDeliveryGuard{}
)

// RedisDeliveryGuard keeps short-lived markers for handled notifications
type RedisDeliveryGuard struct {
	client redis.Cmdable
	ttl    time.Duration
	logger coreport.Logger
}

// NewRedisDeliveryGuard creates a guard backed by client
func NewRedisDeliveryGuard(client redis.Cmdable, ttl time.Duration, logger coreport.Logger) *RedisDeliveryGuard {
	return &RedisDeliveryGuard{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// NewClient opens a client and checks it answers
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis ping %s: %s", errs.ErrDatabaseConnection, addr, err.Error())
	}
	return client, nil
}

// Seen reports whether the marker exists
func (g *RedisDeliveryGuard) Seen(ctx context.Context, kind string, transactionID int64) (bool, error) {
	key := markerKey(kind, transactionID)

	n, err := g.client.Exists(ctx, key).Result()
	if err != nil {
		g.logger.Warn("Delivery marker lookup failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return n > 0, nil
}

// Remember writes the marker with the configured TTL
func (g *RedisDeliveryGuard) Remember(ctx context.Context, kind string, transactionID int64) error {
	key := markerKey(kind, transactionID)

	if err := g.client.SetNX(ctx, key, "1", g.ttl).Err(); err != nil {
		g.logger.Warn("Delivery marker write failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

func markerKey(kind string, transactionID int64) string {
	return keyPrefix + kind + ":" + strconv.FormatInt(transactionID, 10)
}

// NoopDeliveryGuard never reports a replay; used when redis is disabled
type NoopDeliveryGuard struct{}

// Seen always returns false
func (NoopDeliveryGuard) Seen(context.Context, string, int64) (bool, error) { return false, nil }

// Remember does nothing
func (NoopDeliveryGuard) Remember(context.Context, string, int64) error { return nil }
