package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bookingagenthq/booking-agent/internal/config"
)

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

// Deduper claims Vapi call IDs so webhook retries don't double-book. Claims
// expire after a day; Vapi retries come within minutes.
type Deduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDeduper(rdb *redis.Client) *Deduper {
	return &Deduper{rdb: rdb, ttl: 24 * time.Hour}
}

// ClaimCall returns true when this is the first time the call ID is seen.
func (d *Deduper) ClaimCall(ctx context.Context, callID string) (bool, error) {
	return d.rdb.SetNX(ctx, "vapi:call:"+callID, 1, d.ttl).Result()
}
