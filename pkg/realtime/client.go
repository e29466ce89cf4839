// Package realtime wraps the shared Redis connection used as the distributed
// last-feedback ledger and as the pub/sub bus for realtime delivery fan-out.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// key layout shared with the delivery consumers
const (
	lastFeedbackKeyPrefix = "feedback:last:"
	sessionChannelPrefix  = "session:"
)

// Config holds Redis connection settings
type Config struct {
	Addr           string
	Password       string
	DB             int
	PublishTimeout time.Duration // cap on bus publish latency, best-effort semantics
	MarkerTTL      time.Duration // optional natural expiry for throttle markers, 0 keeps them forever
}

// Client is the engine-facing handle over Redis
type Client struct {
	rdb            *redis.Client
	publishTimeout time.Duration
	markerTTL      time.Duration
}

// New creates a Redis client and verifies connectivity
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.PublishTimeout == 0 {
		cfg.PublishTimeout = 2 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	return &Client{rdb: rdb, publishTimeout: cfg.PublishTimeout, markerTTL: cfg.MarkerTTL}, nil
}

// Close releases the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// LastFeedback reads the user's last-feedback marker; found is false when the
// user has never received feedback or the marker expired
func (c *Client) LastFeedback(ctx context.Context, userID string) (time.Time, bool, error) {
	val, err := c.rdb.Get(ctx, lastFeedbackKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get last feedback marker: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse last feedback marker %q: %w", val, err)
	}
	return ts, true, nil
}

// SetLastFeedback overwrites the user's last-feedback marker
func (c *Client) SetLastFeedback(ctx context.Context, userID string, ts time.Time) error {
	err := c.rdb.Set(ctx, lastFeedbackKeyPrefix+userID, ts.Format(time.RFC3339Nano), c.markerTTL).Err()
	if err != nil {
		return fmt.Errorf("set last feedback marker: %w", err)
	}
	return nil
}

// Publish sends a payload to the session channel with a bounded timeout.
// Delivery is at-most-once; subscribers that are offline miss the message.
func (c *Client) Publish(ctx context.Context, sessionID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal publish payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.publishTimeout)
	defer cancel()

	if err := c.rdb.Publish(ctx, sessionChannelPrefix+sessionID, data).Err(); err != nil {
		return fmt.Errorf("publish to session %s: %w", sessionID, err)
	}
	return nil
}
