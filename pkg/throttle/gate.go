// Package throttle enforces the minimum interval between haptic nudges per
// user. The gate reads a last-feedback marker, compares elapsed wall-clock time
// and fails open on store errors: availability of coaching feedback is
// prioritized over strict throttling.
package throttle

import (
	"context"
	"log"
	"time"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store persists per-user last-feedback markers
type Store interface {
	LastFeedback(ctx context.Context, userID string) (ts time.Time, found bool, err error)
	SetLastFeedback(ctx context.Context, userID string, ts time.Time) error
}

// Gate decides whether a user may receive feedback now.
//
// The read-then-later-write pattern is not atomic: two concurrent calls for the
// same user can both pass before either marks. Acceptable because telemetry
// delivery is serialized per user by the upstream session protocol; a stricter
// deployment should switch the store to a conditional set-with-expiry.
type Gate struct {
	store Store
	now   func() time.Time // injectable clock for tests
}

// NewGate creates a throttle gate over the given marker store
func NewGate(store Store) *Gate {
	return &Gate{store: store, now: time.Now}
}

// Allow reports whether enough time has passed since the user's last feedback.
// First-ever feedback is always allowed; read failures fail open.
func (g *Gate) Allow(ctx context.Context, userID string, minInterval time.Duration) bool {
	last, found, err := g.store.LastFeedback(ctx, userID)
	if err != nil {
		log.Printf("[WARN] throttle read failed for user %s, allowing feedback: %v", userID, err)
		return true
	}
	if !found {
		return true
	}
	return g.now().Sub(last) >= minInterval
}

// Mark records the current time as the user's last-feedback marker. Called only
// after a decision is accepted for delivery, not on every gate check.
func (g *Gate) Mark(ctx context.Context, userID string) error {
	return g.store.SetLastFeedback(ctx, userID, g.now())
}
