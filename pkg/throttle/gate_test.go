package throttle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haptitalk/feedback-engine/pkg/throttle/mocks"
)

func TestGate_FirstFeedbackAlwaysAllowed(t *testing.T) {
	store := &mocks.StoreMock{
		LastFeedbackFunc: func(ctx context.Context, userID string) (time.Time, bool, error) {
			return time.Time{}, false, nil
		},
	}
	gate := NewGate(store)

	assert.True(t, gate.Allow(context.Background(), "new-user", 10*time.Second))
	assert.True(t, gate.Allow(context.Background(), "new-user", time.Hour), "interval size irrelevant without a marker")
}

func TestGate_BlocksWithinInterval(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &mocks.StoreMock{
		LastFeedbackFunc: func(ctx context.Context, userID string) (time.Time, bool, error) {
			return now.Add(-5 * time.Second), true, nil
		},
	}
	gate := NewGate(store)
	gate.now = func() time.Time { return now }

	assert.False(t, gate.Allow(context.Background(), "u1", 10*time.Second))
	assert.True(t, gate.Allow(context.Background(), "u1", 5*time.Second), "exact boundary allows")
	assert.True(t, gate.Allow(context.Background(), "u1", 3*time.Second))
}

func TestGate_FailsOpenOnReadError(t *testing.T) {
	store := &mocks.StoreMock{
		LastFeedbackFunc: func(ctx context.Context, userID string) (time.Time, bool, error) {
			return time.Time{}, false, errors.New("redis down")
		},
	}
	gate := NewGate(store)

	assert.True(t, gate.Allow(context.Background(), "u1", time.Hour))
}

func TestGate_MarkWritesCurrentTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &mocks.StoreMock{
		SetLastFeedbackFunc: func(ctx context.Context, userID string, ts time.Time) error {
			return nil
		},
	}
	gate := NewGate(store)
	gate.now = func() time.Time { return now }

	require.NoError(t, gate.Mark(context.Background(), "u1"))

	calls := store.SetLastFeedbackCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "u1", calls[0].UserID)
	assert.Equal(t, now, calls[0].Ts)
}

func TestGate_AllowDoesNotWrite(t *testing.T) {
	store := &mocks.StoreMock{
		LastFeedbackFunc: func(ctx context.Context, userID string) (time.Time, bool, error) {
			return time.Time{}, false, nil
		},
	}
	gate := NewGate(store)

	gate.Allow(context.Background(), "u1", time.Second)
	assert.Empty(t, store.SetLastFeedbackCalls(), "marker written only after accepted decisions")
}
