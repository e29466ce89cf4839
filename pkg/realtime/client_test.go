package realtime

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestClient connects to a real Redis when TEST_REDIS_ADDR is set,
// otherwise skips. Keys are namespaced per test via random user/session ids.
func setupTestClient(t *testing.T) *Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("skipping, TEST_REDIS_ADDR not set")
	}

	client, err := New(context.Background(), Config{Addr: addr, MarkerTTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClient_LastFeedbackRoundTrip(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()
	userID := "test-user-" + uuid.NewString()

	_, found, err := client.LastFeedback(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found, "fresh user has no marker")

	ts := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, client.SetLastFeedback(ctx, userID, ts))

	got, found, err := client.LastFeedback(ctx, userID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Equal(ts), "marker survives the round trip, got %v want %v", got, ts)
}

func TestClient_SetLastFeedbackOverwrites(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()
	userID := "test-user-" + uuid.NewString()

	first := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, client.SetLastFeedback(ctx, userID, first))

	second := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, client.SetLastFeedback(ctx, userID, second))

	got, found, err := client.LastFeedback(ctx, userID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Equal(second))
}

func TestClient_PublishReachesSubscriber(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()
	sessionID := "test-session-" + uuid.NewString()

	sub := client.rdb.Subscribe(ctx, sessionChannelPrefix+sessionID)
	defer sub.Close()
	_, err := sub.Receive(ctx) // wait for the subscription confirmation
	require.NoError(t, err)

	payload := map[string]string{"type": "haptic_feedback", "sessionId": sessionID}
	require.NoError(t, client.Publish(ctx, sessionID, payload))

	select {
	case msg := <-sub.Channel():
		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, payload, got)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestClient_PublishUnmarshalablePayload(t *testing.T) {
	client := setupTestClient(t)

	err := client.Publish(context.Background(), "sess", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal publish payload")
}

func TestNew_BadAddr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, Config{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping redis")
}
