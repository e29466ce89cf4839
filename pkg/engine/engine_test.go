package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haptitalk/feedback-engine/pkg/domain"
	"github.com/haptitalk/feedback-engine/pkg/engine/mocks"
	"github.com/haptitalk/feedback-engine/pkg/policy"
)

type testDeps struct {
	settings *mocks.SettingsStoreMock
	history  *mocks.HistoryStoreMock
	bus      *mocks.PublisherMock
	gate     *mocks.GateMock
}

func newTestEngine(t *testing.T) (*Engine, *testDeps) {
	t.Helper()

	deps := &testDeps{
		settings: &mocks.SettingsStoreMock{
			GetUserSettingsFunc: func(ctx context.Context, userID string) (domain.UserSettings, error) {
				return domain.DefaultUserSettings(userID), nil
			},
		},
		history: &mocks.HistoryStoreMock{
			AppendEventFunc: func(ctx context.Context, event domain.FeedbackEvent) (string, error) {
				return event.ID, nil
			},
			MarkEventReceivedFunc: func(ctx context.Context, eventID string, receivedAt time.Time) error {
				return nil
			},
		},
		bus: &mocks.PublisherMock{
			PublishFunc: func(ctx context.Context, sessionID string, payload any) error {
				return nil
			},
		},
		gate: &mocks.GateMock{
			AllowFunc: func(ctx context.Context, userID string, minInterval time.Duration) bool {
				return true
			},
			MarkFunc: func(ctx context.Context, userID string) error {
				return nil
			},
		},
	}

	eng := New(Params{
		Settings: deps.settings,
		History:  deps.history,
		Bus:      deps.bus,
		Gate:     deps.gate,
		Policy:   policy.New(policy.DefaultConfig()),
	})
	return eng, deps
}

// fastSnapshot reliably trips the pace check
func fastSnapshot() domain.TelemetrySnapshot {
	return domain.TelemetrySnapshot{
		Scenario:        domain.ScenarioPresentation,
		SpeakingRateWPM: 150,
		SpeechDensity:   0.6,
		Tonality:        0.7,
		Timestamp:       time.Now(),
	}
}

// quietSnapshot matches no cascade check
func quietSnapshot() domain.TelemetrySnapshot {
	return domain.TelemetrySnapshot{
		Scenario:        domain.ScenarioPresentation,
		SpeakingRateWPM: 125,
		SpeechDensity:   0.6,
		Tonality:        0.7,
		Clarity:         0.7,
		Text:            "a perfectly ordinary sentence with no issues",
		Timestamp:       time.Now(),
	}
}

func TestGenerateFeedback_FullFlow(t *testing.T) {
	eng, deps := newTestEngine(t)

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.DecisionSpeedTooFast, event.Type)
	assert.Equal(t, "sess-1", event.SessionID)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, domain.DeliverySent, event.Status)
	assert.Equal(t, "S1", event.PatternID)
	assert.NotEmpty(t, event.ID)
	// default strength 5 with the urgent +2 bias
	assert.Equal(t, 7, event.Intensity)

	// envelope published to the session channel with the fixed wire shape
	calls := deps.bus.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sess-1", calls[0].SessionID)
	envelope, ok := calls[0].Payload.(domain.Envelope)
	require.True(t, ok)
	assert.Equal(t, "haptic_feedback", envelope.Type)
	assert.Equal(t, "sess-1", envelope.SessionID)
	assert.Equal(t, event.ID, envelope.Feedback.ID)

	// throttle marked after the accepted decision
	require.Len(t, deps.gate.MarkCalls(), 1)
	assert.Equal(t, "user-1", deps.gate.MarkCalls()[0].UserID)

	// async history append lands after Close drains the queue
	eng.Close()
	require.Len(t, deps.history.AppendEventCalls(), 1)
	assert.Equal(t, event.ID, deps.history.AppendEventCalls()[0].Event.ID)
}

func TestGenerateFeedback_ThrottledReturnsNil(t *testing.T) {
	eng, deps := newTestEngine(t)
	deps.gate.AllowFunc = func(ctx context.Context, userID string, minInterval time.Duration) bool {
		return false
	}

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.NoError(t, err)
	assert.Nil(t, event, "throttled is not an error")

	eng.Close()
	assert.Empty(t, deps.bus.PublishCalls())
	assert.Empty(t, deps.history.AppendEventCalls())
	assert.Empty(t, deps.gate.MarkCalls(), "no decision, no marker write")
}

func TestGenerateFeedback_NoDecisionReturnsNil(t *testing.T) {
	eng, deps := newTestEngine(t)

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", quietSnapshot())
	require.NoError(t, err)
	assert.Nil(t, event, "no matching check is the expected common case")

	eng.Close()
	assert.Empty(t, deps.bus.PublishCalls())
	assert.Empty(t, deps.gate.MarkCalls())
}

func TestGenerateFeedback_ThrottleUsesUserInterval(t *testing.T) {
	eng, deps := newTestEngine(t)
	deps.settings.GetUserSettingsFunc = func(ctx context.Context, userID string) (domain.UserSettings, error) {
		s := domain.DefaultUserSettings(userID)
		s.MinimumIntervalSeconds = 42
		return s, nil
	}

	_, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", quietSnapshot())
	require.NoError(t, err)

	calls := deps.gate.AllowCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 42*time.Second, calls[0].MinInterval)
}

func TestGenerateFeedback_SettingsFailureIsFatal(t *testing.T) {
	eng, deps := newTestEngine(t)
	deps.settings.GetUserSettingsFunc = func(ctx context.Context, userID string) (domain.UserSettings, error) {
		return domain.UserSettings{}, errors.New("db gone")
	}

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.Error(t, err, "no settings means feedback unavailable, not silently empty")
	assert.Nil(t, event)
	assert.Contains(t, err.Error(), "feedback unavailable")

	// retried before giving up
	assert.GreaterOrEqual(t, len(deps.settings.GetUserSettingsCalls()), 2)
}

func TestGenerateFeedback_SettingsRecoverOnRetry(t *testing.T) {
	eng, deps := newTestEngine(t)
	attempts := 0
	deps.settings.GetUserSettingsFunc = func(ctx context.Context, userID string) (domain.UserSettings, error) {
		attempts++
		if attempts == 1 {
			return domain.UserSettings{}, errors.New("transient")
		}
		return domain.DefaultUserSettings(userID), nil
	}

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.NoError(t, err)
	assert.NotNil(t, event)
	eng.Close()
}

func TestGenerateFeedback_PublishFailureDoesNotFail(t *testing.T) {
	eng, deps := newTestEngine(t)
	deps.bus.PublishFunc = func(ctx context.Context, sessionID string, payload any) error {
		return errors.New("bus unavailable")
	}

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.NoError(t, err, "publish is best-effort")
	require.NotNil(t, event)

	// history still recorded and throttle still marked
	eng.Close()
	assert.Len(t, deps.history.AppendEventCalls(), 1)
	assert.Len(t, deps.gate.MarkCalls(), 1)
}

func TestGenerateFeedback_HistoryFailureSwallowed(t *testing.T) {
	eng, deps := newTestEngine(t)
	deps.history.AppendEventFunc = func(ctx context.Context, event domain.FeedbackEvent) (string, error) {
		return "", errors.New("history store down")
	}

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.NoError(t, err)
	assert.NotNil(t, event, "history failure never reaches the caller")
	eng.Close()
}

func TestGenerateFeedback_ContextTextTruncated(t *testing.T) {
	eng, _ := newTestEngine(t)

	snapshot := fastSnapshot()
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	snapshot.Text = string(long)

	event, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", snapshot)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Len(t, event.Context.Text, 200)
	eng.Close()
}

func TestAcknowledgeFeedback(t *testing.T) {
	eng, deps := newTestEngine(t)
	now := time.Now()

	require.NoError(t, eng.AcknowledgeFeedback(context.Background(), "fb-1", now))
	// idempotent: second call is also a success
	require.NoError(t, eng.AcknowledgeFeedback(context.Background(), "fb-1", now))

	calls := deps.history.MarkEventReceivedCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "fb-1", calls[0].EventID)
}

func TestAcknowledgeFeedback_StoreError(t *testing.T) {
	eng, deps := newTestEngine(t)
	deps.history.MarkEventReceivedFunc = func(ctx context.Context, eventID string, receivedAt time.Time) error {
		return errors.New("write failed")
	}

	err := eng.AcknowledgeFeedback(context.Background(), "fb-1", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acknowledge feedback fb-1")
}

func TestGenerateFeedback_MinimumIntervalSingleThreaded(t *testing.T) {
	// wire the real throttle semantics through the mock: marker set on Mark,
	// Allow compares elapsed time
	eng, deps := newTestEngine(t)

	var marker *time.Time
	deps.gate.AllowFunc = func(ctx context.Context, userID string, minInterval time.Duration) bool {
		if marker == nil {
			return true
		}
		return time.Since(*marker) >= minInterval
	}
	deps.gate.MarkFunc = func(ctx context.Context, userID string) error {
		now := time.Now()
		marker = &now
		return nil
	}

	first, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.NoError(t, err)
	require.NotNil(t, first)

	// immediate second call is throttled by the default 10s interval
	second, err := eng.GenerateFeedback(context.Background(), "user-1", "sess-1", fastSnapshot())
	require.NoError(t, err)
	assert.Nil(t, second)
	eng.Close()
}
