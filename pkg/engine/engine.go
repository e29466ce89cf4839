// Package engine is the feedback decision and delivery core: it scores a
// telemetry snapshot, runs the decision cascade, renders the haptic pattern,
// publishes the result for realtime delivery and records it in history, all
// without blocking the caller on persistence.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"

	"github.com/haptitalk/feedback-engine/pkg/domain"
	"github.com/haptitalk/feedback-engine/pkg/haptics"
	"github.com/haptitalk/feedback-engine/pkg/policy"
	"github.com/haptitalk/feedback-engine/pkg/scoring"
)

//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . HistoryStore
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate

// SettingsStore provides per-user feedback settings, creating defaults on
// first access
type SettingsStore interface {
	GetUserSettings(ctx context.Context, userID string) (domain.UserSettings, error)
}

// HistoryStore records feedback events durably
type HistoryStore interface {
	AppendEvent(ctx context.Context, event domain.FeedbackEvent) (string, error)
	MarkEventReceived(ctx context.Context, eventID string, receivedAt time.Time) error
}

// Publisher fans out feedback to realtime delivery consumers, at-most-once
type Publisher interface {
	Publish(ctx context.Context, sessionID string, payload any) error
}

// Gate enforces the per-user minimum feedback interval
type Gate interface {
	Allow(ctx context.Context, userID string, minInterval time.Duration) bool
	Mark(ctx context.Context, userID string) error
}

// Params holds engine dependencies and tunables
type Params struct {
	Settings SettingsStore
	History  HistoryStore
	Bus      Publisher
	Gate     Gate
	Policy   *policy.Policy

	RetryAttempts int           // settings lookup retries before the request fails
	AppendTimeout time.Duration // budget for the async history append
	MaxContextLen int           // history context text truncation
}

// Engine makes feedback decisions per telemetry snapshot. Safe for concurrent
// use; persistence runs on detached goroutines tracked for shutdown.
type Engine struct {
	settings SettingsStore
	history  HistoryStore
	bus      Publisher
	gate     Gate
	policy   *policy.Policy

	retryAttempts int
	appendTimeout time.Duration
	maxContextLen int

	wg  sync.WaitGroup
	now func() time.Time // injectable clock for tests
}

// New creates an engine with the given collaborators
func New(p Params) *Engine {
	if p.RetryAttempts == 0 {
		p.RetryAttempts = 3
	}
	if p.AppendTimeout == 0 {
		p.AppendTimeout = 5 * time.Second
	}
	if p.MaxContextLen == 0 {
		p.MaxContextLen = 200
	}
	return &Engine{
		settings:      p.Settings,
		history:       p.History,
		bus:           p.Bus,
		gate:          p.Gate,
		policy:        p.Policy,
		retryAttempts: p.RetryAttempts,
		appendTimeout: p.AppendTimeout,
		maxContextLen: p.MaxContextLen,
		now:           time.Now,
	}
}

// GenerateFeedback evaluates one telemetry snapshot for a user session.
// Returns nil without error when the user is throttled or no cascade check
// matched; returns an error only when settings cannot be loaded, the single
// condition under which feedback is unavailable rather than unwarranted.
func (e *Engine) GenerateFeedback(ctx context.Context, userID, sessionID string, snapshot domain.TelemetrySnapshot) (*domain.FeedbackEvent, error) {
	settings, err := e.loadSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feedback unavailable for user %s: %w", userID, err)
	}

	minInterval := time.Duration(settings.MinimumIntervalSeconds) * time.Second
	if !e.gate.Allow(ctx, userID, minInterval) {
		log.Printf("[DEBUG] feedback throttled for user %s, interval %v", userID, minInterval)
		return nil, nil
	}

	scores := scoring.Score(snapshot)
	decision := e.policy.Decide(scores, snapshot, settings)
	if decision == nil {
		return nil, nil
	}

	pattern := haptics.Render(decision.Type, settings.HapticStrength)

	event := &domain.FeedbackEvent{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		UserID:    userID,
		PatternID: pattern.PatternID,
		Type:      decision.Type,
		Intensity: pattern.Intensity,
		Haptic:    pattern,
		Message:   decision.Message,
		Trigger:   decision.Trigger,
		Status:    domain.DeliverySent,
		Context: domain.EventContext{
			Text:           truncate(snapshot.Text, e.maxContextLen),
			SpeakingRate:   snapshot.SpeakingRateWPM,
			PrimaryScore:   scores.Primary(),
			SecondaryScore: scores.Secondary(),
		},
		CreatedAt: e.now().UTC(),
	}

	// best-effort publish; a failed publish does not roll back the decision
	envelope := domain.Envelope{Type: "haptic_feedback", SessionID: sessionID, Feedback: event, Timestamp: event.CreatedAt}
	if err := e.bus.Publish(ctx, sessionID, envelope); err != nil {
		log.Printf("[WARN] publish feedback %s to session %s failed: %v", event.ID, sessionID, err)
	}

	// history append never blocks the caller and never propagates failure
	e.wg.Add(1)
	go func(ev domain.FeedbackEvent) {
		defer e.wg.Done()
		appendCtx, cancel := context.WithTimeout(context.Background(), e.appendTimeout)
		defer cancel()
		if _, err := e.history.AppendEvent(appendCtx, ev); err != nil {
			log.Printf("[WARN] append feedback event %s failed: %v", ev.ID, err)
		}
	}(*event)

	if err := e.gate.Mark(ctx, userID); err != nil {
		log.Printf("[WARN] throttle mark failed for user %s: %v", userID, err)
	}

	log.Printf("[INFO] feedback %s for user %s: type=%s priority=%s pattern=%s intensity=%d",
		event.ID, userID, event.Type, decision.Priority, event.PatternID, event.Intensity)
	return event, nil
}

// AcknowledgeFeedback flips the event's delivery status to received. Idempotent:
// repeated acknowledgement of the same id succeeds without changes.
func (e *Engine) AcknowledgeFeedback(ctx context.Context, feedbackID string, receivedAt time.Time) error {
	if err := e.history.MarkEventReceived(ctx, feedbackID, receivedAt); err != nil {
		return fmt.Errorf("acknowledge feedback %s: %w", feedbackID, err)
	}
	return nil
}

// Close waits for in-flight history appends to finish
func (e *Engine) Close() {
	e.wg.Wait()
}

// loadSettings retries transient settings failures with backoff; exhausting
// retries makes the whole request fail
func (e *Engine) loadSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	var settings domain.UserSettings
	retrier := repeater.NewBackoff(e.retryAttempts, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		var err error
		settings, err = e.settings.GetUserSettings(ctx, userID)
		return err
	})
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
