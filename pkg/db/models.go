package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

// row types mirror table columns; JSON columns are unpacked into domain types
// by the converters below

type settingsRow struct {
	UserID                 string    `db:"user_id"`
	HapticStrength         int       `db:"haptic_strength"`
	ActivePatterns         string    `db:"active_patterns"`
	PriorityThreshold      string    `db:"priority_threshold"`
	MinimumIntervalSeconds int       `db:"minimum_interval_seconds"`
	FeedbackFrequency      string    `db:"feedback_frequency"`
	ScenarioOverrides      string    `db:"scenario_overrides"`
	UpdatedAt              time.Time `db:"updated_at"`
}

func (r *settingsRow) toDomain() (domain.UserSettings, error) {
	s := domain.UserSettings{
		UserID:                 r.UserID,
		HapticStrength:         r.HapticStrength,
		PriorityThreshold:      domain.Priority(r.PriorityThreshold),
		MinimumIntervalSeconds: r.MinimumIntervalSeconds,
		FeedbackFrequency:      r.FeedbackFrequency,
		UpdatedAt:              r.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(r.ActivePatterns), &s.ActivePatterns); err != nil {
		return s, fmt.Errorf("unmarshal active patterns: %w", err)
	}
	if err := json.Unmarshal([]byte(r.ScenarioOverrides), &s.ScenarioOverrides); err != nil {
		return s, fmt.Errorf("unmarshal scenario overrides: %w", err)
	}
	return s, nil
}

func settingsToRow(s domain.UserSettings) (settingsRow, error) {
	patterns, err := json.Marshal(s.ActivePatterns)
	if err != nil {
		return settingsRow{}, fmt.Errorf("marshal active patterns: %w", err)
	}
	overrides, err := json.Marshal(s.ScenarioOverrides)
	if err != nil {
		return settingsRow{}, fmt.Errorf("marshal scenario overrides: %w", err)
	}
	return settingsRow{
		UserID:                 s.UserID,
		HapticStrength:         s.HapticStrength,
		ActivePatterns:         string(patterns),
		PriorityThreshold:      string(s.PriorityThreshold),
		MinimumIntervalSeconds: s.MinimumIntervalSeconds,
		FeedbackFrequency:      s.FeedbackFrequency,
		ScenarioOverrides:      string(overrides),
		UpdatedAt:              s.UpdatedAt,
	}, nil
}

type patternRow struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Category         string `db:"category"`
	Waveform         string `db:"waveform"`
	DefaultIntensity int    `db:"default_intensity"`
	DurationMs       int    `db:"duration_ms"`
	VibrationCount   int    `db:"vibration_count"`
	IntervalsMs      string `db:"intervals_ms"`
}

func (r *patternRow) toDomain() (domain.PatternSpec, error) {
	p := domain.PatternSpec{
		ID:               r.ID,
		Name:             r.Name,
		Category:         r.Category,
		Waveform:         r.Waveform,
		DefaultIntensity: r.DefaultIntensity,
		DurationMs:       r.DurationMs,
		VibrationCount:   r.VibrationCount,
	}
	if err := json.Unmarshal([]byte(r.IntervalsMs), &p.IntervalsMs); err != nil {
		return p, fmt.Errorf("unmarshal intervals: %w", err)
	}
	return p, nil
}

type eventRow struct {
	ID         string     `db:"id"`
	SessionID  string     `db:"session_id"`
	UserID     string     `db:"user_id"`
	PatternID  string     `db:"pattern_id"`
	Type       string     `db:"feedback_type"`
	Intensity  int        `db:"intensity"`
	Message    string     `db:"message"`
	Trigger    string     `db:"trigger_json"`
	Status     string     `db:"status"`
	Context    string     `db:"context_json"`
	CreatedAt  time.Time  `db:"created_at"`
	ReceivedAt *time.Time `db:"received_at"`
}

func (r *eventRow) toDomain() (domain.FeedbackEvent, error) {
	e := domain.FeedbackEvent{
		ID:         r.ID,
		SessionID:  r.SessionID,
		UserID:     r.UserID,
		PatternID:  r.PatternID,
		Type:       domain.DecisionType(r.Type),
		Intensity:  r.Intensity,
		Message:    r.Message,
		Status:     domain.DeliveryStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		ReceivedAt: r.ReceivedAt,
	}
	if err := json.Unmarshal([]byte(r.Trigger), &e.Trigger); err != nil {
		return e, fmt.Errorf("unmarshal trigger: %w", err)
	}
	if err := json.Unmarshal([]byte(r.Context), &e.Context); err != nil {
		return e, fmt.Errorf("unmarshal context: %w", err)
	}
	return e, nil
}

func eventToRow(e domain.FeedbackEvent) (eventRow, error) {
	trigger, err := json.Marshal(e.Trigger)
	if err != nil {
		return eventRow{}, fmt.Errorf("marshal trigger: %w", err)
	}
	eventContext, err := json.Marshal(e.Context)
	if err != nil {
		return eventRow{}, fmt.Errorf("marshal context: %w", err)
	}
	return eventRow{
		ID:         e.ID,
		SessionID:  e.SessionID,
		UserID:     e.UserID,
		PatternID:  e.PatternID,
		Type:       string(e.Type),
		Intensity:  e.Intensity,
		Message:    e.Message,
		Trigger:    string(trigger),
		Status:     string(e.Status),
		Context:    string(eventContext),
		CreatedAt:  e.CreatedAt,
		ReceivedAt: e.ReceivedAt,
	}, nil
}
