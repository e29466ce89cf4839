package domain

import "time"

// Priority ranks how urgently a nudge should be delivered
type Priority string

// priority levels, low to high
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DecisionType tags the feedback class the policy selected
type DecisionType string

// decision types produced by the current cascade plus legacy tags still emitted
// by older analyzer versions; the renderer maps all of them to catalog patterns
const (
	DecisionSpeedTooFast    DecisionType = "speed_too_fast"
	DecisionConfidenceHigh  DecisionType = "confidence_high"
	DecisionConfidenceLow   DecisionType = "confidence_low"
	DecisionFillerWordsHigh DecisionType = "filler_words_high"

	// legacy tags
	DecisionSpeedFast       DecisionType = "speed_fast"
	DecisionConfidenceDown  DecisionType = "confidence_down"
	DecisionLikeabilityUp   DecisionType = "likeability_excellent"
	DecisionLikeabilityLow  DecisionType = "likeability_low"
	DecisionInterestDown    DecisionType = "interest_down"
	DecisionPersuasionLow   DecisionType = "persuasion_low"
	DecisionStabilityLow    DecisionType = "stability_low"
)

// Trigger records the signal that fired a decision so consumers can rank severity
type Trigger struct {
	Source     string             `json:"source"`     // e.g. speaking_rate, scenario_score, filler_ratio
	Confidence float64            `json:"confidence"` // 0..1, derived from distance over threshold
	Data       map[string]float64 `json:"data,omitempty"`
}

// FeedbackDecision is the policy's choice of at most one feedback class per snapshot
type FeedbackDecision struct {
	Type      DecisionType `json:"type"`
	Priority  Priority     `json:"priority"`
	Message   string       `json:"message"`
	VisualCue string       `json:"visual_cue"`
	Trigger   Trigger      `json:"trigger"`
}

// DeliveryStatus tracks the feedback event lifecycle: created -> sent -> received
type DeliveryStatus string

// delivery states; received is terminal, there is no transition back
const (
	DeliverySent     DeliveryStatus = "sent"
	DeliveryReceived DeliveryStatus = "received"
)

// EventContext is the truncated snapshot stored with a feedback event for reporting
type EventContext struct {
	Text           string  `json:"text,omitempty"`
	SpeakingRate   float64 `json:"speaking_rate"`
	PrimaryScore   float64 `json:"primary_score"`
	SecondaryScore float64 `json:"secondary_score"`
}

// FeedbackEvent is the durable append-only history record of a delivered nudge
type FeedbackEvent struct {
	ID         string         `json:"id" db:"id"`
	SessionID  string         `json:"session_id" db:"session_id"`
	UserID     string         `json:"user_id" db:"user_id"`
	PatternID  string         `json:"pattern_id" db:"pattern_id"`
	Type       DecisionType   `json:"type" db:"feedback_type"`
	Intensity  int            `json:"intensity" db:"intensity"`
	Haptic     HapticPattern  `json:"haptic" db:"-"` // rendered vibration parameters, derivable from PatternID+Intensity
	Message    string         `json:"message" db:"message"`
	Trigger    Trigger        `json:"trigger" db:"-"`
	Status     DeliveryStatus `json:"status" db:"status"`
	Context    EventContext   `json:"context" db:"-"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	ReceivedAt *time.Time     `json:"received_at,omitempty" db:"received_at"`
}

// Envelope is the wire shape published to the realtime bus. Field names are fixed
// for interoperability with existing delivery consumers.
type Envelope struct {
	Type      string         `json:"type"` // always "haptic_feedback"
	SessionID string         `json:"sessionId"`
	Feedback  *FeedbackEvent `json:"feedback"`
	Timestamp time.Time      `json:"timestamp"`
}
