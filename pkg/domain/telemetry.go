package domain

import "time"

// Scenario identifies the conversation type a session is coaching
type Scenario string

// supported scenarios
const (
	ScenarioDating       Scenario = "dating"
	ScenarioInterview    Scenario = "interview"
	ScenarioPresentation Scenario = "presentation"
)

// ParseScenario normalizes a scenario tag, falling back to dating like the analysis pipeline does
func ParseScenario(s string) Scenario {
	switch Scenario(s) {
	case ScenarioInterview:
		return ScenarioInterview
	case ScenarioPresentation:
		return ScenarioPresentation
	default:
		return ScenarioDating
	}
}

// PauseMetrics describes pause behavior within the analyzed window
type PauseMetrics struct {
	Count           int     `json:"count"`
	Ratio           float64 `json:"ratio"`
	AverageDuration float64 `json:"average_duration"` // seconds
}

// TelemetrySnapshot is one point-in-time bundle of speech/emotion signals for a session.
// It is owned by the caller and never mutated by the engine. Numeric fields may be zero
// when the upstream analyzer could not produce them; scoring degrades gracefully.
type TelemetrySnapshot struct {
	SpeakingRateWPM  float64      `json:"speaking_rate_wpm"`
	SpeechDensity    float64      `json:"speech_density"` // 0..1 fraction of window with speech
	Tonality         float64      `json:"tonality"`       // 0..1 tone quality
	Clarity          float64      `json:"clarity"`        // 0..1 articulation quality
	Pause            PauseMetrics `json:"pause"`
	WordConfidences  []float64    `json:"word_confidences"` // per-word recognition confidence, 0..1
	SpeechPattern    string       `json:"speech_pattern"`   // steady, continuous, sparse, ...
	SpeedCategory    string       `json:"speed_category"`   // very_slow .. very_fast
	Text             string       `json:"text"`
	Scenario         Scenario     `json:"scenario"`
	Emotion          string       `json:"emotion"`
	EmotionScore     float64      `json:"emotion_score"` // 0..1 strength of the detected emotion
	Timestamp        time.Time    `json:"timestamp"`
}

// ScoreSet holds normalized [0,1] quality measures derived from one snapshot.
// Presentation/interview sessions populate Confidence/Persuasion/Stability/Clarity,
// dating sessions populate Likeability/Interest/Emotion. Never persisted standalone.
type ScoreSet struct {
	Scenario Scenario `json:"scenario"`

	Confidence float64 `json:"confidence,omitempty"`
	Persuasion float64 `json:"persuasion,omitempty"`
	Stability  float64 `json:"stability,omitempty"`
	Clarity    float64 `json:"clarity,omitempty"`

	Likeability float64 `json:"likeability,omitempty"`
	Interest    float64 `json:"interest,omitempty"`
	Emotion     string  `json:"emotion,omitempty"`
}

// Primary returns the leading score for the scenario, used by the decision cascade
func (s ScoreSet) Primary() float64 {
	if s.Scenario == ScenarioDating {
		return s.Likeability
	}
	return s.Confidence
}

// Secondary returns the scenario-specific second signal checked by the deficiency rule
func (s ScoreSet) Secondary() float64 {
	switch s.Scenario {
	case ScenarioPresentation:
		return s.Persuasion
	case ScenarioInterview:
		return s.Stability
	default:
		return s.Interest
	}
}
