// Package policy decides whether a telemetry snapshot warrants a haptic nudge.
// The decision is an ordered cascade of mutually exclusive checks; the first
// match wins and evaluation stops. Order is behavioral contract: delivery
// mechanics (pace) outrank praise, praise outranks correction, correction
// outranks style nits (filler words).
package policy

import (
	"math/rand"
	"strings"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

// Config holds the cascade thresholds. Values are scenario-tuned product
// constants surfaced as configuration; do not change defaults without product
// confirmation.
type Config struct {
	PaceThresholdWPM    float64 `yaml:"pace_threshold_wpm"`
	PaceConfidenceSpan  float64 `yaml:"pace_confidence_span"` // wpm over threshold that saturates trigger confidence
	ExcellenceThreshold float64 `yaml:"excellence_threshold"`
	DeficiencyThreshold float64 `yaml:"deficiency_threshold"`
	FillerRatio         float64 `yaml:"filler_ratio"`
	FillerMinCount      int     `yaml:"filler_min_count"`
}

// DefaultConfig returns the production thresholds
func DefaultConfig() Config {
	return Config{
		PaceThresholdWPM:    130,
		PaceConfidenceSpan:  70,
		ExcellenceThreshold: 0.8,
		DeficiencyThreshold: 0.4,
		FillerRatio:         0.15,
		FillerMinCount:      2,
	}
}

// rule is one cascade step: predicate plus decision builder, evaluated in order
type rule struct {
	name  string
	match func(in input) *domain.FeedbackDecision
}

type input struct {
	scores   domain.ScoreSet
	snapshot domain.TelemetrySnapshot
	settings domain.UserSettings
}

// Policy evaluates the decision cascade for telemetry snapshots
type Policy struct {
	cfg   Config
	rules []rule
	pick  func(n int) int // affirmation selector, injectable for tests
}

// New creates a policy with the given thresholds
func New(cfg Config) *Policy {
	p := &Policy{cfg: cfg, pick: rand.Intn}
	p.rules = []rule{
		{name: "pace", match: p.paceCheck},
		{name: "excellence", match: p.excellenceCheck},
		{name: "deficiency", match: p.deficiencyCheck},
		{name: "filler", match: p.fillerCheck},
	}
	return p
}

// Decide returns at most one feedback decision for the snapshot, or nil when no
// check matches. Nil is the expected common case, not an error.
func (p *Policy) Decide(scores domain.ScoreSet, snapshot domain.TelemetrySnapshot, settings domain.UserSettings) *domain.FeedbackDecision {
	in := input{scores: scores, snapshot: snapshot, settings: settings}
	for _, r := range p.rules {
		if d := r.match(in); d != nil {
			return d
		}
	}
	return nil
}

// paceCheck fires when the speaking rate exceeds the upper bound; trigger
// confidence scales linearly with the overshoot, capped at 1.0
func (p *Policy) paceCheck(in input) *domain.FeedbackDecision {
	wpm := in.snapshot.SpeakingRateWPM
	if wpm <= p.cfg.PaceThresholdWPM {
		return nil
	}
	confidence := (wpm - p.cfg.PaceThresholdWPM) / p.cfg.PaceConfidenceSpan
	if confidence > 1 {
		confidence = 1
	}
	return &domain.FeedbackDecision{
		Type:      domain.DecisionSpeedTooFast,
		Priority:  domain.PriorityHigh,
		Message:   "You're speaking fast. Try slowing down a little.",
		VisualCue: "speed_warning",
		Trigger: domain.Trigger{
			Source:     "speaking_rate",
			Confidence: confidence,
			Data:       map[string]float64{"wpm": wpm, "threshold": p.cfg.PaceThresholdWPM},
		},
	}
}

// affirmations rotated pseudo-randomly by the excellence check for variety
var affirmations = []string{
	"Great energy, keep it up!",
	"You're doing really well right now.",
	"Strong delivery, stay on this track.",
	"That confidence is landing well.",
}

func (p *Policy) excellenceCheck(in input) *domain.FeedbackDecision {
	primary := in.scores.Primary()
	if primary <= p.cfg.ExcellenceThreshold {
		return nil
	}
	confidence := (primary - p.cfg.ExcellenceThreshold) / (1 - p.cfg.ExcellenceThreshold)
	if confidence > 1 {
		confidence = 1
	}

	decisionType := domain.DecisionConfidenceHigh
	if in.scores.Scenario == domain.ScenarioDating {
		decisionType = domain.DecisionLikeabilityUp
	}
	return &domain.FeedbackDecision{
		Type:      decisionType,
		Priority:  domain.PriorityLow,
		Message:   affirmations[p.pick(len(affirmations))],
		VisualCue: "score_excellent",
		Trigger: domain.Trigger{
			Source:     "scenario_score",
			Confidence: confidence,
			Data:       map[string]float64{"score": primary, "threshold": p.cfg.ExcellenceThreshold},
		},
	}
}

// deficiencyCheck is symmetric to excellence: the primary score below the low
// threshold triggers a corrective nudge; a scenario-specific secondary score is
// consulted when the primary holds up
func (p *Policy) deficiencyCheck(in input) *domain.FeedbackDecision {
	low := p.cfg.DeficiencyThreshold

	if primary := in.scores.Primary(); primary < low {
		decisionType := domain.DecisionConfidenceLow
		message := "Take a breath and speak with more confidence."
		if in.scores.Scenario == domain.ScenarioDating {
			decisionType = domain.DecisionLikeabilityLow
			message = "Try a brighter, more positive tone."
		}
		return &domain.FeedbackDecision{
			Type:      decisionType,
			Priority:  domain.PriorityHigh,
			Message:   message,
			VisualCue: "score_low",
			Trigger: domain.Trigger{
				Source:     "scenario_score",
				Confidence: deficiencyConfidence(primary, low),
				Data:       map[string]float64{"score": primary, "threshold": low},
			},
		}
	}

	if secondary := in.scores.Secondary(); secondary > 0 && secondary < low {
		var decisionType domain.DecisionType
		var message string
		switch in.scores.Scenario {
		case domain.ScenarioPresentation:
			decisionType, message = domain.DecisionPersuasionLow, "Emphasize your key points more."
		case domain.ScenarioInterview:
			decisionType, message = domain.DecisionStabilityLow, "Keep your answers calm and steady."
		default:
			decisionType, message = domain.DecisionInterestDown, "Try switching to a fresh topic."
		}
		return &domain.FeedbackDecision{
			Type:      decisionType,
			Priority:  domain.PriorityHigh,
			Message:   message,
			VisualCue: "score_low",
			Trigger: domain.Trigger{
				Source:     "scenario_score",
				Confidence: deficiencyConfidence(secondary, low),
				Data:       map[string]float64{"score": secondary, "threshold": low},
			},
		}
	}

	return nil
}

func deficiencyConfidence(score, threshold float64) float64 {
	c := (threshold - score) / threshold
	if c > 1 {
		return 1
	}
	return c
}

// fillerVocabulary is the fixed token list counted by the filler check; kept as
// data so it can be audited independently of the cascade logic
var fillerVocabulary = map[string]struct{}{
	"um": {}, "uh": {}, "er": {}, "ah": {}, "hmm": {}, "mmm": {},
	"like": {}, "literally": {}, "basically": {}, "actually": {},
	"well": {}, "so": {}, "right": {}, "okay": {},
}

// fillerCheck fires when filler tokens exceed both a ratio of total tokens and
// an absolute minimum count; the double condition avoids nagging on tiny
// utterances
func (p *Policy) fillerCheck(in input) *domain.FeedbackDecision {
	tokens := tokenize(in.snapshot.Text)
	if len(tokens) == 0 {
		return nil
	}

	count := 0
	for _, tok := range tokens {
		if _, ok := fillerVocabulary[tok]; ok {
			count++
		}
	}

	ratio := float64(count) / float64(len(tokens))
	if ratio <= p.cfg.FillerRatio || count < p.cfg.FillerMinCount {
		return nil
	}

	confidence := ratio * 2
	if confidence > 1 {
		confidence = 1
	}
	return &domain.FeedbackDecision{
		Type:      domain.DecisionFillerWordsHigh,
		Priority:  domain.PriorityMedium,
		Message:   "Watch the filler words. Pause instead of saying \"um\".",
		VisualCue: "filler_warning",
		Trigger: domain.Trigger{
			Source:     "filler_ratio",
			Confidence: confidence,
			Data:       map[string]float64{"ratio": ratio, "count": float64(count), "tokens": float64(len(tokens))},
		},
	}
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, ".,!?;:\"'()-")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
