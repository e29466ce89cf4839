// Package haptics holds the fixed haptic pattern catalog and renders feedback
// decisions into device vibration parameters. The catalog and the decision-type
// mapping are immutable data tables so they can be tested independently of the
// policy logic.
package haptics

import "github.com/haptitalk/feedback-engine/pkg/domain"

// DefaultPatternID is rendered for decision types with no catalog mapping:
// a single short pulse, unknown feedback classes must still vibrate something
const DefaultPatternID = "D1"

// catalog is the read-only pattern table; runtime changes go through the
// administrative catalog path, not this map
var catalog = map[string]domain.PatternSpec{
	"S1": {ID: "S1", Name: "slow down", Category: "speed", Waveform: "long_pulse",
		DefaultIntensity: 7, DurationMs: 600, VibrationCount: 3, IntervalsMs: []int{200, 200}},
	"S2": {ID: "S2", Name: "pause reminder", Category: "speed", Waveform: "double_tap",
		DefaultIntensity: 5, DurationMs: 300, VibrationCount: 2, IntervalsMs: []int{150}},
	"L1": {ID: "L1", Name: "confidence boost", Category: "coach", Waveform: "rising_wave",
		DefaultIntensity: 5, DurationMs: 500, VibrationCount: 2, IntervalsMs: []int{250}},
	"L3": {ID: "L3", Name: "calm and steady", Category: "coach", Waveform: "slow_wave",
		DefaultIntensity: 4, DurationMs: 800, VibrationCount: 1},
	"F1": {ID: "F1", Name: "filler alert", Category: "style", Waveform: "triple_tick",
		DefaultIntensity: 4, DurationMs: 350, VibrationCount: 3, IntervalsMs: []int{100, 100}},
	"F2": {ID: "F2", Name: "silence break", Category: "style", Waveform: "nudge",
		DefaultIntensity: 6, DurationMs: 400, VibrationCount: 2, IntervalsMs: []int{300}},
	"R1": {ID: "R1", Name: "positive tap", Category: "reward", Waveform: "soft_tap",
		DefaultIntensity: 3, DurationMs: 200, VibrationCount: 1},
	"R2": {ID: "R2", Name: "attention tap", Category: "reward", Waveform: "sharp_tap",
		DefaultIntensity: 6, DurationMs: 250, VibrationCount: 2, IntervalsMs: []int{120}},
	DefaultPatternID: {ID: DefaultPatternID, Name: "default pulse", Category: "default",
		Waveform: "short_pulse", DefaultIntensity: 5, DurationMs: 150, VibrationCount: 1},
}

// typeToPattern maps decision types to canonical pattern ids; many-to-one,
// legacy and synonymous types share patterns
var typeToPattern = map[domain.DecisionType]string{
	domain.DecisionSpeedTooFast:    "S1",
	domain.DecisionSpeedFast:       "S1", // legacy tag
	domain.DecisionConfidenceHigh:  "R1",
	domain.DecisionLikeabilityUp:   "R1",
	domain.DecisionConfidenceLow:   "L1",
	domain.DecisionConfidenceDown:  "L1", // legacy tag
	domain.DecisionLikeabilityLow:  "L1",
	domain.DecisionPersuasionLow:   "L3",
	domain.DecisionStabilityLow:    "L3",
	domain.DecisionInterestDown:    "R2",
	domain.DecisionFillerWordsHigh: "F1",
}

// Pattern returns the catalog spec for a pattern id
func Pattern(id string) (domain.PatternSpec, bool) {
	p, ok := catalog[id]
	return p, ok
}

// Patterns returns all catalog entries, optionally filtered by category
func Patterns(category string) []domain.PatternSpec {
	out := make([]domain.PatternSpec, 0, len(catalog))
	for _, p := range catalog {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PatternFor resolves the canonical pattern id for a decision type, falling
// back to the default pattern for unmapped types
func PatternFor(decisionType domain.DecisionType) string {
	if id, ok := typeToPattern[decisionType]; ok {
		return id
	}
	return DefaultPatternID
}
