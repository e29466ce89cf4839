package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

func newTestPolicy() *Policy {
	p := New(DefaultConfig())
	p.pick = func(int) int { return 0 } // deterministic affirmation for tests
	return p
}

func TestDecide_PaceCheckFires(t *testing.T) {
	p := newTestPolicy()
	snapshot := domain.TelemetrySnapshot{SpeakingRateWPM: 145, Scenario: domain.ScenarioPresentation}
	scores := domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.6}

	d := p.Decide(scores, snapshot, domain.DefaultUserSettings("u1"))

	require.NotNil(t, d)
	assert.Equal(t, domain.DecisionSpeedTooFast, d.Type)
	assert.Equal(t, domain.PriorityHigh, d.Priority)
	assert.InDelta(t, 0.214, d.Trigger.Confidence, 0.001)
	assert.Equal(t, "speaking_rate", d.Trigger.Source)
}

func TestDecide_PaceConfidenceCappedAtOne(t *testing.T) {
	p := newTestPolicy()
	snapshot := domain.TelemetrySnapshot{SpeakingRateWPM: 400}
	d := p.Decide(domain.ScoreSet{}, snapshot, domain.DefaultUserSettings("u1"))

	require.NotNil(t, d)
	assert.InDelta(t, 1.0, d.Trigger.Confidence, 0.0001)
}

func TestDecide_ExcellenceFires(t *testing.T) {
	p := newTestPolicy()
	scores := domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.85}

	d := p.Decide(scores, domain.TelemetrySnapshot{SpeakingRateWPM: 120}, domain.DefaultUserSettings("u1"))

	require.NotNil(t, d)
	assert.Equal(t, domain.DecisionConfidenceHigh, d.Type)
	assert.Equal(t, domain.PriorityLow, d.Priority)
	assert.Contains(t, affirmations, d.Message)
	// (0.85-0.8)/(1-0.8)
	assert.InDelta(t, 0.25, d.Trigger.Confidence, 0.001)
}

func TestDecide_ExcellenceUsesLikeabilityForDating(t *testing.T) {
	p := newTestPolicy()
	scores := domain.ScoreSet{Scenario: domain.ScenarioDating, Likeability: 0.9}

	d := p.Decide(scores, domain.TelemetrySnapshot{}, domain.DefaultUserSettings("u1"))

	require.NotNil(t, d)
	assert.Equal(t, domain.DecisionLikeabilityUp, d.Type)
}

func TestDecide_DeficiencyFires(t *testing.T) {
	tests := []struct {
		name     string
		scores   domain.ScoreSet
		expected domain.DecisionType
	}{
		{"presentation primary low", domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.3}, domain.DecisionConfidenceLow},
		{"presentation secondary low", domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.6, Persuasion: 0.35}, domain.DecisionPersuasionLow},
		{"interview secondary low", domain.ScoreSet{Scenario: domain.ScenarioInterview, Confidence: 0.5, Stability: 0.3}, domain.DecisionStabilityLow},
		{"dating primary low", domain.ScoreSet{Scenario: domain.ScenarioDating, Likeability: 0.2}, domain.DecisionLikeabilityLow},
		{"dating secondary low", domain.ScoreSet{Scenario: domain.ScenarioDating, Likeability: 0.6, Interest: 0.3}, domain.DecisionInterestDown},
	}

	p := newTestPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := p.Decide(tt.scores, domain.TelemetrySnapshot{}, domain.DefaultUserSettings("u1"))
			require.NotNil(t, d)
			assert.Equal(t, tt.expected, d.Type)
			assert.Equal(t, domain.PriorityHigh, d.Priority)
			assert.Positive(t, d.Trigger.Confidence)
		})
	}
}

func TestDecide_FillerCheckFires(t *testing.T) {
	p := newTestPolicy()
	// 3 fillers out of 15 tokens, ratio 0.2
	text := "um so like " + strings.Repeat("word ", 12)
	snapshot := domain.TelemetrySnapshot{Text: strings.TrimSpace(text)}
	scores := domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.6}

	d := p.Decide(scores, snapshot, domain.DefaultUserSettings("u1"))

	require.NotNil(t, d)
	assert.Equal(t, domain.DecisionFillerWordsHigh, d.Type)
	assert.Equal(t, domain.PriorityMedium, d.Priority)
	assert.InDelta(t, 0.4, d.Trigger.Confidence, 0.001)
}

func TestDecide_FillerNeedsBothRatioAndCount(t *testing.T) {
	p := newTestPolicy()
	scores := domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.6}

	// one filler in four tokens: ratio 0.25 but count below minimum
	d := p.Decide(scores, domain.TelemetrySnapshot{Text: "um one two three"}, domain.DefaultUserSettings("u1"))
	assert.Nil(t, d)

	// two fillers in twenty tokens: count fine but ratio 0.1 too low
	text := "um uh " + strings.Repeat("word ", 18)
	d = p.Decide(scores, domain.TelemetrySnapshot{Text: strings.TrimSpace(text)}, domain.DefaultUserSettings("u1"))
	assert.Nil(t, d)
}

func TestDecide_NothingMatches(t *testing.T) {
	p := newTestPolicy()
	scores := domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.6, Persuasion: 0.6, Clarity: 0.6}
	snapshot := domain.TelemetrySnapshot{SpeakingRateWPM: 120, Text: "a perfectly normal sentence here"}

	d := p.Decide(scores, snapshot, domain.DefaultUserSettings("u1"))
	assert.Nil(t, d, "no matching check is the expected common case")
}

func TestDecide_CascadeOrderIsDeterministic(t *testing.T) {
	p := newTestPolicy()

	// pace beats everything even with excellent scores
	d := p.Decide(
		domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.95},
		domain.TelemetrySnapshot{SpeakingRateWPM: 150},
		domain.DefaultUserSettings("u1"),
	)
	require.NotNil(t, d)
	assert.Equal(t, domain.DecisionSpeedTooFast, d.Type)

	// excellence beats deficiency when both could argue (contradictory but must be deterministic)
	d = p.Decide(
		domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.85, Persuasion: 0.2},
		domain.TelemetrySnapshot{SpeakingRateWPM: 120},
		domain.DefaultUserSettings("u1"),
	)
	require.NotNil(t, d)
	assert.Equal(t, domain.DecisionConfidenceHigh, d.Type)

	// excellence beats filler even when filler ratio is high
	text := "um uh like um " + strings.Repeat("word ", 6)
	d = p.Decide(
		domain.ScoreSet{Scenario: domain.ScenarioPresentation, Confidence: 0.85},
		domain.TelemetrySnapshot{SpeakingRateWPM: 120, Text: strings.TrimSpace(text)},
		domain.DefaultUserSettings("u1"),
	)
	require.NotNil(t, d)
	assert.Equal(t, domain.DecisionConfidenceHigh, d.Type)
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Um, well... THIS is fine!")
	assert.Equal(t, []string{"um", "well", "this", "is", "fine"}, tokens)
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("... ,,, !!!"))
}
