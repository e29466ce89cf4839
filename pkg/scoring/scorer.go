// Package scoring derives normalized conversation quality scores from telemetry
// snapshots. All functions are pure and side-effect free; missing inputs are
// skipped and the remaining factor weights renormalized, so a sparse snapshot
// still produces a usable score instead of collapsing to zero.
package scoring

import (
	"github.com/haptitalk/feedback-engine/pkg/domain"
)

// scenario floor/ceiling clamps, one bad reading never zeroes a score
const (
	confidenceFloor  = 0.15
	confidenceCeil   = 0.95
	persuasionFloor  = 0.20
	persuasionCeil   = 0.90
	clarityFloor     = 0.20
	clarityCeil      = 0.95
	stabilityFloor   = 0.25
	stabilityCeil    = 0.90
	likeabilityFloor = 0.15
	likeabilityCeil  = 0.95
	interestFloor    = 0.20
	interestCeil     = 0.90

	// neutralScore is the fallback when a snapshot carries none of the inputs a
	// score needs
	neutralScore = 0.5

	// word-level recognition confidence is blended into the primary confidence
	// score with this weight split
	primaryBlendWeight = 0.7
	wordBlendWeight    = 0.3
)

// Score computes the scenario-specific ScoreSet for one snapshot
func Score(t domain.TelemetrySnapshot) domain.ScoreSet {
	scenario := domain.ParseScenario(string(t.Scenario))
	s := domain.ScoreSet{Scenario: scenario}

	switch scenario {
	case domain.ScenarioPresentation:
		s.Confidence = speakingConfidence(t)
		s.Persuasion = persuasion(t)
		s.Clarity = clarity(t)
	case domain.ScenarioInterview:
		s.Confidence = speakingConfidence(t)
		s.Stability = stability(t)
		s.Clarity = clarity(t)
	default: // dating
		s.Likeability = likeability(t)
		s.Interest = interest(t)
		s.Emotion = emotionLabel(t.SpeedCategory)
	}
	return s
}

// factor is one weighted sub-signal of a score; absent factors are skipped
type factor struct {
	value  float64
	weight float64
	ok     bool
}

// combine produces the weighted average over present factors only, renormalizing
// weights instead of padding missing inputs with zeros
func combine(factors ...factor) float64 {
	var sum, weights float64
	for _, f := range factors {
		if !f.ok {
			continue
		}
		sum += f.value * f.weight
		weights += f.weight
	}
	if weights == 0 {
		return neutralScore
	}
	return sum / weights
}

func clamp(v, floor, ceil float64) float64 {
	if v < floor {
		return floor
	}
	if v > ceil {
		return ceil
	}
	return v
}

// speakingConfidence scores presentation/interview confidence from speech
// density, rate band fit and tone, then blends in averaged word-level
// recognition confidence 70/30
func speakingConfidence(t domain.TelemetrySnapshot) float64 {
	base := combine(
		factor{densityBand(t.SpeechDensity), 0.45, t.SpeechDensity > 0},
		factor{rateBandFit(t.SpeakingRateWPM, 120, 160), 0.30, t.SpeakingRateWPM > 0},
		factor{t.Tonality, 0.25, t.Tonality > 0},
	)

	if avg, ok := wordConfidenceAvg(t.WordConfidences); ok {
		base = base*primaryBlendWeight + avg*wordBlendWeight
	}
	return clamp(base, confidenceFloor, confidenceCeil)
}

func persuasion(t domain.TelemetrySnapshot) float64 {
	patternFit, patternOK := speechPatternFit(t.SpeechPattern)
	v := combine(
		factor{t.Tonality, 0.40, t.Tonality > 0},
		factor{t.Clarity, 0.40, t.Clarity > 0},
		factor{patternFit, 0.20, patternOK},
	)
	return clamp(v, persuasionFloor, persuasionCeil)
}

func clarity(t domain.TelemetrySnapshot) float64 {
	patternFit, patternOK := speechPatternFit(t.SpeechPattern)
	v := combine(
		factor{t.Clarity, 0.40, t.Clarity > 0},
		factor{rateBandFit(t.SpeakingRateWPM, 100, 160), 0.25, t.SpeakingRateWPM > 0},
		factor{patternFit, 0.20, patternOK},
		factor{t.Tonality, 0.15, t.Tonality > 0},
	)
	return clamp(v, clarityFloor, clarityCeil)
}

func stability(t domain.TelemetrySnapshot) float64 {
	patternStab, patternOK := speechPatternStability(t.SpeechPattern)
	v := combine(
		factor{t.Tonality, 0.50, t.Tonality > 0},
		factor{patternStab, 0.30, patternOK},
		factor{rateBandFit(t.SpeakingRateWPM, 110, 150), 0.20, t.SpeakingRateWPM > 0},
	)
	return clamp(v, stabilityFloor, stabilityCeil)
}

func likeability(t domain.TelemetrySnapshot) float64 {
	v := combine(
		factor{densityBand(t.SpeechDensity), 0.60, t.SpeechDensity > 0},
		factor{t.EmotionScore, 0.40, t.EmotionScore > 0},
	)
	return clamp(v, likeabilityFloor, likeabilityCeil)
}

func interest(t domain.TelemetrySnapshot) float64 {
	patternInt, patternOK := speechPatternInterest(t.SpeechPattern)
	v := combine(
		factor{patternInt, 0.70, patternOK},
		factor{t.Tonality, 0.30, t.Tonality > 0},
	)
	return clamp(v, interestFloor, interestCeil)
}

// densityBand maps speech density (fraction of window with speech) to a score
// through piecewise bands: sparse speech is penalized sharply, dense speech
// saturates slowly
func densityBand(d float64) float64 {
	switch {
	case d <= 0:
		return 0.10
	case d <= 0.3:
		return 0.10 + (d/0.3)*0.30
	case d <= 0.5:
		return 0.40 + ((d-0.3)/0.2)*0.20
	case d <= 0.7:
		return 0.60 + ((d-0.5)/0.2)*0.15
	case d <= 0.9:
		return 0.75 + ((d-0.7)/0.2)*0.10
	default:
		return 0.85 + ((d-0.9)/0.1)*0.10
	}
}

// rateBandFit scores how well the speaking rate sits inside [lo, hi] wpm,
// degrading linearly outside the band down to 0.2
func rateBandFit(wpm, lo, hi float64) float64 {
	if wpm >= lo && wpm <= hi {
		return 1.0
	}
	var dist float64
	if wpm < lo {
		dist = (lo - wpm) / lo
	} else {
		dist = (wpm - hi) / hi
	}
	fit := 1.0 - dist*2
	if fit < 0.2 {
		return 0.2
	}
	return fit
}

func wordConfidenceAvg(confs []float64) (float64, bool) {
	if len(confs) == 0 {
		return 0, false
	}
	var sum float64
	for _, c := range confs {
		sum += c
	}
	return sum / float64(len(confs)), true
}

// speech-pattern lookup tables; values mirror the analyzer's qualitative tags
var patternFitTable = map[string]float64{
	"continuous":  0.90,
	"steady":      0.85,
	"normal":      0.70,
	"variable":    0.55,
	"staccato":    0.45,
	"sparse":      0.35,
	"very_sparse": 0.20,
}

var patternStabilityTable = map[string]float64{
	"steady":      0.95,
	"normal":      0.75,
	"continuous":  0.70,
	"variable":    0.50,
	"staccato":    0.40,
	"sparse":      0.30,
	"very_sparse": 0.25,
}

var patternInterestTable = map[string]float64{
	"continuous":  0.85,
	"steady":      0.80,
	"variable":    0.75,
	"normal":      0.70,
	"staccato":    0.55,
	"sparse":      0.40,
	"very_sparse": 0.25,
}

func speechPatternFit(pattern string) (float64, bool) {
	v, ok := patternFitTable[pattern]
	return v, ok
}

func speechPatternStability(pattern string) (float64, bool) {
	v, ok := patternStabilityTable[pattern]
	return v, ok
}

func speechPatternInterest(pattern string) (float64, bool) {
	v, ok := patternInterestTable[pattern]
	return v, ok
}

// emotionLabel maps the analyzer's speed category to a qualitative emotion tag
// shown alongside dating scores
func emotionLabel(speedCategory string) string {
	labels := map[string]string{
		"very_slow": "calm",
		"slow":      "composed",
		"normal":    "natural",
		"fast":      "lively",
		"very_fast": "excited",
	}
	if l, ok := labels[speedCategory]; ok {
		return l
	}
	return "neutral"
}
