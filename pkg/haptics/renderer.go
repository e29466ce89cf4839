package haptics

import "github.com/haptitalk/feedback-engine/pkg/domain"

// intensity bounds of the device scale
const (
	minIntensity = 1
	maxIntensity = 10
)

// intensityBias softens or sharpens specific patterns relative to the user's
// requested strength: corrective confidence patterns render one unit softer,
// the urgent slow-down pattern up to two units stronger
var intensityBias = map[string]int{
	"S1": +2,
	"L1": -1,
	"L3": -1,
}

// Render turns a decision type and the user's 1..10 strength preference into a
// concrete haptic pattern instance. Rendering is total: unknown decision types
// fall back to the default single short pulse, it never fails and never blocks
// delivery.
func Render(decisionType domain.DecisionType, userStrength int) domain.HapticPattern {
	spec, ok := Pattern(PatternFor(decisionType))
	if !ok { // mapping points at a missing catalog entry, use the default
		spec = catalog[DefaultPatternID]
	}

	intensity := userStrength
	if intensity < minIntensity || intensity > maxIntensity {
		intensity = spec.DefaultIntensity
	}
	intensity += intensityBias[spec.ID]
	if intensity < minIntensity {
		intensity = minIntensity
	}
	if intensity > maxIntensity {
		intensity = maxIntensity
	}

	return domain.HapticPattern{
		PatternID:      spec.ID,
		Waveform:       spec.Waveform,
		Intensity:      intensity,
		DurationMs:     spec.DurationMs,
		VibrationCount: spec.VibrationCount,
		IntervalsMs:    spec.IntervalsMs,
	}
}
