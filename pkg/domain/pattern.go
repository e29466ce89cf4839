package domain

// PatternSpec is a catalog entry describing one physical vibration waveform.
// The catalog is read-only at engine runtime; entries change only through the
// administrative catalog path.
type PatternSpec struct {
	ID               string `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	Category         string `json:"category" db:"category"`
	Waveform         string `json:"waveform" db:"waveform"`
	DefaultIntensity int    `json:"default_intensity" db:"default_intensity"` // 1..10
	DurationMs       int    `json:"duration_ms" db:"duration_ms"`
	VibrationCount   int    `json:"vibration_count" db:"vibration_count"`
	IntervalsMs      []int  `json:"intervals_ms,omitempty" db:"-"` // empty means evenly spaced
}

// HapticPattern is a rendered pattern instance: a catalog spec with the
// intensity resolved from the user's preference and pattern bias
type HapticPattern struct {
	PatternID      string `json:"pattern_id"`
	Waveform       string `json:"waveform"`
	Intensity      int    `json:"intensity"` // 1..10 after clamping and bias
	DurationMs     int    `json:"duration_ms"`
	VibrationCount int    `json:"vibration_count"`
	IntervalsMs    []int  `json:"intervals_ms,omitempty"`
}
