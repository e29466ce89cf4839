package domain

import "time"

// ScenarioOverride narrows feedback behavior for one scenario
type ScenarioOverride struct {
	ActivePatterns    []string `json:"active_patterns,omitempty"`
	PriorityThreshold Priority `json:"priority_threshold,omitempty"`
}

// UserSettings holds per-user feedback preferences, created lazily with defaults
// on first access and mutated only through an explicit settings update
type UserSettings struct {
	UserID                 string                        `json:"user_id"`
	HapticStrength         int                           `json:"haptic_strength"` // 1..10
	ActivePatterns         []string                      `json:"active_patterns"`
	PriorityThreshold      Priority                      `json:"priority_threshold"`
	MinimumIntervalSeconds int                           `json:"minimum_interval_seconds"`
	FeedbackFrequency      string                        `json:"feedback_frequency"`
	ScenarioOverrides      map[Scenario]ScenarioOverride `json:"scenario_overrides,omitempty"`
	UpdatedAt              time.Time                     `json:"updated_at"`
}

// SettingsPatch carries partial settings updates; nil fields are left unchanged
type SettingsPatch struct {
	HapticStrength         *int      `json:"haptic_strength,omitempty"`
	ActivePatterns         *[]string `json:"active_patterns,omitempty"`
	PriorityThreshold      *Priority `json:"priority_threshold,omitempty"`
	MinimumIntervalSeconds *int      `json:"minimum_interval_seconds,omitempty"`
	FeedbackFrequency      *string   `json:"feedback_frequency,omitempty"`
}

// DefaultUserSettings returns the settings created on first access for a new user
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:                 userID,
		HapticStrength:         5,
		ActivePatterns:         []string{"S1", "L1", "F1", "R1", "S2", "R2", "L3", "F2"},
		PriorityThreshold:      PriorityMedium,
		MinimumIntervalSeconds: 10,
		FeedbackFrequency:      "medium",
		ScenarioOverrides: map[Scenario]ScenarioOverride{
			ScenarioDating: {
				ActivePatterns:    []string{"S1", "L1", "F1", "R1"},
				PriorityThreshold: PriorityLow,
			},
			ScenarioInterview: {
				ActivePatterns:    []string{"S1", "S2", "F4", "L3"},
				PriorityThreshold: PriorityMedium,
			},
		},
	}
}
