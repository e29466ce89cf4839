package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

// user feedback settings operations

// GetUserSettings retrieves settings for a user, creating defaults on first
// access. The engine never deletes settings.
func (db *DB) GetUserSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	var row settingsRow
	err := db.conn.GetContext(ctx, &row, "SELECT * FROM user_settings WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return db.createDefaultSettings(ctx, userID)
	}
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("get user settings: %w", err)
	}
	return row.toDomain()
}

func (db *DB) createDefaultSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	settings := domain.DefaultUserSettings(userID)
	settings.UpdatedAt = time.Now().UTC()

	row, err := settingsToRow(settings)
	if err != nil {
		return domain.UserSettings{}, err
	}

	query := `
		INSERT INTO user_settings (
			user_id, haptic_strength, active_patterns, priority_threshold,
			minimum_interval_seconds, feedback_frequency, scenario_overrides, updated_at
		) VALUES (
			:user_id, :haptic_strength, :active_patterns, :priority_threshold,
			:minimum_interval_seconds, :feedback_frequency, :scenario_overrides, :updated_at
		)
		ON CONFLICT(user_id) DO NOTHING`
	if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
		return domain.UserSettings{}, fmt.Errorf("create default settings: %w", err)
	}

	log.Printf("[INFO] created default feedback settings for user %s", userID)
	return settings, nil
}

// UpdateUserSettings applies a partial update to the user's settings, creating
// defaults first when the user has none yet
func (db *DB) UpdateUserSettings(ctx context.Context, userID string, patch domain.SettingsPatch) (domain.UserSettings, error) {
	settings, err := db.GetUserSettings(ctx, userID)
	if err != nil {
		return domain.UserSettings{}, err
	}

	if patch.HapticStrength != nil {
		settings.HapticStrength = *patch.HapticStrength
	}
	if patch.ActivePatterns != nil {
		settings.ActivePatterns = *patch.ActivePatterns
	}
	if patch.PriorityThreshold != nil {
		settings.PriorityThreshold = *patch.PriorityThreshold
	}
	if patch.MinimumIntervalSeconds != nil {
		settings.MinimumIntervalSeconds = *patch.MinimumIntervalSeconds
	}
	if patch.FeedbackFrequency != nil {
		settings.FeedbackFrequency = *patch.FeedbackFrequency
	}
	settings.UpdatedAt = time.Now().UTC()

	row, err := settingsToRow(settings)
	if err != nil {
		return domain.UserSettings{}, err
	}

	query := `
		UPDATE user_settings SET
			haptic_strength = :haptic_strength,
			active_patterns = :active_patterns,
			priority_threshold = :priority_threshold,
			minimum_interval_seconds = :minimum_interval_seconds,
			feedback_frequency = :feedback_frequency,
			updated_at = :updated_at
		WHERE user_id = :user_id`
	if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
		return domain.UserSettings{}, fmt.Errorf("update user settings: %w", err)
	}

	return settings, nil
}
