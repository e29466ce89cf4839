package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

func TestGetUserSettings_CreatesDefaultsOnFirstAccess(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	settings, err := db.GetUserSettings(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", settings.UserID)
	assert.Equal(t, 5, settings.HapticStrength)
	assert.Equal(t, 10, settings.MinimumIntervalSeconds)
	assert.Equal(t, domain.PriorityMedium, settings.PriorityThreshold)
	assert.Contains(t, settings.ActivePatterns, "S1")
	require.Contains(t, settings.ScenarioOverrides, domain.ScenarioDating)
	assert.Equal(t, domain.PriorityLow, settings.ScenarioOverrides[domain.ScenarioDating].PriorityThreshold)
}

func TestGetUserSettings_SecondAccessReturnsStored(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	first, err := db.GetUserSettings(ctx, "user-1")
	require.NoError(t, err)

	second, err := db.GetUserSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.HapticStrength, second.HapticStrength)
	assert.Equal(t, first.ActivePatterns, second.ActivePatterns)

	var count int
	require.NoError(t, db.conn.Get(&count, "SELECT COUNT(*) FROM user_settings"))
	assert.Equal(t, 1, count)
}

func TestUpdateUserSettings_PartialPatch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	strength := 8
	interval := 30
	updated, err := db.UpdateUserSettings(ctx, "user-1", domain.SettingsPatch{
		HapticStrength:         &strength,
		MinimumIntervalSeconds: &interval,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, updated.HapticStrength)
	assert.Equal(t, 30, updated.MinimumIntervalSeconds)
	assert.Equal(t, domain.PriorityMedium, updated.PriorityThreshold, "unpatched fields keep defaults")

	// persisted
	stored, err := db.GetUserSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 8, stored.HapticStrength)
	assert.Equal(t, 30, stored.MinimumIntervalSeconds)
}

func TestUpdateUserSettings_ReplacesActivePatterns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	patterns := []string{"S1", "R1"}
	updated, err := db.UpdateUserSettings(ctx, "user-1", domain.SettingsPatch{ActivePatterns: &patterns})
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "R1"}, updated.ActivePatterns)

	stored, err := db.GetUserSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "R1"}, stored.ActivePatterns)
}
