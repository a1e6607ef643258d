// filepath: internal/services/analytics_service_test.go
package services

import (
	"testing"
	"time"

	"habithub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService(t *testing.T) {
	repo := setupIntegrationTest(t)
	habits := NewHabitService(repo)
	svc := NewAnalyticsService(repo)

	t.Run("No habits", func(t *testing.T) {
		best, err := svc.LongestStreakOverall()
		require.NoError(t, err)
		assert.Nil(t, best.HabitID)
		assert.Equal(t, 0, best.Streak)
	})

	monday := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	daily, err := habits.CreateHabitWithHistory(
		models.HabitCreatePayload{Name: "Read", Periodicity: "daily"},
		[]time.Time{monday, monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 3)},
	)
	require.NoError(t, err)
	weekly, err := habits.CreateHabitWithHistory(
		models.HabitCreatePayload{Name: "Review", Periodicity: "weekly"},
		[]time.Time{monday, monday.AddDate(0, 0, 8), monday.AddDate(0, 0, 20)},
	)
	require.NoError(t, err)

	s, err := svc.LongestStreakForHabit(daily.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.HabitStreak{HabitID: daily.ID, Streak: 2}, s)

	s, err = svc.LongestStreakForHabit(weekly.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Streak)

	best, err := svc.LongestStreakOverall()
	require.NoError(t, err)
	require.NotNil(t, best.HabitID)
	assert.Equal(t, weekly.ID, *best.HabitID)
	assert.Equal(t, 3, best.Streak)

	_, err = svc.LongestStreakForHabit(4242)
	assert.ErrorIs(t, err, ErrNotFound)
}
