// filepath: internal/services/completion_service_test.go
package services

import (
	"testing"
	"time"

	"habithub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionService(t *testing.T) {
	repo := setupIntegrationTest(t)
	habits := NewHabitService(repo)
	svc := NewCompletionService(repo)

	habit, err := habits.CreateHabit(models.HabitCreatePayload{Name: "Meditate", Periodicity: "daily"})
	require.NoError(t, err)

	t.Run("Now", func(t *testing.T) {
		before := time.Now().UTC()
		c, err := svc.CompleteHabit(habit.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, habit.ID, c.HabitID)
		assert.WithinDuration(t, before, c.CompletedAt, 5*time.Second)
		assert.Equal(t, time.UTC, c.CompletedAt.Location())
	})

	t.Run("At explicit time is stored in UTC", func(t *testing.T) {
		at := time.Date(2024, 5, 13, 23, 30, 0, 0, time.FixedZone("CEST", 2*3600))
		c, err := svc.CompleteHabit(habit.ID, &at)
		require.NoError(t, err)
		assert.True(t, at.Equal(c.CompletedAt))
		assert.Equal(t, 13, c.CompletedAt.Day())
		assert.Equal(t, 21, c.CompletedAt.Hour())
	})

	t.Run("Zero time is rejected", func(t *testing.T) {
		var zero time.Time
		_, err := svc.CompleteHabit(habit.ID, &zero)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Unknown habit", func(t *testing.T) {
		_, err := svc.CompleteHabit(9999, nil)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.GetCompletions(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	list, err := svc.GetCompletions(habit.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CompletedAt.Before(list[1].CompletedAt))
}
