// filepath: internal/services/habit_service_test.go
package services

import (
	"testing"
	"time"

	"habithub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitService_CreateHabit(t *testing.T) {
	svc := NewHabitService(setupIntegrationTest(t))

	t.Run("Normalizes input", func(t *testing.T) {
		habit, err := svc.CreateHabit(models.HabitCreatePayload{
			Name:        "  Meditate 10 min ",
			Description: strPtr(" calm "),
			Periodicity: " Daily",
		})
		require.NoError(t, err)
		assert.Equal(t, "Meditate 10 min", habit.Name)
		require.NotNil(t, habit.Description)
		assert.Equal(t, "calm", *habit.Description)
		assert.Equal(t, "daily", habit.Periodicity)
	})

	t.Run("Blank description is dropped", func(t *testing.T) {
		habit, err := svc.CreateHabit(models.HabitCreatePayload{Name: "Review", Description: strPtr("   "), Periodicity: "weekly"})
		require.NoError(t, err)
		assert.Nil(t, habit.Description)
	})

	tests := []struct {
		name    string
		payload models.HabitCreatePayload
	}{
		{"Empty name", models.HabitCreatePayload{Name: "  ", Periodicity: "daily"}},
		{"Unknown periodicity", models.HabitCreatePayload{Name: "Run", Periodicity: "monthly"}},
		{"Missing periodicity", models.HabitCreatePayload{Name: "Run"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateHabit(tt.payload)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestHabitService_LookupAndDelete(t *testing.T) {
	svc := NewHabitService(setupIntegrationTest(t))

	daily, err := svc.CreateHabit(models.HabitCreatePayload{Name: "Read 20 pages", Periodicity: "daily"})
	require.NoError(t, err)
	weekly, err := svc.CreateHabit(models.HabitCreatePayload{Name: "Grocery shopping", Periodicity: "weekly"})
	require.NoError(t, err)

	got, err := svc.GetHabit(daily.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read 20 pages", got.Name)

	byName, err := svc.GetHabitByName("Grocery shopping")
	require.NoError(t, err)
	assert.Equal(t, weekly.ID, byName.ID)

	all, err := svc.GetHabits()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	list, err := svc.GetHabitsByPeriodicity("WEEKLY")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, weekly.ID, list[0].ID)

	_, err = svc.GetHabitsByPeriodicity("yearly")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "must be one of daily, weekly")

	require.NoError(t, svc.DeleteHabit(daily.ID))
	_, err = svc.GetHabit(daily.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteHabit(daily.ID), ErrNotFound)
	_, err = svc.GetHabitByName("Read 20 pages")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitService_CreateHabitWithHistory(t *testing.T) {
	repo := setupIntegrationTest(t)
	svc := NewHabitService(repo)

	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	history := []time.Time{today.AddDate(0, 0, -2), today.AddDate(0, 0, -1), today}

	habit, err := svc.CreateHabitWithHistory(models.HabitCreatePayload{Name: "Drink 2l water", Periodicity: "daily"}, history)
	require.NoError(t, err)
	assert.NotZero(t, habit.ID)

	completions, err := repo.GetCompletions(habit.ID)
	require.NoError(t, err)
	assert.Len(t, completions, 3)

	_, err = svc.CreateHabitWithHistory(models.HabitCreatePayload{Name: "", Periodicity: "daily"}, history)
	assert.ErrorIs(t, err, ErrValidation)

	all, err := svc.GetHabits()
	require.NoError(t, err)
	assert.Len(t, all, 1, "rejected payload must not leave a habit behind")
}
