// filepath: internal/initconfig/init_test.go
package initconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"habithub/internal/config"
	"habithub/internal/models"
	"habithub/internal/repository"
	"habithub/internal/services"
	"habithub/internal/services/mocks"
	"habithub/internal/streak"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 15, 17, 45, 0, 0, time.UTC)

func setupRepo(t *testing.T) *repository.Repository {
	t.Helper()
	repo, err := repository.NewRepository(&config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "seed.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.MigrateUp())
	return repo
}

func TestBackfill(t *testing.T) {
	daily := Backfill(streak.Daily, now, 30)
	require.Len(t, daily, 30)
	assert.Equal(t, time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC), daily[0])
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), daily[29])

	weekly := Backfill(streak.Weekly, now, 30)
	require.Len(t, weekly, 5)
	assert.Equal(t, time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC), weekly[0])
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), weekly[4])

	assert.Empty(t, Backfill(streak.Daily, now, 0))
}

func TestRun_Predefined(t *testing.T) {
	repo := setupRepo(t)
	habitSvc := services.NewHabitService(repo)

	created, err := Run(habitSvc, PredefinedHabits, 30, now)
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	habits, err := repo.GetHabits()
	require.NoError(t, err)
	require.Len(t, habits, 5)
	assert.Equal(t, "Drink 2l water", habits[0].Name)
	require.NotNil(t, habits[0].Description)
	assert.Equal(t, "Hydrate properly", *habits[0].Description)

	engine := streak.NewEngine(repo)
	for _, h := range habits {
		p, err := streak.ParsePeriodicity(h.Periodicity)
		require.NoError(t, err)
		n, err := engine.StreakForHabit(h.ID, p)
		require.NoError(t, err)
		if p == streak.Daily {
			assert.Equal(t, 30, n, h.Name)
		} else {
			assert.Equal(t, 5, n, h.Name)
		}
	}

	best, err := engine.BestStreakOverall()
	require.NoError(t, err)
	require.NotNil(t, best.HabitID)
	assert.Equal(t, habits[0].ID, *best.HabitID, "first habit wins ties")
	assert.Equal(t, 30, best.Streak)

	// Seeding again is a no-op.
	created, err = Run(habitSvc, PredefinedHabits, 30, now)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	raw, err := repo.ListCompletions(habits[0].ID)
	require.NoError(t, err)
	assert.Len(t, raw, 30)
}

func TestRun_SkipsInvalidEntries(t *testing.T) {
	habitSvc := new(mocks.MockHabitService)
	habitSvc.On("GetHabitByName", "Stretch").Return(nil, services.ErrNotFound).Once()
	habitSvc.On("GetHabitByName", "Swim").Return(nil, services.ErrNotFound).Once()
	habitSvc.On("CreateHabitWithHistory",
		models.HabitCreatePayload{Name: "Swim", Periodicity: "weekly"},
		mock.AnythingOfType("[]time.Time"),
	).Return(&models.Habit{ID: 1, Name: "Swim"}, nil).Once()

	created, err := Run(habitSvc, []InitHabit{
		{Name: "", Periodicity: "daily"},
		{Name: "Stretch", Periodicity: "hourly"},
		{Name: "Swim", Periodicity: "Weekly"},
	}, 14, now)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	habitSvc.AssertExpectations(t)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.toml")
	content := []byte(`
[[habit]]
name = "Stretch"
description = "Morning mobility"
periodicity = "daily"

[[habit]]
name = "Call parents"
periodicity = "weekly"
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	habits, err := Load(path)
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, InitHabit{Name: "Stretch", Description: "Morning mobility", Periodicity: "daily"}, habits[0])
	assert.Equal(t, "weekly", habits[1].Periodicity)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
