// filepath: internal/repository/housekeeping_repo_test.go
package repository

import (
	"testing"
	"time"

	"habithub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCompletionsBefore(t *testing.T) {
	repo := setupTestDB(t)
	habit, err := repo.CreateHabit(&models.Habit{Name: "Stretch", Periodicity: "daily"})
	require.NoError(t, err)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := repo.CreateCompletion(habit.ID, base.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteCompletionsBefore(base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	raw, err := repo.ListCompletions(habit.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-03-03T12:00:00.000000Z",
		"2024-03-04T12:00:00.000000Z",
		"2024-03-05T12:00:00.000000Z",
	}, raw)

	deleted, err = repo.DeleteCompletionsBefore(base)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestPurgeCache(t *testing.T) {
	repo := setupTestDB(t)
	repo.Cache.Set("stale", 1, time.Nanosecond)
	repo.Cache.Set("fresh", 2, time.Hour)
	time.Sleep(time.Millisecond)

	repo.PurgeCache()

	assert.Equal(t, 1, repo.Cache.ItemCount())
	_, found := repo.Cache.Get("fresh")
	assert.True(t, found)
}
