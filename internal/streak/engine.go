package streak

import (
	"fmt"

	"habithub/internal/models"
)

// Store is the read side of habit storage the engine depends on.
type Store interface {
	// ListHabits returns all habits in ascending id order.
	ListHabits() ([]models.Habit, error)
	// ListCompletions returns the raw completion timestamps of a habit, in any order.
	ListCompletions(habitID int64) ([]string, error)
}

// Engine answers streak queries against a Store. It holds no state of its
// own, so it is safe for concurrent use if the Store is.
type Engine struct {
	store Store
}

// NewEngine creates an Engine reading from store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// StreakForHabit returns the longest streak of a single habit.
func (e *Engine) StreakForHabit(habitID int64, p Periodicity) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("habit %d: %w", habitID, ErrInvalidPeriodicity)
	}

	timestamps, err := e.store.ListCompletions(habitID)
	if err != nil {
		return 0, fmt.Errorf("failed to list completions for habit %d: %w", habitID, err)
	}
	if len(timestamps) == 0 {
		return 0, nil
	}

	return Longest(timestamps, p)
}

// BestStreakOverall returns the habit with the single longest streak. The
// first habit (in store order) wins ties; with no habits, or no streaks at
// all, HabitID is nil and Streak is 0.
func (e *Engine) BestStreakOverall() (models.BestStreak, error) {
	best := models.BestStreak{}

	habits, err := e.store.ListHabits()
	if err != nil {
		return best, fmt.Errorf("failed to list habits: %w", err)
	}

	for _, habit := range habits {
		p, err := ParsePeriodicity(habit.Periodicity)
		if err != nil {
			return models.BestStreak{}, fmt.Errorf("habit %d: %w", habit.ID, err)
		}
		streak, err := e.StreakForHabit(habit.ID, p)
		if err != nil {
			return models.BestStreak{}, err
		}
		if streak > best.Streak {
			id := habit.ID
			best = models.BestStreak{HabitID: &id, Streak: streak}
		}
	}

	return best, nil
}
