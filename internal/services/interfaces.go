// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"time"

	"habithub/internal/models"
)

// Auditor defines the interface for recording state-changing events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "habit.create", "habit.complete")
	// actor: who did it (remote address or "cli")
	// resource: what was affected (e.g., "Habit:12")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// HabitService defines the interface for the habit service.
type HabitService interface {
	CreateHabit(payload models.HabitCreatePayload) (*models.Habit, error)
	CreateHabitWithHistory(payload models.HabitCreatePayload, completedAt []time.Time) (*models.Habit, error)
	GetHabit(id int64) (*models.Habit, error)
	GetHabitByName(name string) (*models.Habit, error)
	GetHabits() ([]models.Habit, error)
	GetHabitsByPeriodicity(periodicity string) ([]models.Habit, error)
	DeleteHabit(id int64) error
}

// CompletionService defines the interface for the completion service.
type CompletionService interface {
	CompleteHabit(habitID int64, completedAt *time.Time) (*models.Completion, error)
	GetCompletions(habitID int64) ([]models.Completion, error)
}

// AnalyticsService defines the interface for streak analytics.
type AnalyticsService interface {
	LongestStreakForHabit(habitID int64) (*models.HabitStreak, error)
	LongestStreakOverall() (*models.BestStreak, error)
}

// HousekeepingService defines the interface for the background maintenance worker.
type HousekeepingService interface {
	Start()
	Stop()
	TriggerHousekeeping() (*models.HousekeepingReport, error)
}
