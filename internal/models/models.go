// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"time"
)

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}

// Habit represents a recurring activity tracked at a fixed periodicity.
type Habit struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Periodicity string    `json:"periodicity"` // "daily" or "weekly"
	CreatedAt   time.Time `json:"created_at"`
}

// HabitCreatePayload is used for the POST /api/habits request.
type HabitCreatePayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Periodicity string  `json:"periodicity"`
}

// Completion is a single timestamped record that a habit was performed.
type Completion struct {
	ID          int64     `json:"id"`
	HabitID     int64     `json:"habit_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// CompletePayload is the optional body of POST /api/habits/{id}/complete.
// When CompletedAt is omitted the completion is recorded at the current time.
type CompletePayload struct {
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// HabitStreak is the longest streak of a single habit.
type HabitStreak struct {
	HabitID int64 `json:"habit_id"`
	Streak  int   `json:"streak"`
}

// BestStreak is the longest streak across all habits.
// HabitID is nil when no habit has a streak.
type BestStreak struct {
	HabitID *int64 `json:"habit_id"`
	Streak  int    `json:"streak"`
}

// HousekeepingReport summarises a maintenance pass over the completion log.
// CompletionsDeleted counts unparseable rows removed; it stays 0 unless
// deletion of unparseable rows is enabled.
type HousekeepingReport struct {
	CompletionsRewritten  int    `json:"completions_rewritten"`
	CompletionsUnreadable int    `json:"completions_unreadable"`
	CompletionsDeleted    int    `json:"completions_deleted"`
	CompletionsExpired    int    `json:"completions_expired"`
	Message               string `json:"message"`
}
