// filepath: internal/repository/completion_repo.go
package repository

import (
	"fmt"
	"time"

	"habithub/internal/logging"
	"habithub/internal/models"
	"habithub/internal/streak"
)

// CreateCompletion records that a habit was performed at the given time.
func (s *Repository) CreateCompletion(habitID int64, at time.Time) (*models.Completion, error) {
	at = at.UTC()
	query, args, err := s.Builder.
		Insert("completions").
		Columns("habit_id", "completed_at").
		Values(habitID, at.Format(streak.TimestampLayout)).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateCompletion: habit %d completed at %s", habitID, at.Format(time.RFC3339))
	return &models.Completion{ID: id, HabitID: habitID, CompletedAt: at}, nil
}

// ListCompletions returns the raw stored timestamps of a habit in ascending order.
func (s *Repository) ListCompletions(habitID int64) ([]string, error) {
	query, args, err := s.Builder.
		Select("completed_at").
		From("completions").
		Where("habit_id = ?", habitID).
		OrderBy("completed_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timestamps := make([]string, 0)
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		timestamps = append(timestamps, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return timestamps, nil
}

// GetCompletions returns the completions of a habit ordered by time.
func (s *Repository) GetCompletions(habitID int64) ([]models.Completion, error) {
	query, args, err := s.Builder.
		Select("id", "habit_id", "completed_at").
		From("completions").
		Where("habit_id = ?", habitID).
		OrderBy("completed_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := make([]models.Completion, 0)
	for rows.Next() {
		var c models.Completion
		var raw string
		if err := rows.Scan(&c.ID, &c.HabitID, &raw); err != nil {
			return nil, err
		}
		if c.CompletedAt, err = streak.ParseTimestamp(raw); err != nil {
			return nil, fmt.Errorf("completion %d: %w", c.ID, err)
		}
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return completions, nil
}
