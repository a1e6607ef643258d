// filepath: internal/repository/utils.go
package repository

import (
	"database/sql"
	"fmt"

	"habithub/internal/models"
	"habithub/internal/streak"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanHabit scans a row selected with habitColumns.
func scanHabit(row rowScanner) (*models.Habit, error) {
	var h models.Habit
	var description sql.NullString
	var createdAt string

	if err := row.Scan(&h.ID, &h.Name, &description, &h.Periodicity, &createdAt); err != nil {
		return nil, err
	}

	if description.Valid {
		d := description.String
		h.Description = &d
	}

	t, err := streak.ParseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("habit %d: failed to parse created_at: %w", h.ID, err)
	}
	h.CreatedAt = t

	return &h, nil
}
