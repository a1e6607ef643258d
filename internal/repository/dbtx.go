// filepath: internal/repository/dbtx.go
package repository

import (
	"database/sql"
	"time"

	"habithub/internal/models"
	"habithub/internal/streak"

	"github.com/Masterminds/squirrel"
)

// Tx is a wrapper around *sql.Tx that provides transactional database operations.
type Tx struct {
	*sql.Tx
	builder squirrel.StatementBuilderType
}

// CreateHabitInTx inserts a habit within a transaction and returns its id.
func (tx *Tx) CreateHabitInTx(h *models.Habit) (int64, error) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	query, args, err := tx.builder.
		Insert("habits").
		Columns("name", "description", "periodicity", "created_at").
		Values(h.Name, h.Description, h.Periodicity, h.CreatedAt.UTC().Format(streak.TimestampLayout)).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CreateCompletionsInTx inserts one completion per timestamp in a single statement.
func (tx *Tx) CreateCompletionsInTx(habitID int64, times []time.Time) error {
	if len(times) == 0 {
		return nil
	}

	insert := tx.builder.Insert("completions").Columns("habit_id", "completed_at")
	for _, t := range times {
		insert = insert.Values(habitID, t.UTC().Format(streak.TimestampLayout))
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(query, args...)
	return err
}
