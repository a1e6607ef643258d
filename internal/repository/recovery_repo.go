// filepath: internal/repository/recovery_repo.go
package repository

import (
	"fmt"

	"habithub/internal/logging"
	"habithub/internal/streak"
)

type storedCompletion struct {
	id  int64
	raw string
}

// FixCompletionTimestamps rewrites every parseable completion timestamp into
// the canonical stored layout. Rows that cannot be parsed at all are left
// untouched unless deleteUnparseable is set. It returns the number of
// rewritten rows and the number of unparseable ones.
func (s *Repository) FixCompletionTimestamps(deleteUnparseable bool) (int, int, error) {
	tx, err := s.BeginTx()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	query, args, err := s.Builder.Select("id", "completed_at").From("completions").ToSql()
	if err != nil {
		return 0, 0, err
	}
	rows, err := tx.Query(query, args...)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to scan completions: %w", err)
	}
	var stored []storedCompletion
	for rows.Next() {
		var c storedCompletion
		if err := rows.Scan(&c.id, &c.raw); err != nil {
			rows.Close()
			return 0, 0, err
		}
		stored = append(stored, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}

	rewritten, unreadable := 0, 0
	for _, c := range stored {
		t, err := streak.ParseTimestamp(c.raw)
		if err != nil {
			unreadable++
			if !deleteUnparseable {
				logging.Log.Warnf("Keeping completion %d with unparseable timestamp %q", c.id, c.raw)
				continue
			}
			logging.Log.Warnf("Deleting completion %d with unparseable timestamp %q", c.id, c.raw)
			query, args, err := s.Builder.Delete("completions").Where("id = ?", c.id).ToSql()
			if err != nil {
				return 0, 0, err
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return 0, 0, fmt.Errorf("failed to delete completion %d: %w", c.id, err)
			}
			continue
		}

		canonical := t.UTC().Format(streak.TimestampLayout)
		if canonical == c.raw {
			continue
		}
		query, args, err := s.Builder.Update("completions").Set("completed_at", canonical).Where("id = ?", c.id).ToSql()
		if err != nil {
			return 0, 0, err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return 0, 0, fmt.Errorf("failed to rewrite completion %d: %w", c.id, err)
		}
		rewritten++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return rewritten, unreadable, nil
}
