// filepath: internal/repository/housekeeping_repo.go
package repository

import (
	"fmt"
	"time"

	"habithub/internal/logging"
	"habithub/internal/streak"
)

// DeleteCompletionsBefore removes every completion recorded strictly before
// cutoff. Stored timestamps share one fixed-width UTC layout, so the string
// comparison orders them chronologically.
func (s *Repository) DeleteCompletionsBefore(cutoff time.Time) (int, error) {
	query, args, err := s.Builder.
		Delete("completions").
		Where("completed_at < ?", cutoff.UTC().Format(streak.TimestampLayout)).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completions before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	logging.Log.Debugf("DeleteCompletionsBefore: removed %d completions older than %s", n, cutoff.Format(time.RFC3339))
	return int(n), nil
}

// PurgeCache drops expired items from the read cache.
func (s *Repository) PurgeCache() {
	s.Cache.DeleteExpired()
}
