// filepath: internal/housekeeping/tasks.go
package housekeeping

import (
	"fmt"
	"time"

	"habithub/internal/logging"
	"habithub/internal/models"
)

// Dependencies defines the required services for the housekeeping tasks.
type Dependencies struct {
	DB DBTX
	// MaxAge is the completion retention window. Zero keeps everything.
	MaxAge time.Duration
	// DeleteUnparseable removes completions whose timestamp cannot be read.
	DeleteUnparseable bool
}

// Run executes one maintenance pass over the completion log.
func Run(deps Dependencies, now time.Time) (*models.HousekeepingReport, error) {
	report := &models.HousekeepingReport{}

	// 1. Repair timestamps so the streak engine can read every row
	rewritten, unreadable, err := deps.DB.FixCompletionTimestamps(deps.DeleteUnparseable)
	if err != nil {
		return nil, fmt.Errorf("timestamp repair failed: %w", err)
	}
	report.CompletionsRewritten = rewritten
	report.CompletionsUnreadable = unreadable
	if deps.DeleteUnparseable {
		report.CompletionsDeleted = unreadable
	} else if unreadable > 0 {
		logging.Log.Warnf("%d completions have unreadable timestamps and were kept. Fix them by hand or enable housekeeping.delete_unparseable.", unreadable)
	}

	// 2. Retention
	expired, err := cleanupByAge(deps, now)
	if err != nil {
		logging.Log.Errorf("Housekeeping cleanup by age failed: %v", err)
	}
	report.CompletionsExpired = expired

	deps.DB.PurgeCache()

	report.Message = fmt.Sprintf("Housekeeping complete. %d timestamps rewritten, %d unreadable (%d deleted), %d expired completions deleted.",
		report.CompletionsRewritten, report.CompletionsUnreadable, report.CompletionsDeleted, report.CompletionsExpired)
	return report, nil
}

// cleanupByAge deletes completions older than the retention window.
func cleanupByAge(deps Dependencies, now time.Time) (int, error) {
	if deps.MaxAge <= 0 {
		logging.Log.Debug("Housekeeping cleanup by age is disabled (max_age is 0).")
		return 0, nil
	}

	cutoff := now.Add(-deps.MaxAge)
	n, err := deps.DB.DeleteCompletionsBefore(cutoff)
	if err != nil {
		return 0, fmt.Errorf("could not delete old completions: %w", err)
	}
	if n > 0 {
		logging.Log.Infof("Deleted %d completions older than %s.", n, deps.MaxAge)
	}
	return n, nil
}
