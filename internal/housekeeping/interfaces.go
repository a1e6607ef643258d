// filepath: internal/housekeeping/interfaces.go
package housekeeping

import "time"

// DBTX is an interface that defines the database methods required by the housekeeping service.
// This decouples the housekeeping logic from the concrete repository.
type DBTX interface {
	FixCompletionTimestamps(deleteUnparseable bool) (rewritten int, unreadable int, err error)
	DeleteCompletionsBefore(cutoff time.Time) (int, error)
	PurgeCache()
}
