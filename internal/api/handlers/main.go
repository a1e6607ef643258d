// filepath: internal/api/handlers/main.go
package handlers

import (
	"habithub/internal/services"
)

// Handlers holds the shared dependencies of the API handlers.
type Handlers struct {
	Info         services.InfoService
	Habit        services.HabitService
	Completion   services.CompletionService
	Analytics    services.AnalyticsService
	Housekeeping services.HousekeepingService
	Auditor      services.Auditor
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	habit services.HabitService,
	completion services.CompletionService,
	analytics services.AnalyticsService,
	housekeeping services.HousekeepingService,
	auditor services.Auditor,
) *Handlers {
	return &Handlers{
		Info:         info,
		Habit:        habit,
		Completion:   completion,
		Analytics:    analytics,
		Housekeeping: housekeeping,
		Auditor:      auditor,
	}
}
