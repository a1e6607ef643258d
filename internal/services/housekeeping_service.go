// filepath: internal/services/housekeeping_service.go
package services

import (
	"time"

	"habithub/internal/config"
	"habithub/internal/housekeeping"
	"habithub/internal/models"
	"habithub/internal/repository"
)

var _ HousekeepingService = (*housekeepingService)(nil)

// housekeepingService manages the lifecycle of the background housekeeping worker
// and provides a method for manual triggering.
type housekeepingService struct {
	Repo       *repository.Repository
	interval   time.Duration
	worker     *housekeeping.Service
	workerDeps housekeeping.Dependencies
}

// NewHousekeepingService creates a new HousekeepingService.
func NewHousekeepingService(repo *repository.Repository, cfg *config.Config) *housekeepingService {
	deps := housekeeping.Dependencies{
		DB:                repo, // The repository satisfies the DBTX interface
		MaxAge:            cfg.CompletionMaxAge,
		DeleteUnparseable: cfg.Housekeeping.DeleteUnparseable,
	}

	return &housekeepingService{
		Repo:       repo,
		interval:   cfg.HousekeepingInterval,
		workerDeps: deps,
	}
}

// Start begins the background housekeeping worker.
func (s *housekeepingService) Start() {
	s.worker = housekeeping.NewService(s.workerDeps, s.interval)
	s.worker.Start()
}

// Stop terminates the background housekeeping worker.
func (s *housekeepingService) Stop() {
	if s.worker != nil {
		s.worker.Stop()
		s.worker = nil
	}
}

// TriggerHousekeeping runs one maintenance pass immediately.
func (s *housekeepingService) TriggerHousekeeping() (*models.HousekeepingReport, error) {
	return housekeeping.Run(s.workerDeps, time.Now().UTC())
}
