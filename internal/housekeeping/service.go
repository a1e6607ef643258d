// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"time"

	"habithub/internal/logging"
)

const (
	// DefaultCheckInterval is used when no interval is configured.
	DefaultCheckInterval = 1 * time.Hour
	// MinCheckInterval is the minimum time between checks to prevent busy-looping.
	MinCheckInterval = 1 * time.Minute
)

// Service provides the background worker for automated housekeeping.
type Service struct {
	Deps     Dependencies
	Interval time.Duration
	timer    *time.Timer
	stopCh   chan struct{}
}

// NewService creates a new housekeeping service instance.
func NewService(deps Dependencies, interval time.Duration) *Service {
	return &Service{
		Deps:     deps,
		Interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start kicks off the background housekeeping service.
func (s *Service) Start() {
	logging.Log.Info("Starting background housekeeping service.")
	s.timer = time.NewTimer(0) // Fire immediately on start

	go func() {
		for {
			select {
			case <-s.timer.C:
				s.runChecks()
				nextRun := s.scheduleNextRun()
				s.timer.Reset(nextRun)
				logging.Log.Infof("Next housekeeping check scheduled in %v.", nextRun)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background housekeeping service.
func (s *Service) Stop() {
	logging.Log.Info("Stopping background housekeeping service.")
	close(s.stopCh)
}

// scheduleNextRun calculates the duration until the next housekeeping event.
func (s *Service) scheduleNextRun() time.Duration {
	if s.Interval <= 0 {
		return DefaultCheckInterval
	}
	if s.Interval < MinCheckInterval {
		return MinCheckInterval
	}
	return s.Interval
}

func (s *Service) runChecks() {
	logging.Log.Debug("Housekeeping service: running maintenance pass...")
	report, err := Run(s.Deps, time.Now().UTC())
	if err != nil {
		logging.Log.Errorf("Housekeeping run failed: %v", err)
		return
	}
	logging.Log.Infof("Housekeeping run finished: %s", report.Message)
}
