// filepath: internal/services/completion_service.go
package services

import (
	"fmt"
	"time"

	"habithub/internal/logging"
	"habithub/internal/models"
	"habithub/internal/repository"
)

var _ CompletionService = (*completionService)(nil)

type completionService struct {
	Repo *repository.Repository
}

// NewCompletionService creates a new CompletionService.
func NewCompletionService(repo *repository.Repository) *completionService {
	return &completionService{Repo: repo}
}

// CompleteHabit records a completion for an existing habit.
// A nil completedAt means now.
func (s *completionService) CompleteHabit(habitID int64, completedAt *time.Time) (*models.Completion, error) {
	if _, err := s.Repo.GetHabit(habitID); err != nil {
		return nil, translateRepoError(err)
	}

	at := time.Now().UTC()
	if completedAt != nil {
		if completedAt.IsZero() {
			return nil, fmt.Errorf("%w: completed_at must not be zero", ErrValidation)
		}
		at = completedAt.UTC()
	}

	completion, err := s.Repo.CreateCompletion(habitID, at)
	if err != nil {
		logging.Log.Errorf("CompletionService: Failed to record completion for habit %d: %v", habitID, err)
		return nil, err
	}
	return completion, nil
}

// GetCompletions lists the completions of an existing habit, oldest first.
func (s *completionService) GetCompletions(habitID int64) ([]models.Completion, error) {
	if _, err := s.Repo.GetHabit(habitID); err != nil {
		return nil, translateRepoError(err)
	}
	return s.Repo.GetCompletions(habitID)
}
