// filepath: internal/services/analytics_service.go
package services

import (
	"habithub/internal/models"
	"habithub/internal/repository"
	"habithub/internal/streak"
)

var _ AnalyticsService = (*analyticsService)(nil)

// analyticsService answers streak queries over the stored completions.
type analyticsService struct {
	Repo   *repository.Repository
	Engine *streak.Engine
}

// NewAnalyticsService creates a new AnalyticsService backed by the repository.
func NewAnalyticsService(repo *repository.Repository) *analyticsService {
	return &analyticsService{
		Repo:   repo,
		Engine: streak.NewEngine(repo),
	}
}

// LongestStreakForHabit computes the longest streak of one habit at its own periodicity.
func (s *analyticsService) LongestStreakForHabit(habitID int64) (*models.HabitStreak, error) {
	habit, err := s.Repo.GetHabit(habitID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	p, err := streak.ParsePeriodicity(habit.Periodicity)
	if err != nil {
		return nil, err
	}

	n, err := s.Engine.StreakForHabit(habit.ID, p)
	if err != nil {
		return nil, err
	}
	return &models.HabitStreak{HabitID: habit.ID, Streak: n}, nil
}

// LongestStreakOverall returns the habit with the longest streak across all habits.
func (s *analyticsService) LongestStreakOverall() (*models.BestStreak, error) {
	best, err := s.Engine.BestStreakOverall()
	if err != nil {
		return nil, err
	}
	return &best, nil
}
