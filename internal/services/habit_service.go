// filepath: internal/services/habit_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"habithub/internal/logging"
	"habithub/internal/models"
	"habithub/internal/repository"
	"habithub/internal/streak"
)

var _ HabitService = (*habitService)(nil)

// habitService handles business logic for habit management.
type habitService struct {
	Repo *repository.Repository
}

// NewHabitService creates a new HabitService.
func NewHabitService(repo *repository.Repository) *habitService {
	return &habitService{Repo: repo}
}

// CreateHabit validates the payload and stores a new habit.
func (s *habitService) CreateHabit(payload models.HabitCreatePayload) (*models.Habit, error) {
	habit, err := habitFromPayload(payload)
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateHabit(habit)
	if err != nil {
		logging.Log.Errorf("HabitService: Failed to create habit '%s': %v", habit.Name, err)
		return nil, err
	}

	logging.Log.Infof("HabitService: Habit created: %d (%s, %s)", created.ID, created.Name, created.Periodicity)
	return created, nil
}

// CreateHabitWithHistory stores a new habit together with past completions
// in a single transaction.
func (s *habitService) CreateHabitWithHistory(payload models.HabitCreatePayload, completedAt []time.Time) (*models.Habit, error) {
	habit, err := habitFromPayload(payload)
	if err != nil {
		return nil, err
	}

	tx, err := s.Repo.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	id, err := tx.CreateHabitInTx(habit)
	if err != nil {
		return nil, fmt.Errorf("failed to insert habit '%s': %w", habit.Name, err)
	}
	if err := tx.CreateCompletionsInTx(id, completedAt); err != nil {
		return nil, fmt.Errorf("failed to insert completions for habit '%s': %w", habit.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	habit.ID = id
	logging.Log.Infof("HabitService: Habit created with %d completions: %d (%s)", len(completedAt), id, habit.Name)
	return habit, nil
}

// GetHabit retrieves a habit by id.
func (s *habitService) GetHabit(id int64) (*models.Habit, error) {
	habit, err := s.Repo.GetHabit(id)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return habit, nil
}

// GetHabitByName retrieves the first habit with the given name.
func (s *habitService) GetHabitByName(name string) (*models.Habit, error) {
	habit, err := s.Repo.GetHabitByName(name)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return habit, nil
}

// GetHabits retrieves all habits.
func (s *habitService) GetHabits() ([]models.Habit, error) {
	return s.Repo.GetHabits()
}

// GetHabitsByPeriodicity retrieves all habits tracked at the given periodicity.
func (s *habitService) GetHabitsByPeriodicity(periodicity string) ([]models.Habit, error) {
	p, err := parsePeriodicity(periodicity)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetHabitsByPeriodicity(p.String())
}

// DeleteHabit removes a habit and, through the foreign key, its completions.
func (s *habitService) DeleteHabit(id int64) error {
	if err := s.Repo.DeleteHabit(id); err != nil {
		return translateRepoError(err)
	}
	logging.Log.Infof("HabitService: Habit deleted: %d", id)
	return nil
}

// habitFromPayload validates a create payload and normalizes its fields.
func habitFromPayload(payload models.HabitCreatePayload) (*models.Habit, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	p, err := parsePeriodicity(payload.Periodicity)
	if err != nil {
		return nil, err
	}

	var description *string
	if payload.Description != nil {
		if d := strings.TrimSpace(*payload.Description); d != "" {
			description = &d
		}
	}

	return &models.Habit{
		Name:        name,
		Description: description,
		Periodicity: p.String(),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// parsePeriodicity turns an unknown periodicity into a validation error
// listing the accepted values.
func parsePeriodicity(s string) (streak.Periodicity, error) {
	p, err := streak.ParsePeriodicity(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v (must be one of %s)", ErrValidation, err, strings.Join(streak.Names(), ", "))
	}
	return p, nil
}

func translateRepoError(err error) error {
	if errors.Is(err, repository.ErrHabitNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
