// filepath: internal/repository/habit_repo.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"habithub/internal/logging"
	"habithub/internal/models"
	"habithub/internal/streak"
)

var habitColumns = []string{"id", "name", "description", "periodicity", "created_at"}

func habitCacheKey(id int64) string {
	return fmt.Sprintf("habit_by_id_%d", id)
}

// CreateHabit inserts a habit and returns it with its new id.
// CreatedAt is set to the current UTC time when zero.
func (s *Repository) CreateHabit(h *models.Habit) (*models.Habit, error) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}

	query, args, err := s.Builder.
		Insert("habits").
		Columns("name", "description", "periodicity", "created_at").
		Values(h.Name, h.Description, h.Periodicity, h.CreatedAt.UTC().Format(streak.TimestampLayout)).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *h
	created.ID = id
	created.CreatedAt = h.CreatedAt.UTC()
	logging.Log.Debugf("CreateHabit: habit '%s' created with ID %d", h.Name, id)
	return &created, nil
}

// GetHabit retrieves a habit by id, using the cache when possible.
func (s *Repository) GetHabit(id int64) (*models.Habit, error) {
	cacheKey := habitCacheKey(id)
	if cached, found := s.Cache.Get(cacheKey); found {
		h := cached.(models.Habit)
		return &h, nil
	}

	logging.Log.Debugf("GetHabit: CACHE MISS for %d. Querying DB.", id)
	query, args, err := s.Builder.Select(habitColumns...).From("habits").Where("id = ?", id).ToSql()
	if err != nil {
		return nil, err
	}

	h, err := scanHabit(s.DB.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	s.Cache.SetDefault(cacheKey, *h)
	return h, nil
}

// GetHabits returns all habits ordered by ascending id.
func (s *Repository) GetHabits() ([]models.Habit, error) {
	return s.queryHabits(s.Builder.Select(habitColumns...).From("habits").OrderBy("id ASC").ToSql())
}

// GetHabitsByPeriodicity returns the habits with the given periodicity, ordered by id.
func (s *Repository) GetHabitsByPeriodicity(periodicity string) ([]models.Habit, error) {
	return s.queryHabits(s.Builder.
		Select(habitColumns...).
		From("habits").
		Where("periodicity = ?", periodicity).
		OrderBy("id ASC").
		ToSql())
}

// GetHabitByName returns the first habit with the given name.
func (s *Repository) GetHabitByName(name string) (*models.Habit, error) {
	query, args, err := s.Builder.
		Select(habitColumns...).
		From("habits").
		Where("name = ?", name).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	h, err := scanHabit(s.DB.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return h, nil
}

// DeleteHabit removes a habit. Its completions are removed by the
// foreign key cascade.
func (s *Repository) DeleteHabit(id int64) error {
	query, args, err := s.Builder.Delete("habits").Where("id = ?", id).ToSql()
	if err != nil {
		return err
	}

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		return err
	}
	s.Cache.Delete(habitCacheKey(id))

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// ListHabits returns all habits in ascending id order.
func (s *Repository) ListHabits() ([]models.Habit, error) {
	return s.GetHabits()
}

func (s *Repository) queryHabits(query string, args []interface{}, err error) ([]models.Habit, error) {
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		logging.Log.Errorf("Error executing habits query: %v", err)
		return nil, err
	}
	defer rows.Close()

	habits := make([]models.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return habits, nil
}
