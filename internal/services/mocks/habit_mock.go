// filepath: internal/services/mocks/habit_mock.go
package mocks

import (
	"time"

	"habithub/internal/models"
	"habithub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockHabitService is a mock implementation of services.HabitService
type MockHabitService struct {
	mock.Mock
}

var _ services.HabitService = (*MockHabitService)(nil)

func (m *MockHabitService) CreateHabit(payload models.HabitCreatePayload) (*models.Habit, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Habit), args.Error(1)
}

func (m *MockHabitService) CreateHabitWithHistory(payload models.HabitCreatePayload, completedAt []time.Time) (*models.Habit, error) {
	args := m.Called(payload, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Habit), args.Error(1)
}

func (m *MockHabitService) GetHabit(id int64) (*models.Habit, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Habit), args.Error(1)
}

func (m *MockHabitService) GetHabitByName(name string) (*models.Habit, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Habit), args.Error(1)
}

func (m *MockHabitService) GetHabits() ([]models.Habit, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Habit), args.Error(1)
}

func (m *MockHabitService) GetHabitsByPeriodicity(periodicity string) ([]models.Habit, error) {
	args := m.Called(periodicity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Habit), args.Error(1)
}

func (m *MockHabitService) DeleteHabit(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}
