// filepath: internal/services/mocks/analytics_mock.go
package mocks

import (
	"habithub/internal/models"
	"habithub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockAnalyticsService is a mock implementation of services.AnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

var _ services.AnalyticsService = (*MockAnalyticsService)(nil)

func (m *MockAnalyticsService) LongestStreakForHabit(habitID int64) (*models.HabitStreak, error) {
	args := m.Called(habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HabitStreak), args.Error(1)
}

func (m *MockAnalyticsService) LongestStreakOverall() (*models.BestStreak, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BestStreak), args.Error(1)
}
