// filepath: internal/services/mocks/completion_mock.go
package mocks

import (
	"time"

	"habithub/internal/models"
	"habithub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockCompletionService is a mock implementation of services.CompletionService
type MockCompletionService struct {
	mock.Mock
}

var _ services.CompletionService = (*MockCompletionService)(nil)

func (m *MockCompletionService) CompleteHabit(habitID int64, completedAt *time.Time) (*models.Completion, error) {
	args := m.Called(habitID, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Completion), args.Error(1)
}

func (m *MockCompletionService) GetCompletions(habitID int64) ([]models.Completion, error) {
	args := m.Called(habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Completion), args.Error(1)
}
