package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
)

// ============================================================================
// Моки для ResultService
// ============================================================================

// MockResultRepoForResultService реализует repository.ResultRepository
type MockResultRepoForResultService struct {
	mock.Mock
}

func (m *MockResultRepoForResultService) Save(tx *gorm.DB, result *entity.ExamResult) error {
	args := m.Called(tx, result)
	return args.Error(0)
}

func (m *MockResultRepoForResultService) ExistsForWorker(tx *gorm.DB, workerID uint) (bool, error) {
	args := m.Called(tx, workerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResultRepoForResultService) ListByWorker(workerID uint) ([]entity.ExamResult, error) {
	args := m.Called(workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ExamResult), args.Error(1)
}

func (m *MockResultRepoForResultService) ListWithWorkers() ([]repository.WorkerResult, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.WorkerResult), args.Error(1)
}

// ============================================================================
// Тесты для ResultService
// ============================================================================

func TestResultService_CalculateStatistics(t *testing.T) {
	// Arrange
	mockResultRepo := new(MockResultRepoForResultService)

	now := time.Now()
	results := []repository.WorkerResult{
		{ID: 1, WorkerID: 1, FullName: "Иванов Иван", Score: 18, Percentage: 90.0, Passed: true, ExamDate: now},
		{ID: 2, WorkerID: 2, FullName: "Петров Петр", Score: 14, Percentage: 70.0, Passed: true, ExamDate: now},
		{ID: 3, WorkerID: 3, FullName: "Сидоров Сидор", Score: 10, Percentage: 50.0, Passed: false, ExamDate: now},
		{ID: 4, WorkerID: 4, FullName: "Козлов Козьма", Score: 6, Percentage: 30.0, Passed: false, ExamDate: now},
	}
	mockResultRepo.On("ListWithWorkers").Return(results, nil)

	resultService := NewResultService(mockResultRepo)

	// Act
	stats, err := resultService.CalculateStatistics()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalAttempts)
	assert.Equal(t, 2, stats.PassedCount)
	assert.Equal(t, 2, stats.FailedCount)
	assert.Equal(t, 50.0, stats.PassRate)
	assert.Equal(t, 12.0, stats.AverageScore)
}

func TestResultService_CalculateStatistics_Empty(t *testing.T) {
	// Тест: деления на ноль при пустой таблице нет
	mockResultRepo := new(MockResultRepoForResultService)
	mockResultRepo.On("ListWithWorkers").Return([]repository.WorkerResult{}, nil)

	resultService := NewResultService(mockResultRepo)

	stats, err := resultService.CalculateStatistics()

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, 0.0, stats.PassRate)
	assert.Equal(t, 0.0, stats.AverageScore)
}
