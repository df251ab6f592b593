package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// ============================================================================
// Моки для TrainingService
// ============================================================================

// MockProgressRepoForTrainingService реализует repository.ProgressRepository
type MockProgressRepoForTrainingService struct {
	mock.Mock
}

func (m *MockProgressRepoForTrainingService) MarkWatched(workerID, videoID uint) error {
	args := m.Called(workerID, videoID)
	return args.Error(0)
}

func (m *MockProgressRepoForTrainingService) ListByWorker(workerID uint) ([]entity.VideoProgress, error) {
	args := m.Called(workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoProgress), args.Error(1)
}

func (m *MockProgressRepoForTrainingService) CountWatched(workerID uint) (int64, error) {
	args := m.Called(workerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockVideoRepoForTrainingService реализует repository.VideoRepository
type MockVideoRepoForTrainingService struct {
	mock.Mock
}

func (m *MockVideoRepoForTrainingService) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepoForTrainingService) GetByID(id uint) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepoForTrainingService) ListOrdered() ([]entity.Video, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Video), args.Error(1)
}

func (m *MockVideoRepoForTrainingService) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepoForTrainingService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockWorkerRepoForTrainingService реализует repository.WorkerRepository
type MockWorkerRepoForTrainingService struct {
	mock.Mock
}

func (m *MockWorkerRepoForTrainingService) Create(tx *gorm.DB, worker *entity.Worker) error {
	args := m.Called(tx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepoForTrainingService) GetByID(id uint) (*entity.Worker, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Worker), args.Error(1)
}

func (m *MockWorkerRepoForTrainingService) GetByEmployeeNumber(employeeNumber string) (*entity.Worker, error) {
	args := m.Called(employeeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Worker), args.Error(1)
}

func (m *MockWorkerRepoForTrainingService) SetRetakeAllowed(workerID uint, allowed bool) error {
	args := m.Called(workerID, allowed)
	return args.Error(0)
}

func (m *MockWorkerRepoForTrainingService) LockByID(tx *gorm.DB, id uint) (*entity.Worker, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Worker), args.Error(1)
}

func (m *MockWorkerRepoForTrainingService) ResetRetake(tx *gorm.DB, workerID uint) error {
	args := m.Called(tx, workerID)
	return args.Error(0)
}

func (m *MockWorkerRepoForTrainingService) Delete(workerID uint) error {
	args := m.Called(workerID)
	return args.Error(0)
}

// ============================================================================
// Тесты для TrainingService
// ============================================================================

func TestTrainingService_IsEligibleForExam_AllWatched(t *testing.T) {
	// Arrange
	mockProgressRepo := new(MockProgressRepoForTrainingService)
	mockVideoRepo := new(MockVideoRepoForTrainingService)

	mockVideoRepo.On("Count").Return(int64(4), nil)
	mockProgressRepo.On("CountWatched", uint(1)).Return(int64(4), nil)

	trainingService := NewTrainingService(mockProgressRepo, mockVideoRepo, nil)

	// Act
	eligible, err := trainingService.IsEligibleForExam(1)

	// Assert
	require.NoError(t, err)
	assert.True(t, eligible, "4 из 4 просмотрено — допуск есть")
}

func TestTrainingService_IsEligibleForExam_PartialProgress(t *testing.T) {
	// Тест: строгое равенство, 3 из 4 недостаточно
	mockProgressRepo := new(MockProgressRepoForTrainingService)
	mockVideoRepo := new(MockVideoRepoForTrainingService)

	mockVideoRepo.On("Count").Return(int64(4), nil)
	mockProgressRepo.On("CountWatched", uint(1)).Return(int64(3), nil)

	trainingService := NewTrainingService(mockProgressRepo, mockVideoRepo, nil)

	eligible, err := trainingService.IsEligibleForExam(1)

	require.NoError(t, err)
	assert.False(t, eligible)
}

func TestTrainingService_IsEligibleForExam_CatalogGrowthRevokes(t *testing.T) {
	// Тест: новое видео в каталоге отзывает допуск, пока его не посмотрят
	mockProgressRepo := new(MockProgressRepoForTrainingService)
	mockVideoRepo := new(MockVideoRepoForTrainingService)

	// Работник досмотрел старый каталог из 4 видео, но добавилось пятое
	mockVideoRepo.On("Count").Return(int64(5), nil)
	mockProgressRepo.On("CountWatched", uint(1)).Return(int64(4), nil)

	trainingService := NewTrainingService(mockProgressRepo, mockVideoRepo, nil)

	eligible, err := trainingService.IsEligibleForExam(1)

	require.NoError(t, err)
	assert.False(t, eligible, "Допуск отозван до просмотра нового видео")
}

func TestTrainingService_IsEligibleForExam_EmptyCatalog(t *testing.T) {
	// Тест: строгое равенство 0 == 0 — пустой каталог дает допуск
	// без единого просмотра
	mockProgressRepo := new(MockProgressRepoForTrainingService)
	mockVideoRepo := new(MockVideoRepoForTrainingService)

	mockVideoRepo.On("Count").Return(int64(0), nil)
	mockProgressRepo.On("CountWatched", uint(1)).Return(int64(0), nil)

	trainingService := NewTrainingService(mockProgressRepo, mockVideoRepo, nil)

	eligible, err := trainingService.IsEligibleForExam(1)

	require.NoError(t, err)
	assert.True(t, eligible, "Просмотрено == всего даже при пустом каталоге")
}

func TestTrainingService_MarkWatched_Success(t *testing.T) {
	// Arrange
	mockProgressRepo := new(MockProgressRepoForTrainingService)
	mockVideoRepo := new(MockVideoRepoForTrainingService)
	mockWorkerRepo := new(MockWorkerRepoForTrainingService)

	mockWorkerRepo.On("GetByID", uint(1)).Return(&entity.Worker{ID: 1}, nil)
	mockVideoRepo.On("GetByID", uint(2)).Return(&entity.Video{ID: 2}, nil)
	mockProgressRepo.On("MarkWatched", uint(1), uint(2)).Return(nil)

	trainingService := NewTrainingService(mockProgressRepo, mockVideoRepo, mockWorkerRepo)

	// Act
	err := trainingService.MarkWatched(1, 2)

	// Assert
	require.NoError(t, err)
	mockProgressRepo.AssertExpectations(t)
}

func TestTrainingService_MarkWatched_UnknownVideo(t *testing.T) {
	// Тест: отметка для несуществующего видео отклоняется
	mockProgressRepo := new(MockProgressRepoForTrainingService)
	mockVideoRepo := new(MockVideoRepoForTrainingService)
	mockWorkerRepo := new(MockWorkerRepoForTrainingService)

	mockWorkerRepo.On("GetByID", uint(1)).Return(&entity.Worker{ID: 1}, nil)
	mockVideoRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	trainingService := NewTrainingService(mockProgressRepo, mockVideoRepo, mockWorkerRepo)

	err := trainingService.MarkWatched(1, 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockProgressRepo.AssertNotCalled(t, "MarkWatched", mock.Anything, mock.Anything)
}
