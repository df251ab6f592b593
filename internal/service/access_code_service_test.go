package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// ============================================================================
// Моки для AccessCodeService
// ============================================================================

// MockAccessCodeRepoForCodeService реализует repository.AccessCodeRepository
type MockAccessCodeRepoForCodeService struct {
	mock.Mock
}

func (m *MockAccessCodeRepoForCodeService) Create(code *entity.AccessCode) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *MockAccessCodeRepoForCodeService) GetByID(id uint) (*entity.AccessCode, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AccessCode), args.Error(1)
}

func (m *MockAccessCodeRepoForCodeService) GetUnusedByCode(code string) (*entity.AccessCode, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AccessCode), args.Error(1)
}

func (m *MockAccessCodeRepoForCodeService) List() ([]entity.AccessCode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AccessCode), args.Error(1)
}

func (m *MockAccessCodeRepoForCodeService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAccessCodeRepoForCodeService) Redeem(tx *gorm.DB, code, employeeNumber string) (*entity.AccessCode, error) {
	args := m.Called(tx, code, employeeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AccessCode), args.Error(1)
}

// ============================================================================
// Тесты для AccessCodeService
// ============================================================================

func TestAccessCodeService_CreateCode_ExplicitCode(t *testing.T) {
	// Arrange
	mockRepo := new(MockAccessCodeRepoForCodeService)
	mockRepo.On("Create", mock.AnythingOfType("*entity.AccessCode")).Return(nil)

	codeService := NewAccessCodeService(mockRepo)

	// Act
	code, err := codeService.CreateCode("TRAIN-2026-01", "Иванов Иван", "EMP-100", "Сварщик")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "TRAIN-2026-01", code.Code)
	assert.Equal(t, "EMP-100", code.EmployeeNumber)
	assert.False(t, code.Used)
	mockRepo.AssertExpectations(t)
}

func TestAccessCodeService_CreateCode_GeneratedCode(t *testing.T) {
	// Тест: пустой code заменяется сгенерированным
	mockRepo := new(MockAccessCodeRepoForCodeService)
	mockRepo.On("Create", mock.AnythingOfType("*entity.AccessCode")).Return(nil)

	codeService := NewAccessCodeService(mockRepo)

	code, err := codeService.CreateCode("", "Иванов Иван", "EMP-101", "")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code.Code, "SAFE-"), "Сгенерированный код имеет префикс SAFE-")
	assert.Len(t, code.Code, len("SAFE-")+8)
}

func TestAccessCodeService_CreateCode_MissingFields(t *testing.T) {
	codeService := NewAccessCodeService(nil)

	code, err := codeService.CreateCode("X", "", "EMP-100", "")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, code)
}

func TestAccessCodeService_VerifyCode_Unused(t *testing.T) {
	// Arrange
	mockRepo := new(MockAccessCodeRepoForCodeService)
	expected := &entity.AccessCode{Code: "SAFE-AAAA1111", FullName: "Иванов Иван", EmployeeNumber: "EMP-100"}
	mockRepo.On("GetUnusedByCode", "SAFE-AAAA1111").Return(expected, nil)

	codeService := NewAccessCodeService(mockRepo)

	// Act: код передан с пробелами
	code, err := codeService.VerifyCode("  SAFE-AAAA1111  ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "EMP-100", code.EmployeeNumber)
}

func TestAccessCodeService_VerifyCode_UsedCode(t *testing.T) {
	// Тест: погашенный код неотличим от несуществующего
	mockRepo := new(MockAccessCodeRepoForCodeService)
	mockRepo.On("GetUnusedByCode", "SAFE-USED0000").Return(nil, apperrors.ErrNotFound)

	codeService := NewAccessCodeService(mockRepo)

	code, err := codeService.VerifyCode("SAFE-USED0000")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, code)
}

func TestAccessCodeService_VerifyCode_Empty(t *testing.T) {
	codeService := NewAccessCodeService(nil)

	_, err := codeService.VerifyCode("   ")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
