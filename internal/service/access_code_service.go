package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// AccessCodeService предоставляет методы для управления кодами доступа
type AccessCodeService struct {
	accessCodeRepo repository.AccessCodeRepository
}

// NewAccessCodeService создает новый сервис кодов доступа
func NewAccessCodeService(accessCodeRepo repository.AccessCodeRepository) *AccessCodeService {
	return &AccessCodeService{
		accessCodeRepo: accessCodeRepo,
	}
}

// CreateCode создает новый код доступа для работника. Если code пустой,
// генерируется случайный.
func (s *AccessCodeService) CreateCode(code, fullName, employeeNumber, jobTitle string) (*entity.AccessCode, error) {
	fullName = strings.TrimSpace(fullName)
	employeeNumber = strings.TrimSpace(employeeNumber)
	code = strings.TrimSpace(code)

	if fullName == "" || employeeNumber == "" {
		return nil, apperrors.ErrValidation
	}

	if code == "" {
		code = generateAccessCode()
	}

	accessCode := &entity.AccessCode{
		Code:           code,
		FullName:       fullName,
		EmployeeNumber: employeeNumber,
		JobTitle:       strings.TrimSpace(jobTitle),
	}

	if err := s.accessCodeRepo.Create(accessCode); err != nil {
		return nil, err
	}

	log.Printf("[AccessCodeService] Создан код доступа #%d для работника %s", accessCode.ID, employeeNumber)
	return accessCode, nil
}

// VerifyCode проверяет код доступа без его гашения. Возвращает данные,
// зашитые в код, чтобы форма регистрации могла их предзаполнить.
func (s *AccessCodeService) VerifyCode(code string) (*entity.AccessCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.ErrValidation
	}
	return s.accessCodeRepo.GetUnusedByCode(code)
}

// ListCodes возвращает все коды доступа, включая погашенные
func (s *AccessCodeService) ListCodes() ([]entity.AccessCode, error) {
	return s.accessCodeRepo.List()
}

// DeleteCode удаляет код доступа
func (s *AccessCodeService) DeleteCode(id uint) error {
	if err := s.accessCodeRepo.Delete(id); err != nil {
		return err
	}
	log.Printf("[AccessCodeService] Удален код доступа #%d", id)
	return nil
}

// generateAccessCode возвращает короткий случайный код в верхнем регистре.
// Первый блок UUID дает 8 hex-символов — достаточно, коды одноразовые.
func generateAccessCode() string {
	id := uuid.New().String()
	return fmt.Sprintf("SAFE-%s", strings.ToUpper(id[:8]))
}
