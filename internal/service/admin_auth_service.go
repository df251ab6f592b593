package service

import (
	"errors"
	"log"
	"strings"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
	"github.com/yourusername/safety-training-api/pkg/auth"
)

// AdminAuthService предоставляет методы аутентификации администраторов
type AdminAuthService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
}

// NewAdminAuthService создает новый сервис аутентификации
func NewAdminAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService) *AdminAuthService {
	return &AdminAuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login проверяет учетные данные и выдает токен. Несуществующий логин
// и неверный пароль дают одинаковую ошибку — нечего перебирать.
func (s *AdminAuthService) Login(username, password string) (string, *entity.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, apperrors.ErrValidation
	}

	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, err
	}

	if !admin.CheckPassword(password) {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return "", nil, err
	}

	log.Printf("[AdminAuthService] Администратор %s вошел в систему", admin.Username)
	return token, admin, nil
}

// EnsureDefaultAdmin создает администратора по умолчанию, если в системе
// нет ни одного. Пароль хешируется bcrypt-хуком сущности.
func (s *AdminAuthService) EnsureDefaultAdmin(username, password string) error {
	count, err := s.adminRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if username == "" || password == "" {
		return nil
	}

	admin := &entity.Admin{
		Username: username,
		Password: password,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return err
	}

	log.Printf("[AdminAuthService] Создан администратор по умолчанию: %s", username)
	return nil
}
