package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// AdminRepo реализует repository.AdminRepository
type AdminRepo struct {
	db *gorm.DB
}

// NewAdminRepo создает новый репозиторий администраторов
func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// Create создает нового администратора
func (r *AdminRepo) Create(admin *entity.Admin) error {
	if err := r.db.Create(admin).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByUsername возвращает администратора по имени пользователя
func (r *AdminRepo) GetByUsername(username string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Count возвращает количество администраторов
func (r *AdminRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Admin{}).Count(&count).Error
	return count, err
}
