package repository

import (
	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// AdminRepository определяет методы для работы с администраторами
type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByUsername(username string) (*entity.Admin, error)
	Count() (int64, error)
}
