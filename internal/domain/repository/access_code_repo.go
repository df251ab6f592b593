package repository

import (
	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// AccessCodeRepository определяет методы для работы с кодами доступа
type AccessCodeRepository interface {
	Create(code *entity.AccessCode) error
	GetByID(id uint) (*entity.AccessCode, error)
	// GetUnusedByCode возвращает код только если он ещё не погашен
	GetUnusedByCode(code string) (*entity.AccessCode, error)
	List() ([]entity.AccessCode, error)
	Delete(id uint) error

	// Redeem атомарно гасит код: одиночный условный UPDATE по
	// (code, employee_number, used=false). Отдельные чтение и запись
	// недопустимы — два конкурентных запроса смогли бы погасить код дважды.
	Redeem(tx *gorm.DB, code, employeeNumber string) (*entity.AccessCode, error)
}
