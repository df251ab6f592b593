package repository

import (
	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// WorkerRepository определяет методы для работы с работниками
type WorkerRepository interface {
	// Create вставляет работника; нарушение уникальности employee_number
	// транслируется в apperrors.ErrConflict (ограничение БД — источник истины,
	// а не предварительная проверка).
	Create(tx *gorm.DB, worker *entity.Worker) error
	GetByID(id uint) (*entity.Worker, error)
	GetByEmployeeNumber(employeeNumber string) (*entity.Worker, error)
	SetRetakeAllowed(workerID uint, allowed bool) error

	// LockByID читает работника с блокировкой строки (SELECT ... FOR UPDATE)
	// для гейтинга попыток экзамена внутри транзакции.
	LockByID(tx *gorm.DB, id uint) (*entity.Worker, error)
	// ResetRetake сбрасывает can_retake_exam внутри транзакции
	ResetRetake(tx *gorm.DB, workerID uint) error

	// Delete каскадно удаляет результаты экзаменов и прогресс просмотра,
	// затем самого работника — одной транзакцией, без осиротевших строк.
	Delete(workerID uint) error
}
