package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// WorkerRepo реализует repository.WorkerRepository
type WorkerRepo struct {
	db *gorm.DB
}

// NewWorkerRepo создает новый репозиторий работников
func NewWorkerRepo(db *gorm.DB) *WorkerRepo {
	return &WorkerRepo{db: db}
}

// Create вставляет работника. Уникальный индекс по employee_number —
// источник истины: нарушение транслируется в ErrConflict, предварительная
// проверка на дубликат не защищает от конкурентной вставки.
func (r *WorkerRepo) Create(tx *gorm.DB, worker *entity.Worker) error {
	if tx == nil {
		tx = r.db
	}
	if err := tx.Create(worker).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID возвращает работника по ID
func (r *WorkerRepo) GetByID(id uint) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.First(&worker, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// GetByEmployeeNumber возвращает работника по табельному номеру
func (r *WorkerRepo) GetByEmployeeNumber(employeeNumber string) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.Where("employee_number = ?", employeeNumber).First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// SetRetakeAllowed выставляет флаг допуска к пересдаче. Идемпотентна.
func (r *WorkerRepo) SetRetakeAllowed(workerID uint, allowed bool) error {
	result := r.db.Model(&entity.Worker{}).
		Where("id = ?", workerID).
		Update("can_retake_exam", allowed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockByID читает работника с блокировкой строки (SELECT ... FOR UPDATE).
// Конкурентные отправки экзамена одного работника сериализуются на этой
// блокировке, что закрывает гонку "обе попытки прошли гейт".
func (r *WorkerRepo) LockByID(tx *gorm.DB, id uint) (*entity.Worker, error) {
	var worker entity.Worker
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&worker, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// ResetRetake безусловно сбрасывает can_retake_exam внутри транзакции
func (r *WorkerRepo) ResetRetake(tx *gorm.DB, workerID uint) error {
	return tx.Model(&entity.Worker{}).
		Where("id = ?", workerID).
		Update("can_retake_exam", false).Error
}

// Delete каскадно удаляет работника: сначала результаты экзаменов и
// прогресс просмотра, затем самого работника. Одна транзакция, осиротевших
// строк не остаётся.
func (r *WorkerRepo) Delete(workerID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", workerID).Delete(&entity.ExamResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("worker_id = ?", workerID).Delete(&entity.VideoProgress{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Worker{}, workerID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
