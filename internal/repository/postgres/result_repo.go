package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов экзаменов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Save добавляет строку результата. Только вставка, обновлений не бывает.
func (r *ResultRepo) Save(tx *gorm.DB, result *entity.ExamResult) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(result).Error
}

// ExistsForWorker сообщает, есть ли у работника хотя бы одна попытка.
// Вызывается внутри транзакции отправки экзамена под блокировкой строки
// работника, чтобы две конкурентные отправки не прошли гейт обе.
func (r *ResultRepo) ExistsForWorker(tx *gorm.DB, workerID uint) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	var count int64
	err := tx.Model(&entity.ExamResult{}).
		Where("worker_id = ?", workerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByWorker возвращает все попытки работника, новые первыми
func (r *ResultRepo) ListByWorker(workerID uint) ([]entity.ExamResult, error) {
	var results []entity.ExamResult
	err := r.db.Where("worker_id = ?", workerID).
		Order("exam_date DESC").
		Find(&results).Error
	return results, err
}

// ListWithWorkers возвращает все результаты вместе с данными работников
// для административного отчёта и экспорта, новые первыми
func (r *ResultRepo) ListWithWorkers() ([]repository.WorkerResult, error) {
	var rows []repository.WorkerResult
	err := r.db.Table("exam_results er").
		Select(`er.id, er.worker_id, w.full_name, w.employee_number,
			er.score, er.percentage, er.passed, er.exam_date, w.can_retake_exam`).
		Joins("JOIN workers w ON er.worker_id = w.id").
		Order("er.exam_date DESC").
		Scan(&rows).Error
	return rows, err
}
