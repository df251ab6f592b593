package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// WorkerResult представляет строку отчёта: результат экзамена вместе
// с данными работника (JOIN exam_results × workers).
type WorkerResult struct {
	ID             uint      `json:"id"`
	WorkerID       uint      `json:"worker_id"`
	FullName       string    `json:"full_name"`
	EmployeeNumber string    `json:"employee_number"`
	Score          int       `json:"score"`
	Percentage     float64   `json:"percentage"`
	Passed         bool      `json:"passed"`
	ExamDate       time.Time `json:"exam_date"`
	CanRetakeExam  bool      `json:"can_retake_exam"`
}

// ResultRepository определяет методы для работы с результатами экзаменов
type ResultRepository interface {
	// Save добавляет строку результата (append-only, обновлений не бывает)
	Save(tx *gorm.DB, result *entity.ExamResult) error
	// ExistsForWorker сообщает, есть ли у работника хотя бы одна попытка.
	// Гейтинг смотрит на существование любой строки, не только последней.
	ExistsForWorker(tx *gorm.DB, workerID uint) (bool, error)
	ListByWorker(workerID uint) ([]entity.ExamResult, error)
	// ListWithWorkers возвращает все результаты с данными работников,
	// новые первыми — для административного отчёта и экспорта.
	ListWithWorkers() ([]WorkerResult, error)
}
