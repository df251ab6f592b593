package entity

import "time"

// Константы подсчёта результата экзамена.
// Процент всегда считается от 20 вопросов, даже если фактически было
// выдано меньше (политика продукта, не менять без согласования).
const (
	ExamQuestionCount    = 20
	PassThresholdPercent = 70.0
)

// ExamResult представляет итог одной попытки сдачи экзамена.
// Записи только добавляются; при пересдаче у работника появляется новая строка.
type ExamResult struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkerID   uint      `gorm:"not null;index" json:"worker_id"`
	Score      int       `gorm:"not null" json:"score"`
	Percentage float64   `gorm:"not null" json:"percentage"`
	Passed     bool      `gorm:"not null" json:"passed"`
	ExamDate   time.Time `gorm:"autoCreateTime" json:"exam_date"`
}

// TableName определяет имя таблицы для GORM
func (ExamResult) TableName() string {
	return "exam_results"
}

// NewExamResult подсчитывает процент и вердикт по набранным баллам
func NewExamResult(workerID uint, score int) *ExamResult {
	percentage := float64(score) / float64(ExamQuestionCount) * 100
	return &ExamResult{
		WorkerID:   workerID,
		Score:      score,
		Percentage: percentage,
		Passed:     percentage >= PassThresholdPercent,
	}
}
