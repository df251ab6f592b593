package entity

import "time"

// Question представляет вопрос экзамена с ответом "верно/неверно"
type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	QuestionText  string    `gorm:"size:500;not null" json:"question_text"`
	IsCorrectTrue bool      `gorm:"not null" json:"-"` // Ключ ответа, скрыт от клиента
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет, совпадает ли присланный ответ с ключом
func (q *Question) IsCorrect(answer bool) bool {
	return answer == q.IsCorrectTrue
}
