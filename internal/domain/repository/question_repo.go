package repository

import (
	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с банком вопросов
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	List() ([]entity.Question, error)
	Update(question *entity.Question) error
	Delete(id uint) error

	// GetRandom возвращает не более limit случайных вопросов без повторов.
	// Если вопросов меньше limit — возвращаются все имеющиеся.
	GetRandom(limit int) ([]entity.Question, error)
}
