package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет вопросов одной транзакцией
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List возвращает все вопросы, новые первыми
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("created_at DESC").Find(&questions).Error
	return questions, err
}

// Update обновляет вопрос
func (r *QuestionRepo) Update(question *entity.Question) error {
	return r.db.Save(question).Error
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Delete(&entity.Question{}, id).Error
}

// GetRandom возвращает не более limit случайных вопросов без повторов.
// Банк вопросов небольшой, ORDER BY RANDOM() здесь достаточно;
// если вопросов меньше limit — вернутся все имеющиеся.
func (r *QuestionRepo) GetRandom(limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("RANDOM()").Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
