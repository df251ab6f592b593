package service

import (
	"log"
	"strings"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// QuestionService предоставляет методы для управления банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
	}
}

// CreateQuestion добавляет вопрос в банк
func (s *QuestionService) CreateQuestion(text string, isCorrectTrue bool) (*entity.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.ErrValidation
	}

	question := &entity.Question{
		QuestionText:  text,
		IsCorrectTrue: isCorrectTrue,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	log.Printf("[QuestionService] Создан вопрос #%d", question.ID)
	return question, nil
}

// ListQuestions возвращает все вопросы банка (с ключами — только для админки)
func (s *QuestionService) ListQuestions() ([]entity.Question, error) {
	return s.questionRepo.List()
}

// UpdateQuestion обновляет текст и ключ вопроса
func (s *QuestionService) UpdateQuestion(id uint, text string, isCorrectTrue bool) (*entity.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.ErrValidation
	}

	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	question.QuestionText = text
	question.IsCorrectTrue = isCorrectTrue
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion удаляет вопрос из банка. Сохранённые результаты
// экзаменов при этом не меняются.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		return err
	}
	log.Printf("[QuestionService] Удален вопрос #%d", id)
	return nil
}
