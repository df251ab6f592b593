package service

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// ExamService проводит экзамен: выдает случайный набор вопросов,
// принимает ответы, считает результат и следит за правилом
// «одна попытка, пересдача только по разрешению администратора»
type ExamService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	workerRepo   repository.WorkerRepository
	training     *TrainingService
	db           *gorm.DB
}

// NewExamService создает новый сервис экзаменов
func NewExamService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	workerRepo repository.WorkerRepository,
	training *TrainingService,
	db *gorm.DB,
) *ExamService {
	return &ExamService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		workerRepo:   workerRepo,
		training:     training,
		db:           db,
	}
}

// AnswerValue — булев ответ работника на вопрос. Клиенты шлют его
// и как true/false, и как 0/1 — принимаются обе формы
type AnswerValue bool

// UnmarshalJSON разбирает true/false и 0/1
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*v = true
	case "false", "0":
		*v = false
	default:
		return fmt.Errorf("answer must be true/false or 0/1, got %s", data)
	}
	return nil
}

// SubmittedAnswer представляет один ответ работника
type SubmittedAnswer struct {
	QuestionID uint        `json:"question_id" binding:"required"`
	Answer     AnswerValue `json:"answer"`
}

// StartExam возвращает случайный набор вопросов для работника.
// Правильные ответы наружу не уходят (json:"-" на поле ключа).
// Работник без полного просмотра видео к экзамену не допускается.
func (s *ExamService) StartExam(workerID uint) ([]entity.Question, error) {
	if _, err := s.workerRepo.GetByID(workerID); err != nil {
		return nil, err
	}

	eligible, err := s.training.IsEligibleForExam(workerID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, apperrors.ErrForbidden
	}

	// Банк меньше размера экзамена — отдаем сколько есть,
	// вплоть до пустого набора
	return s.questionRepo.GetRandom(entity.ExamQuestionCount)
}

// Submit принимает ответы работника, считает результат и сохраняет его.
// Гейтинг попыток выполняется под блокировкой строки работника
// (SELECT ... FOR UPDATE): из двух конкурентных отправок одна гарантированно
// увидит результат другой. Разрешение на пересдачу гасится той же транзакцией.
func (s *ExamService) Submit(workerID uint, answers []SubmittedAnswer) (*entity.ExamResult, error) {
	if len(answers) == 0 {
		return nil, apperrors.ErrValidation
	}

	var result *entity.ExamResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.submitInTx(tx, workerID, answers)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ExamService] Работник #%d сдал экзамен: %d/%d (%.1f%%), passed=%v",
		workerID, result.Score, entity.ExamQuestionCount, result.Percentage, result.Passed)
	return result, nil
}

// submitInTx выполняет гейтинг и запись результата внутри транзакции
func (s *ExamService) submitInTx(tx *gorm.DB, workerID uint, answers []SubmittedAnswer) (*entity.ExamResult, error) {
	worker, err := s.workerRepo.LockByID(tx, workerID)
	if err != nil {
		return nil, err
	}

	hasAttempt, err := s.resultRepo.ExistsForWorker(tx, workerID)
	if err != nil {
		return nil, err
	}
	if hasAttempt && !worker.CanRetakeExam {
		return nil, apperrors.ErrForbidden
	}

	score, err := s.scoreAnswers(answers)
	if err != nil {
		return nil, err
	}

	result := entity.NewExamResult(workerID, score)
	if err := s.resultRepo.Save(tx, result); err != nil {
		return nil, err
	}

	// Принятая попытка гасит разрешение на пересдачу
	if worker.CanRetakeExam {
		if err := s.workerRepo.ResetRetake(tx, workerID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// scoreAnswers сверяет ответы с ключом: балл за каждый присланный
// ответ, совпавший с ключом. Ответ на несуществующий вопрос не роняет
// попытку — он просто не дает балла.
func (s *ExamService) scoreAnswers(answers []SubmittedAnswer) (int, error) {
	score := 0
	for _, a := range answers {
		question, err := s.questionRepo.GetByID(a.QuestionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return 0, err
		}
		if question.IsCorrect(bool(a.Answer)) {
			score++
		}
	}
	return score, nil
}

// ListWorkerResults возвращает все попытки работника, новые первыми
func (s *ExamService) ListWorkerResults(workerID uint) ([]entity.ExamResult, error) {
	if _, err := s.workerRepo.GetByID(workerID); err != nil {
		return nil, err
	}
	return s.resultRepo.ListByWorker(workerID)
}
