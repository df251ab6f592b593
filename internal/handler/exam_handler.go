package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/safety-training-api/internal/handler/dto"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
	"github.com/yourusername/safety-training-api/internal/service"
)

// ExamHandler обрабатывает выдачу вопросов и прием ответов экзамена
type ExamHandler struct {
	examService *service.ExamService
}

// NewExamHandler создает новый обработчик экзамена
func NewExamHandler(examService *service.ExamService) *ExamHandler {
	return &ExamHandler{
		examService: examService,
	}
}

// GetRandomQuestions выдает случайный набор вопросов для допущенного работника.
// Ключи ответов в выдачу не попадают.
// GET /api/questions/random/:worker_id
func (h *ExamHandler) GetRandomQuestions(c *gin.Context) {
	workerID := c.MustGet("workerID").(uint)

	questions, err := h.examService.StartExam(workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			respondMessage(c, http.StatusBadRequest, "You must watch all training videos before taking the exam")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": questions,
	})
}

// SubmitExamRequest представляет ответы работника на экзамен
type SubmitExamRequest struct {
	WorkerID uint                      `json:"worker_id" binding:"required"`
	Answers  []service.SubmittedAnswer `json:"answers" binding:"required,min=1"`
}

// SubmitExam принимает ответы, подсчитывает и сохраняет результат
// POST /api/exam/submit
func (h *ExamHandler) SubmitExam(c *gin.Context) {
	var req SubmitExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	result, err := h.examService.Submit(req.WorkerID, req.Answers)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			respondMessage(c, http.StatusBadRequest, "Exam already completed. Contact the administrator for a retake")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExamResultResponse(result))
}

// GetWorkerResults возвращает все попытки работника
// GET /api/exam/results/:worker_id
func (h *ExamHandler) GetWorkerResults(c *gin.Context) {
	workerID := c.MustGet("workerID").(uint)

	results, err := h.examService.ListWorkerResults(workerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}
