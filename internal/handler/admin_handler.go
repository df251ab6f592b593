package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/safety-training-api/internal/domain/repository"
	"github.com/yourusername/safety-training-api/internal/service"
)

// AdminHandler обрабатывает запросы панели администратора: коды доступа,
// банк вопросов, каталог видео, отчёты и управление работниками
type AdminHandler struct {
	accessCodeService *service.AccessCodeService
	questionService   *service.QuestionService
	videoService      *service.VideoService
	workerService     *service.WorkerService
	resultService     *service.ResultService
}

// NewAdminHandler создает новый обработчик панели администратора
func NewAdminHandler(
	accessCodeService *service.AccessCodeService,
	questionService *service.QuestionService,
	videoService *service.VideoService,
	workerService *service.WorkerService,
	resultService *service.ResultService,
) *AdminHandler {
	return &AdminHandler{
		accessCodeService: accessCodeService,
		questionService:   questionService,
		videoService:      videoService,
		workerService:     workerService,
		resultService:     resultService,
	}
}

// ============================================================================
// Коды доступа
// ============================================================================

// CreateAccessCodeRequest представляет запрос на выпуск кода доступа
type CreateAccessCodeRequest struct {
	Code           string `json:"code" binding:"omitempty,max=64"`
	FullName       string `json:"full_name" binding:"required,min=2,max=100"`
	EmployeeNumber string `json:"employee_number" binding:"required,min=1,max=50"`
	JobTitle       string `json:"job_title" binding:"omitempty,max=100"`
}

// CreateAccessCode выпускает код доступа для работника
// POST /api/admin/access-codes
func (h *AdminHandler) CreateAccessCode(c *gin.Context) {
	var req CreateAccessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	code, err := h.accessCodeService.CreateCode(req.Code, req.FullName, req.EmployeeNumber, req.JobTitle)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"code":    code,
	})
}

// ListAccessCodes возвращает все коды доступа, включая погашенные
// GET /api/admin/access-codes
func (h *AdminHandler) ListAccessCodes(c *gin.Context) {
	codes, err := h.accessCodeService.ListCodes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"codes":   codes,
	})
}

// DeleteAccessCode удаляет код доступа
// DELETE /api/admin/access-codes/:id
func (h *AdminHandler) DeleteAccessCode(c *gin.Context) {
	codeID := c.MustGet("codeID").(uint)

	if err := h.accessCodeService.DeleteCode(codeID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Access code deleted")
}

// ============================================================================
// Банк вопросов
// ============================================================================

// QuestionRequest представляет запрос на создание или обновление вопроса
type QuestionRequest struct {
	QuestionText  string `json:"question_text" binding:"required,min=3,max=500"`
	IsCorrectTrue *bool  `json:"is_correct_true" binding:"required"`
}

// CreateQuestion добавляет вопрос в банк
// POST /api/admin/questions
func (h *AdminHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	question, err := h.questionService.CreateQuestion(req.QuestionText, *req.IsCorrectTrue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"question": adminQuestionView(question.ID, question.QuestionText, question.IsCorrectTrue),
	})
}

// ListQuestions возвращает банк вопросов вместе с ключами ответов
// GET /api/admin/questions
func (h *AdminHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.ListQuestions()
	if err != nil {
		respondError(c, err)
		return
	}

	// Ключ ответа скрыт от клиента на уровне сущности,
	// для админки отдаем его явно
	views := make([]gin.H, 0, len(questions))
	for _, q := range questions {
		views = append(views, adminQuestionView(q.ID, q.QuestionText, q.IsCorrectTrue))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": views,
	})
}

// UpdateQuestion обновляет текст и ключ вопроса
// PUT /api/admin/questions/:id
func (h *AdminHandler) UpdateQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	question, err := h.questionService.UpdateQuestion(questionID, req.QuestionText, *req.IsCorrectTrue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": adminQuestionView(question.ID, question.QuestionText, question.IsCorrectTrue),
	})
}

// DeleteQuestion удаляет вопрос из банка
// DELETE /api/admin/questions/:id
func (h *AdminHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Question deleted")
}

func adminQuestionView(id uint, text string, isCorrectTrue bool) gin.H {
	return gin.H{
		"id":              id,
		"question_text":   text,
		"is_correct_true": isCorrectTrue,
	}
}

// ============================================================================
// Каталог видео
// ============================================================================

// UploadVideo принимает multipart-загрузку видео в каталог
// POST /api/admin/videos
func (h *AdminHandler) UploadVideo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Video file is required")
		return
	}

	sectionOrder, _ := strconv.Atoi(c.PostForm("section_order"))
	videoOrder, _ := strconv.Atoi(c.PostForm("video_order"))

	video, err := h.videoService.UploadVideo(
		file,
		c.PostForm("section_name"),
		c.PostForm("video_title"),
		sectionOrder,
		videoOrder,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"video":   video,
	})
}

// DeleteVideo удаляет видео из каталога вместе с файлом
// DELETE /api/admin/videos/:id
func (h *AdminHandler) DeleteVideo(c *gin.Context) {
	videoID := c.MustGet("videoID").(uint)

	if err := h.videoService.DeleteVideo(videoID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Video deleted")
}

// ============================================================================
// Работники и отчёты
// ============================================================================

// AllowRetake выдает работнику одноразовое разрешение на пересдачу
// PUT /api/admin/workers/:id/allow-retake
func (h *AdminHandler) AllowRetake(c *gin.Context) {
	workerID := c.MustGet("workerID").(uint)

	if err := h.workerService.AllowRetake(workerID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Retake allowed")
}

// DeleteWorker каскадно удаляет работника со всеми связанными данными
// DELETE /api/admin/workers/:id
func (h *AdminHandler) DeleteWorker(c *gin.Context) {
	workerID := c.MustGet("workerID").(uint)

	if err := h.workerService.DeleteWorker(workerID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Worker deleted")
}

// ListResults возвращает все результаты экзаменов со сводной статистикой
// GET /api/admin/results
func (h *AdminHandler) ListResults(c *gin.Context) {
	results, err := h.resultService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.resultService.CalculateStatistics()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"results":    results,
		"statistics": stats,
	})
}

// ExportResults экспортирует результаты экзаменов в CSV или Excel формате
// GET /api/admin/results/export?format=csv|xlsx
func (h *AdminHandler) ExportResults(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")

	results, err := h.resultService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("exam_results_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "csv":
		h.exportCSV(c, results, filename)
	default:
		h.exportXLSX(c, results, filename)
	}
}

// exportCSV экспортирует результаты в CSV с правильным экранированием спецсимволов
func (h *AdminHandler) exportCSV(c *gin.Context, results []repository.WorkerResult, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// Заголовки
	writer.Write([]string{"ФИО", "Табельный номер", "Баллы", "Процент", "Сдал", "Пересдача разрешена", "Дата экзамена"})

	// Данные
	for _, r := range results {
		passed := "Нет"
		if r.Passed {
			passed = "Да"
		}
		retake := "Нет"
		if r.CanRetakeExam {
			retake = "Да"
		}

		writer.Write([]string{
			sanitizeForExcel(r.FullName),
			sanitizeForExcel(r.EmployeeNumber),
			strconv.Itoa(r.Score),
			fmt.Sprintf("%.1f", r.Percentage),
			passed,
			retake,
			r.ExamDate.Format("2006-01-02 15:04"),
		})
	}
}

// exportXLSX экспортирует результаты в Excel с использованием StreamWriter
func (h *AdminHandler) exportXLSX(c *gin.Context, results []repository.WorkerResult, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Результаты"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[AdminHandler] Ошибка создания StreamWriter: %v", err)
		respondMessage(c, http.StatusInternalServerError, "Failed to create Excel file")
		return
	}

	// Заголовки
	headers := []interface{}{"ФИО", "Табельный номер", "Баллы", "Процент", "Сдал", "Пересдача разрешена", "Дата экзамена"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[AdminHandler] Ошибка записи заголовков: %v", err)
	}

	// Данные
	for i, r := range results {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		passed := "Нет"
		if r.Passed {
			passed = "Да"
		}
		retake := "Нет"
		if r.CanRetakeExam {
			retake = "Да"
		}

		row := []interface{}{
			sanitizeForExcel(r.FullName),
			sanitizeForExcel(r.EmployeeNumber),
			r.Score,
			r.Percentage,
			passed,
			retake,
			r.ExamDate.Format("2006-01-02 15:04"),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[AdminHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[AdminHandler] Ошибка при Flush: %v", err)
	}

	// Записываем в response
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[AdminHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
