package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/safety-training-api/internal/handler/dto"
	"github.com/yourusername/safety-training-api/internal/service"
)

// WorkerHandler обрабатывает запросы проверки кода и регистрации работников
type WorkerHandler struct {
	workerService     *service.WorkerService
	accessCodeService *service.AccessCodeService
}

// NewWorkerHandler создает новый обработчик работников
func NewWorkerHandler(workerService *service.WorkerService, accessCodeService *service.AccessCodeService) *WorkerHandler {
	return &WorkerHandler{
		workerService:     workerService,
		accessCodeService: accessCodeService,
	}
}

// VerifyCodeRequest представляет запрос на проверку кода доступа
type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyCode проверяет код доступа без гашения
// POST /api/verify-code
func (h *WorkerHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Code is required")
		return
	}

	code, err := h.accessCodeService.VerifyCode(req.Code)
	if err != nil {
		// Погашенный и несуществующий код неотличимы
		respondMessage(c, http.StatusNotFound, "Invalid or already used code")
		return
	}

	c.JSON(http.StatusOK, dto.NewVerifyCodeResponse(code))
}

// RegisterRequest представляет запрос на регистрацию работника
type RegisterRequest struct {
	AccessCode     string `json:"access_code" binding:"required"`
	FullName       string `json:"full_name" binding:"required,min=2,max=100"`
	EmployeeNumber string `json:"employee_number" binding:"required,min=1,max=50"`
}

// Register регистрирует работника, атомарно гася код доступа
// POST /api/workers/register
func (h *WorkerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	worker, err := h.workerService.Register(req.AccessCode, req.FullName, req.EmployeeNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRegisterResponse(worker))
}

// GetByEmployeeNumber возвращает работника по табельному номеру
// GET /api/workers/:employee_number
func (h *WorkerHandler) GetByEmployeeNumber(c *gin.Context) {
	employeeNumber := c.Param("employee_number")

	worker, err := h.workerService.GetByEmployeeNumber(employeeNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWorkerResponse(worker))
}
