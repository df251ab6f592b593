package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/safety-training-api/internal/handler/dto"
	"github.com/yourusername/safety-training-api/internal/service"
)

// AuthHandler обрабатывает вход администраторов
type AuthHandler struct {
	authService *service.AdminAuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest представляет запрос на вход администратора
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login проверяет учетные данные и выдает токен
// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, admin, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &dto.LoginResponse{
		Success:  true,
		Token:    token,
		Username: admin.Username,
	})
}
