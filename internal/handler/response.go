package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// respondError транслирует доменные ошибки в HTTP-статусы.
// Внутренние детали наружу не уходят: на неизвестную ошибку клиент
// получает общий 500, подробности остаются в логе.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Not found")
	case errors.Is(err, apperrors.ErrValidation):
		respondMessage(c, http.StatusBadRequest, "Invalid request data")
	case errors.Is(err, apperrors.ErrConflict):
		respondMessage(c, http.StatusBadRequest, "Already exists")
	case errors.Is(err, apperrors.ErrForbidden):
		respondMessage(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondMessage(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Printf("[API] Внутренняя ошибка: %v", err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

// respondMessage отправляет единообразный ответ {success, message}
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": status < http.StatusBadRequest,
		"message": message,
	})
}
