package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/safety-training-api/pkg/auth"
)

// AuthMiddleware обеспечивает аутентификацию для маршрутов администратора
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireAdmin проверяет токен администратора из заголовка Authorization
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header is required",
			})
			return
		}

		// Формат заголовка: Bearer {token}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := m.jwtService.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminUsername", claims.Username)
		c.Next()
	}
}
