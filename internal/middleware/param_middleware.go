package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("Invalid %s", paramName),
			})
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
