package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/safety-training-api/internal/domain/repository"
)

// RateLimitConfig содержит настройки rate limiting
type RateLimitConfig struct {
	// MaxRequests — максимальное количество запросов за Window
	MaxRequests int
	// Window — временное окно для подсчёта запросов
	Window time.Duration
	// KeyPrefix — префикс для ключей в Redis
	KeyPrefix string
}

// CodeVerifyRateLimitConfig — лимит для проверки кодов доступа
// (защита от перебора кодов)
func CodeVerifyRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 10,
		Window:      1 * time.Minute,
		KeyPrefix:   "rl:verify",
	}
}

// RegisterRateLimitConfig — лимит для регистрации работников
// (защита от перебора кодов через форму регистрации)
func RegisterRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 10,
		Window:      1 * time.Minute,
		KeyPrefix:   "rl:register",
	}
}

// AdminLoginRateLimitConfig — строгий лимит для входа администратора
// (защита от brute-force)
func AdminLoginRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 5,
		Window:      1 * time.Minute,
		KeyPrefix:   "rl:admin:login",
	}
}

// RateLimiter создаёт middleware для rate limiting поверх кеша
type RateLimiter struct {
	cache repository.CacheRepository
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(cache repository.CacheRepository) *RateLimiter {
	return &RateLimiter{cache: cache}
}

// Limit возвращает Gin middleware с заданной конфигурацией.
// Ключ формируется из IP + endpoint path. При недоступном Redis
// запросы пропускаются (fail-open).
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		key := fmt.Sprintf("%s:%s:%s", cfg.KeyPrefix, clientIP, path)

		count, err := rl.cache.Increment(key)
		if err != nil {
			log.Printf("[RateLimiter] Redis error for key %s: %v. Allowing request (fail-open).", key, err)
			c.Next()
			return
		}

		// Первый запрос в окне — устанавливаем TTL
		if count == 1 {
			if err := rl.cache.Expire(key, cfg.Window); err != nil {
				log.Printf("[RateLimiter] Failed to set TTL for key %s: %v", key, err)
			}
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		ttl, err := rl.cache.TTL(key)
		retryAfter := int(ttl.Seconds())
		if err != nil || retryAfter < 0 {
			retryAfter = int(cfg.Window.Seconds())
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", retryAfter))

		if int(count) > cfg.MaxRequests {
			log.Printf("[RateLimiter] Rate limit exceeded for IP=%s path=%s. Count=%d, Limit=%d",
				clientIP, path, count, cfg.MaxRequests)

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "Too many requests. Please try again later.",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
