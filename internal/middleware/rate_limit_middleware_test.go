package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockCacheRepoForRateLimiter реализует repository.CacheRepository
type MockCacheRepoForRateLimiter struct {
	mock.Mock
}

func (m *MockCacheRepoForRateLimiter) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepoForRateLimiter) Increment(key string) (int64, error) {
	args := m.Called(key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepoForRateLimiter) Expire(key string, expiration time.Duration) error {
	args := m.Called(key, expiration)
	return args.Error(0)
}

func (m *MockCacheRepoForRateLimiter) TTL(key string) (time.Duration, error) {
	args := m.Called(key)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockCacheRepoForRateLimiter) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepoForRateLimiter) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

// newRateLimitedRouter строит роутер с лимитируемым endpoint
func newRateLimitedRouter(cache *MockCacheRepoForRateLimiter, cfg RateLimitConfig) *gin.Engine {
	rl := NewRateLimiter(cache)
	r := gin.New()
	r.POST("/api/workers/register", rl.Limit(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	// Arrange
	mockCache := new(MockCacheRepoForRateLimiter)
	mockCache.On("Increment", mock.AnythingOfType("string")).Return(int64(1), nil)
	mockCache.On("Expire", mock.AnythingOfType("string"), 1*time.Minute).Return(nil)
	mockCache.On("TTL", mock.AnythingOfType("string")).Return(55*time.Second, nil)

	router := newRateLimitedRouter(mockCache, RegisterRateLimitConfig())

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/workers/register", nil)
	router.ServeHTTP(w, req)

	// Assert: первый запрос в окне проходит и получает TTL
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	mockCache.AssertExpectations(t)
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	// Arrange
	cfg := RegisterRateLimitConfig()
	mockCache := new(MockCacheRepoForRateLimiter)
	mockCache.On("Increment", mock.AnythingOfType("string")).Return(int64(cfg.MaxRequests+1), nil)
	mockCache.On("TTL", mock.AnythingOfType("string")).Return(30*time.Second, nil)

	router := newRateLimitedRouter(mockCache, cfg)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/workers/register", nil)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	mockCache.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything)
}

func TestRateLimiter_FailOpenOnCacheError(t *testing.T) {
	// Arrange: Redis недоступен — запросы пропускаются
	mockCache := new(MockCacheRepoForRateLimiter)
	mockCache.On("Increment", mock.AnythingOfType("string")).Return(int64(0), errors.New("connection refused"))

	router := newRateLimitedRouter(mockCache, RegisterRateLimitConfig())

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/workers/register", nil)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	mockCache.AssertNotCalled(t, "TTL", mock.Anything)
}
