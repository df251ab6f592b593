package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// CacheRepo реализует repository.CacheRepository
type CacheRepo struct {
	client redis.UniversalClient
	ctx    context.Context
}

// NewCacheRepo создает новый репозиторий кеша и возвращает ошибку при проблемах
func NewCacheRepo(client redis.UniversalClient) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("Redis client cannot be nil for CacheRepo")
	}
	return &CacheRepo{
		client: client,
		ctx:    context.Background(),
	}, nil
}

// Delete удаляет значение из кеша
func (r *CacheRepo) Delete(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Increment увеличивает значение на 1
func (r *CacheRepo) Increment(key string) (int64, error) {
	return r.client.Incr(r.ctx, key).Result()
}

// Expire устанавливает время жизни ключа
func (r *CacheRepo) Expire(key string, expiration time.Duration) error {
	return r.client.Expire(r.ctx, key, expiration).Err()
}

// TTL возвращает оставшееся время жизни ключа
func (r *CacheRepo) TTL(key string) (time.Duration, error) {
	return r.client.TTL(r.ctx, key).Result()
}

// SetJSON сохраняет структуру JSON в кеше
func (r *CacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, key, data, expiration).Err()
}

// GetJSON получает структуру JSON из кеша
func (r *CacheRepo) GetJSON(key string, dest interface{}) error {
	data, err := r.client.Get(r.ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}
