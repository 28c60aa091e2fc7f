package draftstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:draft:"

// DefaultTTL время жизни снапшота черновика
// Брошенный черновик не представляет ценности дольше суток
const DefaultTTL = 24 * time.Hour

// RedisStore хранит снапшоты черновиков в Redis с TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает новый экземпляр Redis-хранилища черновиков
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Get возвращает снапшот по ключу сессии; пустая строка — снапшота нет
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("draftstore: redis get failed: %w", err)
	}
	return val, nil
}

// Set сохраняет снапшот, продлевая TTL
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("draftstore: redis set failed: %w", err)
	}
	return nil
}

// Clear удаляет снапшот
func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("draftstore: redis del failed: %w", err)
	}
	return nil
}
