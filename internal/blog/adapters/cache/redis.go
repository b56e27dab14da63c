// Package cache содержит Redis-реализацию кэша профилей.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goblognest/internal/blog/ports/cache"
	"goblognest/pkg/logger"
)

const (
	errCtxConnectingRedis = "connecting to redis"
	errCtxGettingKey      = "error getting key"
	errCtxSettingKey      = "error setting key"
	errCtxDeletingKey     = "error deleting key"
)

// RedisCache реализует cache.Cache поверх Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache подключается к Redis и проверяет соединение.
func NewRedisCache(ctx context.Context, addr, password string, db int) (cache.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxConnectingRedis, err)
	}

	logger.Log(ctx).Info(ctx, "connected to redis", zap.String("addr", addr))
	return &RedisCache{client: client}, nil
}

// Get возвращает значение ключа или cache.ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", cache.ErrCacheMiss
		}
		return "", fmt.Errorf("%s: %w", errCtxGettingKey, err)
	}
	return value, nil
}

// Set сохраняет значение с временем жизни.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", errCtxSettingKey, err)
	}
	return nil
}

// Delete удаляет ключ. Отсутствие ключа не считается ошибкой.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingKey, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
