// Package cache определяет контракт кэша для пути чтения профилей.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss возвращается Get, когда ключ отсутствует.
var ErrCacheMiss = errors.New("cache miss")

// Cache определяет минимальный интерфейс кэша ключ-значение.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Close() error
}
