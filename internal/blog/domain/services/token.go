// Package services содержит доменные типы и ошибки для внешних сервисов
// (хэширование паролей, выпуск токенов).
package services

import (
	"errors"
	"time"

	"goblognest/internal/blog/domain/entities"
)

// Ошибки работы с токенами.
var (
	ErrTokenGenerationFailed = errors.New("failed to generate token")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token has expired")
)

// TokenClaims - проверенное содержимое токена доступа.
type TokenClaims struct {
	UserID   int64
	Username string
}

// JWTConfig содержит параметры подписи JWT.
type JWTConfig struct {
	SecretKey      []byte
	AccessTokenTTL time.Duration
}

// AuthSession - результат успешной аутентификации: пользователь и
// выпущенный токен доступа.
type AuthSession struct {
	User        *entities.User `json:"user"`
	AccessToken string         `json:"accessToken"`
	ExpiresAt   time.Time      `json:"expiresAt"`
}
