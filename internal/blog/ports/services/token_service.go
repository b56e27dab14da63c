package services

import (
	"context"
	"time"

	domain "goblognest/internal/blog/domain/services"
)

// TokenService определяет контракт выпуска и проверки токенов доступа.
// Ядро зависит только от этого контракта, а не от конкретного формата
// токена.
type TokenService interface {
	Sign(ctx context.Context, userID int64, username string) (string, time.Time, error)

	Verify(ctx context.Context, token string) (*domain.TokenClaims, error)
}
