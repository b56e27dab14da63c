package jwtservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "goblognest/internal/blog/adapters/services"
	"goblognest/internal/blog/domain/services"
	"goblognest/pkg/logger"
)

const testSecret = "test-secret-key-for-jwt-signing"

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestJWTService_SignAndVerify(t *testing.T) {
	ctx := testContext(t)

	t.Run("подписанный токен успешно проверяется", func(t *testing.T) {
		service := adapters.NewJWT(testSecret, 15*time.Minute)

		tokenString, expiresAt, err := service.Sign(ctx, 42, "blogger")
		require.NoError(t, err)
		assert.NotEmpty(t, tokenString)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

		claims, err := service.Verify(ctx, tokenString)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "blogger", claims.Username)
	})

	t.Run("просроченный токен отклоняется", func(t *testing.T) {
		service := adapters.NewJWT(testSecret, -time.Minute)

		tokenString, _, err := service.Sign(ctx, 42, "blogger")
		require.NoError(t, err)

		claims, err := service.Verify(ctx, tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, services.ErrExpiredToken)
	})

	t.Run("токен с чужим секретом отклоняется", func(t *testing.T) {
		signer := adapters.NewJWT("another-secret", 15*time.Minute)
		verifier := adapters.NewJWT(testSecret, 15*time.Minute)

		tokenString, _, err := signer.Sign(ctx, 42, "blogger")
		require.NoError(t, err)

		claims, err := verifier.Verify(ctx, tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("мусорная строка отклоняется", func(t *testing.T) {
		service := adapters.NewJWT(testSecret, 15*time.Minute)

		claims, err := service.Verify(ctx, "not.a.token")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("пустой секрет не позволяет подписать токен", func(t *testing.T) {
		service := adapters.NewJWT("", 15*time.Minute)

		tokenString, _, err := service.Sign(ctx, 42, "blogger")
		assert.Empty(t, tokenString)
		assert.ErrorIs(t, err, services.ErrTokenGenerationFailed)
	})
}
