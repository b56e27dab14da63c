package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"goblognest/internal/blog/domain/services"
	svc "goblognest/internal/blog/ports/services"
	"goblognest/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodSignToken      = "Sign"
	methodVerifyToken    = "Verify"
	msgSigningToken      = "signing access token"
	msgVerifyingToken    = "verifying token"
	msgTokenSigned       = "token signed successfully"
	msgTokenVerified     = "token verified successfully"
	msgInvalidToken      = "invalid token format"
	msgTokenExpired      = "token has expired"
	errSigningToken      = "error signing token"
	errParsingToken      = "error parsing token"
	errCtxSigningToken   = "signing token"
	errCtxParsingToken   = "parsing token"
	errCtxVerifyingToken = "verifying token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, accessTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey:      []byte(secretKey),
			AccessTokenTTL: accessTokenTTL,
		},
	}
}

// Sign выпускает JWT токен доступа для пользователя.
func (s *ServiceJWT) Sign(ctx context.Context, userID int64, username string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodSignToken),
		zap.Int64("userID", userID),
	)
	log.Debug(ctx, msgSigningToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxSigningToken, services.ErrTokenGenerationFailed)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.AccessTokenTTL)

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxSigningToken, services.ErrTokenGenerationFailed, err)
	}

	log.Debug(ctx, msgTokenSigned, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Verify проверяет JWT токен и возвращает проверенные claims.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (*services.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerifyToken))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrExpiredToken)
		}
		log.Error(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		log.Debug(ctx, "subject claim is not a user id")
		return nil, fmt.Errorf("%s: %w: bad subject", errCtxVerifyingToken, services.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.Int64("userID", userID))
	return &services.TokenClaims{UserID: userID, Username: claims.Username}, nil
}
