// Package services содержит адаптеры внешних сервисов: хэширование паролей
// и выпуск токенов доступа.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"goblognest/internal/blog/domain/services"
	svc "goblognest/internal/blog/ports/services"
)

const (
	errCtxGeneratingHash = "generating password hash"
	errCtxComparingHash  = "comparing password with hash"
	errMsgPasswordShort  = "password is too short"
)

// ServiceBcrypt реализует PasswordService поверх bcrypt: соль входит в
// хэш, сравнение устойчиво к атакам по времени.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает сервис паролей с заданной стоимостью. Стоимость
// ниже допустимого минимума заменяется стоимостью по умолчанию.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash возвращает bcrypt-хэш пароля. Пустой или слишком короткий
// пароль отклоняется до обращения к bcrypt.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", services.ErrInvalidPassword
	}
	if len(password) < services.MinPasswordLength {
		return "", fmt.Errorf("%s: %w", errMsgPasswordShort, services.ErrInvalidPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtxGeneratingHash, services.ErrHashingFailed)
	}

	return string(hashed), nil
}

// Verify сообщает, соответствует ли пароль хэшу. Несовпадение - не
// ошибка, а отрицательный результат.
func (s *ServiceBcrypt) Verify(_ context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, services.ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", errCtxComparingHash, err)
	}
}
