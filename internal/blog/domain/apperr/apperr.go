// Package apperr определяет типизированную ошибку уровня бизнес-правил,
// несущую сообщение и HTTP-эквивалентный статус. Ошибки этого типа
// поднимаются из datasource-слоя и доходят до границы приложения без
// перехвата.
package apperr

import (
	"errors"
	"net/http"
)

// AppError - нарушение бизнес-правила с привязанным статусом.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// New создает AppError с произвольным статусом.
func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

// BadRequest - некорректный запрос (вложенные проверки существования).
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// NotFound - сущность отсутствует или мягко удалена.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Conflict - нарушение уникальности. По соглашению этой системы
// конфликты отдаются со статусом 404, а не 409.
func Conflict(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Forbidden - действие запрещено (не истек кулдаун).
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// Unauthorized - отсутствующий, просроченный или некорректный токен.
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

// Internal - неожиданная ошибка; внутренние детали наружу не отдаются.
func Internal(message string) *AppError {
	return New(http.StatusInternalServerError, message)
}

// FromError извлекает AppError из цепочки ошибок.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf возвращает статус ошибки либо 500 для неожиданных ошибок.
func StatusOf(err error) int {
	if appErr, ok := FromError(err); ok {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
