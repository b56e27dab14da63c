package services

import "errors"

// Минимальная длина пароля, принимаемая хэширующим сервисом.
const MinPasswordLength = 6

// Ошибки работы с паролями.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrHashingFailed   = errors.New("failed to hash password")
)
