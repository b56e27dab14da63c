// Package services определяет контракты внешних сервисов, потребляемых ядром.
package services

import "context"

// PasswordService определяет операции хэширования пароля. Хэш соленый и
// одностороний; сравнение устойчиво к атакам по времени.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}
