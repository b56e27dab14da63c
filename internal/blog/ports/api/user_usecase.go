// Package api определяет входные порты прикладного слоя.
package api

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/domain/services"
	"goblognest/internal/blog/dto"
)

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	Register(ctx context.Context, command *dto.CreateUserDTO) (*entities.User, error)

	Login(ctx context.Context, command *dto.LoginUserDTO) (*services.AuthSession, error)

	GetUsers(ctx context.Context) ([]*entities.User, error)

	GetUserByID(ctx context.Context, id int64) (*entities.User, error)

	UpdateUsername(ctx context.Context, command *dto.UpdateUsernameDTO) (*entities.User, error)

	UpdatePassword(ctx context.Context, command *dto.UpdatePasswordDTO) (*entities.User, error)

	DeleteUser(ctx context.Context, id int64) (*entities.User, error)
}
