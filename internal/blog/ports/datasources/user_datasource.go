package datasources

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// UserDatasource определяет операции хранения пользователей.
type UserDatasource interface {
	// Create сохраняет нового пользователя. Поле Password команды к этому
	// моменту уже содержит хэш.
	Create(ctx context.Context, command *dto.CreateUserDTO) (*entities.User, error)

	GetAll(ctx context.Context) ([]*entities.User, error)

	GetByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	UpdateUsername(ctx context.Context, command *dto.UpdateUsernameDTO) (*entities.User, error)

	UpdatePassword(ctx context.Context, command *dto.UpdatePasswordDTO) (*entities.User, error)

	DeleteByID(ctx context.Context, id int64) (*entities.User, error)
}
