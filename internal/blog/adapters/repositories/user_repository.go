package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/internal/blog/ports/repositories"
)

// UserRepository - репозиторий пользователей, делегирующий хранению.
// Слой оставлен тонким намеренно: политика доступа к данным принадлежит
// datasource, а репозиторий фиксирует контракт для прикладного слоя.
type UserRepository struct {
	datasource datasources.UserDatasource
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(datasource datasources.UserDatasource) repositories.UserRepository {
	return &UserRepository{datasource: datasource}
}

func (r *UserRepository) Create(ctx context.Context, command *dto.CreateUserDTO) (*entities.User, error) {
	return r.datasource.Create(ctx, command)
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	return r.datasource.GetAll(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.datasource.GetByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.datasource.FindByEmail(ctx, email)
}

func (r *UserRepository) UpdateUsername(ctx context.Context, command *dto.UpdateUsernameDTO) (*entities.User, error) {
	return r.datasource.UpdateUsername(ctx, command)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, command *dto.UpdatePasswordDTO) (*entities.User, error) {
	return r.datasource.UpdatePassword(ctx, command)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.datasource.DeleteByID(ctx, id)
}
