package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// CategoryRepository определяет интерфейс репозитория рубрик.
type CategoryRepository interface {
	Create(ctx context.Context, command *dto.CreateCategoryDTO) (*entities.Category, error)

	GetAll(ctx context.Context) ([]*entities.Category, error)
}
