package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/internal/blog/ports/repositories"
)

// CategoryRepository - репозиторий рубрик, делегирующий хранению.
type CategoryRepository struct {
	datasource datasources.CategoryDatasource
}

// NewCategoryRepository создает репозиторий рубрик.
func NewCategoryRepository(datasource datasources.CategoryDatasource) repositories.CategoryRepository {
	return &CategoryRepository{datasource: datasource}
}

func (r *CategoryRepository) Create(ctx context.Context, command *dto.CreateCategoryDTO) (*entities.Category, error) {
	return r.datasource.Create(ctx, command)
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*entities.Category, error) {
	return r.datasource.GetAll(ctx)
}
