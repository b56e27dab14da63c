package datasources

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// CategoryDatasource определяет операции хранения рубрик.
type CategoryDatasource interface {
	Create(ctx context.Context, command *dto.CreateCategoryDTO) (*entities.Category, error)

	GetAll(ctx context.Context) ([]*entities.Category, error)
}
