// Package datasources определяет абстрактные контракты доступа к данным по
// агрегатам. Бизнес-правила живут в конкретных реализациях этих контрактов.
package datasources

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// BlogDatasource определяет операции хранения публикаций.
type BlogDatasource interface {
	Create(ctx context.Context, command *dto.CreateBlogDTO) (*entities.Blog, error)

	GetAll(ctx context.Context) ([]*entities.Blog, error)

	GetByID(ctx context.Context, id int64) (*entities.Blog, error)

	Update(ctx context.Context, command *dto.UpdateBlogDTO) (*entities.Blog, error)

	Delete(ctx context.Context, id int64) (*entities.Blog, error)
}
