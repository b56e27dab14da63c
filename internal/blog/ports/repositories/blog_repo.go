// Package repositories определяет контракты репозиториев, потребляемые
// use-case слоем. Репозиторий - чистый переходник над Datasource: он
// скрывает от оркестрации конкретную технологию хранения.
package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// BlogRepository определяет интерфейс репозитория публикаций.
type BlogRepository interface {
	Create(ctx context.Context, command *dto.CreateBlogDTO) (*entities.Blog, error)

	GetAll(ctx context.Context) ([]*entities.Blog, error)

	GetByID(ctx context.Context, id int64) (*entities.Blog, error)

	Update(ctx context.Context, command *dto.UpdateBlogDTO) (*entities.Blog, error)

	Delete(ctx context.Context, id int64) (*entities.Blog, error)
}
