// Package repositories содержит реализации репозиториев, делегирующие
// вызовы datasource-слою.
package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/internal/blog/ports/repositories"
)

// BlogRepository - репозиторий публикаций, делегирующий хранению.
type BlogRepository struct {
	datasource datasources.BlogDatasource
}

// NewBlogRepository создает репозиторий публикаций.
func NewBlogRepository(datasource datasources.BlogDatasource) repositories.BlogRepository {
	return &BlogRepository{datasource: datasource}
}

func (r *BlogRepository) Create(ctx context.Context, command *dto.CreateBlogDTO) (*entities.Blog, error) {
	return r.datasource.Create(ctx, command)
}

func (r *BlogRepository) GetAll(ctx context.Context) ([]*entities.Blog, error) {
	return r.datasource.GetAll(ctx)
}

func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*entities.Blog, error) {
	return r.datasource.GetByID(ctx, id)
}

func (r *BlogRepository) Update(ctx context.Context, command *dto.UpdateBlogDTO) (*entities.Blog, error) {
	return r.datasource.Update(ctx, command)
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) (*entities.Blog, error) {
	return r.datasource.Delete(ctx, id)
}
