package app

import (
	"context"

	"go.uber.org/zap"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/api"
	"goblognest/internal/blog/ports/repositories"
	"goblognest/pkg/logger"
)

// BlogUseCaseImpl реализует интерфейс BlogUseCase. Проверки существования
// автора и набора рубрик живут в слое хранения, поэтому каждая операция -
// одно обращение к репозиторию.
type BlogUseCaseImpl struct {
	blogRepo repositories.BlogRepository
}

// NewBlogUseCase создает новый экземпляр сервиса публикаций.
func NewBlogUseCase(blogRepo repositories.BlogRepository) api.BlogUseCase {
	return &BlogUseCaseImpl{blogRepo: blogRepo}
}

func (b *BlogUseCaseImpl) Create(ctx context.Context, command *dto.CreateBlogDTO) (*entities.Blog, error) {
	blog, err := b.blogRepo.Create(ctx, command)
	if err != nil {
		return nil, err
	}
	logger.Log(ctx).Info(ctx, "blog published", zap.Int64("blogID", blog.ID), zap.Int64("authorID", blog.AuthorID))
	return blog, nil
}

func (b *BlogUseCaseImpl) GetAll(ctx context.Context) ([]*entities.Blog, error) {
	return b.blogRepo.GetAll(ctx)
}

func (b *BlogUseCaseImpl) GetByID(ctx context.Context, id int64) (*entities.Blog, error) {
	return b.blogRepo.GetByID(ctx, id)
}

func (b *BlogUseCaseImpl) Update(ctx context.Context, command *dto.UpdateBlogDTO) (*entities.Blog, error) {
	return b.blogRepo.Update(ctx, command)
}

func (b *BlogUseCaseImpl) Delete(ctx context.Context, id int64) (*entities.Blog, error) {
	return b.blogRepo.Delete(ctx, id)
}
