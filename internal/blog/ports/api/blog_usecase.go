package api

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// BlogUseCase определяет основной порт для операций с публикациями.
type BlogUseCase interface {
	Create(ctx context.Context, command *dto.CreateBlogDTO) (*entities.Blog, error)

	GetAll(ctx context.Context) ([]*entities.Blog, error)

	GetByID(ctx context.Context, id int64) (*entities.Blog, error)

	Update(ctx context.Context, command *dto.UpdateBlogDTO) (*entities.Blog, error)

	Delete(ctx context.Context, id int64) (*entities.Blog, error)
}

// CategoryUseCase определяет основной порт для операций с рубриками.
type CategoryUseCase interface {
	Create(ctx context.Context, command *dto.CreateCategoryDTO) (*entities.Category, error)

	GetAll(ctx context.Context) ([]*entities.Category, error)
}

// CommentUseCase определяет основной порт для операций с комментариями.
type CommentUseCase interface {
	Create(ctx context.Context, command *dto.CreateCommentDTO) (*entities.Comment, error)

	GetByBlogID(ctx context.Context, blogID int64) ([]*entities.Comment, error)

	Delete(ctx context.Context, id, authorID int64) (*entities.Comment, error)
}

// LikeUseCase определяет основной порт для переключения лайков.
type LikeUseCase interface {
	Toggle(ctx context.Context, command *dto.CreateDeleteLikeDTO) (*entities.LikeToggle, error)
}
