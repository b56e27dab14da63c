package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// CommentRepository определяет интерфейс репозитория комментариев.
type CommentRepository interface {
	Create(ctx context.Context, command *dto.CreateCommentDTO) (*entities.Comment, error)

	GetByBlogID(ctx context.Context, blogID int64) ([]*entities.Comment, error)

	Delete(ctx context.Context, id, authorID int64) (*entities.Comment, error)
}
