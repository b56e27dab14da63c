package app

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/api"
	"goblognest/internal/blog/ports/repositories"
)

// CommentUseCaseImpl реализует интерфейс CommentUseCase.
type CommentUseCaseImpl struct {
	commentRepo repositories.CommentRepository
}

// NewCommentUseCase создает новый экземпляр сервиса комментариев.
func NewCommentUseCase(commentRepo repositories.CommentRepository) api.CommentUseCase {
	return &CommentUseCaseImpl{commentRepo: commentRepo}
}

func (c *CommentUseCaseImpl) Create(ctx context.Context, command *dto.CreateCommentDTO) (*entities.Comment, error) {
	return c.commentRepo.Create(ctx, command)
}

func (c *CommentUseCaseImpl) GetByBlogID(ctx context.Context, blogID int64) ([]*entities.Comment, error) {
	return c.commentRepo.GetByBlogID(ctx, blogID)
}

func (c *CommentUseCaseImpl) Delete(ctx context.Context, id, authorID int64) (*entities.Comment, error) {
	return c.commentRepo.Delete(ctx, id, authorID)
}
