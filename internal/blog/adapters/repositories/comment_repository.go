package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/internal/blog/ports/repositories"
)

// CommentRepository - репозиторий комментариев, делегирующий хранению.
type CommentRepository struct {
	datasource datasources.CommentDatasource
}

// NewCommentRepository создает репозиторий комментариев.
func NewCommentRepository(datasource datasources.CommentDatasource) repositories.CommentRepository {
	return &CommentRepository{datasource: datasource}
}

func (r *CommentRepository) Create(ctx context.Context, command *dto.CreateCommentDTO) (*entities.Comment, error) {
	return r.datasource.Create(ctx, command)
}

func (r *CommentRepository) GetByBlogID(ctx context.Context, blogID int64) ([]*entities.Comment, error) {
	return r.datasource.GetByBlogID(ctx, blogID)
}

func (r *CommentRepository) Delete(ctx context.Context, id, authorID int64) (*entities.Comment, error) {
	return r.datasource.Delete(ctx, id, authorID)
}
