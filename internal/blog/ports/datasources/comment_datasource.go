package datasources

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// CommentDatasource определяет операции хранения комментариев.
type CommentDatasource interface {
	Create(ctx context.Context, command *dto.CreateCommentDTO) (*entities.Comment, error)

	GetByBlogID(ctx context.Context, blogID int64) ([]*entities.Comment, error)

	Delete(ctx context.Context, id, authorID int64) (*entities.Comment, error)
}
