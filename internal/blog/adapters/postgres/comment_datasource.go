package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goblognest/internal/blog/domain/apperr"
	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/pkg/logger"
)

// Сообщения нарушений бизнес-правил для комментариев.
const (
	MsgCommentNotFound     = "Comment not found"
	MsgCommentAuthorAbsent = "Author does not exist"
	MsgCommentBlogAbsent   = "Blog does not exist"
)

const (
	errCtxCheckingCommentRefs = "checking comment references"
	errCtxCreatingComment     = "error creating comment"
	errCtxListingComments     = "error listing comments"
	errCtxDeletingComment     = "error deleting comment"
)

const commentColumns = "id, content, author_id, blog_id, created_at"

// CommentDatasource реализует datasources.CommentDatasource поверх Postgres.
type CommentDatasource struct {
	pool PgxPoolInterface
}

// NewCommentDatasource создает новый datasource комментариев.
func NewCommentDatasource(pool PgxPoolInterface) datasources.CommentDatasource {
	return &CommentDatasource{pool: pool}
}

func scanComment(row pgx.Row) (*entities.Comment, error) {
	var comment entities.Comment
	err := row.Scan(&comment.ID, &comment.Content, &comment.AuthorID,
		&comment.BlogID, &comment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create сохраняет комментарий. Сначала проверяется автор, затем
// публикация; о первой отсутствующей ссылке и сообщается.
func (d *CommentDatasource) Create(ctx context.Context, command *dto.CreateCommentDTO) (*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "comment"), zap.String("method", "Create"))

	var authorExists, blogExists bool
	err := d.pool.QueryRow(ctx,
		`SELECT
           EXISTS (SELECT 1 FROM users WHERE id = $1 AND deleted_at IS NULL),
           EXISTS (SELECT 1 FROM blogs WHERE id = $2 AND deleted_at IS NULL)`,
		command.AuthorID, command.BlogID,
	).Scan(&authorExists, &blogExists)
	if err != nil {
		log.Error(ctx, "failed to check references", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingCommentRefs, err)
	}
	if !authorExists {
		log.Debug(ctx, "comment author not found", zap.Int64("authorID", command.AuthorID))
		return nil, apperr.BadRequest(MsgCommentAuthorAbsent)
	}
	if !blogExists {
		log.Debug(ctx, "comment blog not found", zap.Int64("blogID", command.BlogID))
		return nil, apperr.BadRequest(MsgCommentBlogAbsent)
	}

	comment, err := scanComment(d.pool.QueryRow(ctx,
		`INSERT INTO comments (content, author_id, blog_id) VALUES ($1, $2, $3) RETURNING `+commentColumns,
		command.Content, command.AuthorID, command.BlogID,
	))
	if err != nil {
		log.Error(ctx, "failed to create comment", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingComment, err)
	}

	log.Info(ctx, "comment created", zap.Int64("commentID", comment.ID))
	return comment, nil
}

// GetByBlogID возвращает неудаленные комментарии публикации, старые первыми.
func (d *CommentDatasource) GetByBlogID(ctx context.Context, blogID int64) ([]*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "comment"), zap.String("method", "GetByBlogID"))

	rows, err := d.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE blog_id = $1 AND deleted_at IS NULL ORDER BY created_at`,
		blogID,
	)
	if err != nil {
		log.Error(ctx, "failed to list comments", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingComments, err)
	}
	defer rows.Close()

	comments := make([]*entities.Comment, 0)
	for rows.Next() {
		var comment entities.Comment
		err := rows.Scan(&comment.ID, &comment.Content, &comment.AuthorID,
			&comment.BlogID, &comment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxListingComments, err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingComments, err)
	}

	return comments, nil
}

// Delete мягко удаляет комментарий. Удалить можно только собственный
// комментарий: чужой для вызывающего неотличим от несуществующего.
func (d *CommentDatasource) Delete(ctx context.Context, id, authorID int64) (*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "comment"), zap.String("method", "Delete"))

	now := time.Now().UTC()
	comment, err := scanComment(d.pool.QueryRow(ctx,
		`UPDATE comments SET deleted_at = $1 WHERE id = $2 AND author_id = $3 AND deleted_at IS NULL RETURNING `+commentColumns,
		now, id, authorID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "comment not found for deletion", zap.Int64("id", id))
			return nil, apperr.NotFound(MsgCommentNotFound)
		}
		log.Error(ctx, "failed to delete comment", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxDeletingComment, err)
	}

	comment.MarkDeleted(now)
	log.Info(ctx, "comment deleted", zap.Int64("commentID", id))
	return comment, nil
}
