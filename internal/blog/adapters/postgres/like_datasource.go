package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"goblognest/internal/blog/domain/apperr"
	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/pkg/logger"
)

// Сообщения нарушений бизнес-правил для лайков.
const (
	MsgLikeUserAbsent = "User does not exist"
	MsgLikeBlogAbsent = "Blog does not exist"
)

const (
	errCtxCheckingLikeRefs = "checking like references"
	errCtxQueryingLike     = "error querying like"
	errCtxInsertingLike    = "error inserting like"
	errCtxDeletingLike     = "error deleting like"
)

// LikeDatasource реализует datasources.LikeDatasource поверх Postgres.
type LikeDatasource struct {
	pool PgxPoolInterface
}

// NewLikeDatasource создает новый datasource лайков.
func NewLikeDatasource(pool PgxPoolInterface) datasources.LikeDatasource {
	return &LikeDatasource{pool: pool}
}

func scanLike(row pgx.Row) (*entities.Like, error) {
	var like entities.Like
	if err := row.Scan(&like.ID, &like.UserID, &like.BlogID); err != nil {
		return nil, err
	}
	return &like, nil
}

// Toggle переключает лайк пары (пользователь, публикация): отсутствующий
// создается, существующий снимается. Пара защищена уникальным ограничением,
// поэтому гонка двух одновременных включений схлопывается в один лайк:
// проигравший перечитывает и возвращает уже существующую строку.
func (d *LikeDatasource) Toggle(ctx context.Context, command *dto.CreateDeleteLikeDTO) (*entities.LikeToggle, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "like"), zap.String("method", "Toggle"))

	var userExists, blogExists bool
	err := d.pool.QueryRow(ctx,
		`SELECT
           EXISTS (SELECT 1 FROM users WHERE id = $1 AND deleted_at IS NULL),
           EXISTS (SELECT 1 FROM blogs WHERE id = $2 AND deleted_at IS NULL)`,
		command.UserID, command.BlogID,
	).Scan(&userExists, &blogExists)
	if err != nil {
		log.Error(ctx, "failed to check references", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingLikeRefs, err)
	}
	if !userExists {
		log.Debug(ctx, "like user not found", zap.Int64("userID", command.UserID))
		return nil, apperr.NotFound(MsgLikeUserAbsent)
	}
	if !blogExists {
		log.Debug(ctx, "like blog not found", zap.Int64("blogID", command.BlogID))
		return nil, apperr.NotFound(MsgLikeBlogAbsent)
	}

	existing, err := scanLike(d.pool.QueryRow(ctx,
		`SELECT id, user_id, blog_id FROM likes WHERE blog_id = $1 AND user_id = $2`,
		command.BlogID, command.UserID,
	))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Error(ctx, "failed to query like", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryingLike, err)
	}

	if existing != nil {
		if _, err := d.pool.Exec(ctx, `DELETE FROM likes WHERE id = $1`, existing.ID); err != nil {
			log.Error(ctx, "failed to delete like", zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxDeletingLike, err)
		}
		log.Info(ctx, "like removed", zap.Int64("likeID", existing.ID))
		return &entities.LikeToggle{Action: entities.LikeDeleted, Like: existing}, nil
	}

	like, err := scanLike(d.pool.QueryRow(ctx,
		`INSERT INTO likes (user_id, blog_id) VALUES ($1, $2) RETURNING id, user_id, blog_id`,
		command.UserID, command.BlogID,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "concurrent like detected, reusing existing row")
			like, err = scanLike(d.pool.QueryRow(ctx,
				`SELECT id, user_id, blog_id FROM likes WHERE blog_id = $1 AND user_id = $2`,
				command.BlogID, command.UserID,
			))
			if err != nil {
				log.Error(ctx, "failed to reread like", zap.Error(err))
				return nil, fmt.Errorf("%s: %w", errCtxQueryingLike, err)
			}
			return &entities.LikeToggle{Action: entities.LikeCreated, Like: like}, nil
		}
		log.Error(ctx, "failed to insert like", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxInsertingLike, err)
	}

	log.Info(ctx, "like added", zap.Int64("likeID", like.ID))
	return &entities.LikeToggle{Action: entities.LikeCreated, Like: like}, nil
}
