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

// LikeUseCaseImpl реализует интерфейс LikeUseCase.
type LikeUseCaseImpl struct {
	likeRepo repositories.LikeRepository
}

// NewLikeUseCase создает новый экземпляр сервиса лайков.
func NewLikeUseCase(likeRepo repositories.LikeRepository) api.LikeUseCase {
	return &LikeUseCaseImpl{likeRepo: likeRepo}
}

func (l *LikeUseCaseImpl) Toggle(ctx context.Context, command *dto.CreateDeleteLikeDTO) (*entities.LikeToggle, error) {
	result, err := l.likeRepo.Toggle(ctx, command)
	if err != nil {
		return nil, err
	}
	logger.Log(ctx).Debug(ctx, "like toggled",
		zap.String("action", string(result.Action)),
		zap.Int64("blogID", command.BlogID),
		zap.Int64("userID", command.UserID))
	return result, nil
}
