package repositories

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/internal/blog/ports/repositories"
)

// LikeRepository - репозиторий лайков, делегирующий хранению.
type LikeRepository struct {
	datasource datasources.LikeDatasource
}

// NewLikeRepository создает репозиторий лайков.
func NewLikeRepository(datasource datasources.LikeDatasource) repositories.LikeRepository {
	return &LikeRepository{datasource: datasource}
}

func (r *LikeRepository) Toggle(ctx context.Context, command *dto.CreateDeleteLikeDTO) (*entities.LikeToggle, error) {
	return r.datasource.Toggle(ctx, command)
}
