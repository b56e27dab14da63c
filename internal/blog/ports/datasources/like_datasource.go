package datasources

import (
	"context"

	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
)

// LikeDatasource определяет операции хранения лайков.
type LikeDatasource interface {
	// Toggle создает лайк для пары (userId, blogId), если его нет, и
	// удаляет существующий в противном случае. Возвращаемое значение
	// всегда отражает только что выполненное действие.
	Toggle(ctx context.Context, command *dto.CreateDeleteLikeDTO) (*entities.LikeToggle, error)
}
