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

// CategoryUseCaseImpl реализует интерфейс CategoryUseCase.
type CategoryUseCaseImpl struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryUseCase создает новый экземпляр сервиса рубрик.
func NewCategoryUseCase(categoryRepo repositories.CategoryRepository) api.CategoryUseCase {
	return &CategoryUseCaseImpl{categoryRepo: categoryRepo}
}

func (c *CategoryUseCaseImpl) Create(ctx context.Context, command *dto.CreateCategoryDTO) (*entities.Category, error) {
	category, err := c.categoryRepo.Create(ctx, command)
	if err != nil {
		return nil, err
	}
	logger.Log(ctx).Info(ctx, "category registered", zap.Int64("categoryID", category.ID))
	return category, nil
}

func (c *CategoryUseCaseImpl) GetAll(ctx context.Context) ([]*entities.Category, error) {
	return c.categoryRepo.GetAll(ctx)
}
