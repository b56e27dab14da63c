package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"goblognest/internal/blog/domain/apperr"
	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/datasources"
	"goblognest/pkg/logger"
)

// MsgCategoryExists возвращается при попытке создать рубрику с занятым именем.
const MsgCategoryExists = "Category already exists"

const (
	errCtxCheckingCategoryName = "checking category name uniqueness"
	errCtxCreatingCategory     = "error creating category"
	errCtxListingCategories    = "error listing categories"
)

// CategoryDatasource реализует datasources.CategoryDatasource поверх Postgres.
type CategoryDatasource struct {
	pool PgxPoolInterface
}

// NewCategoryDatasource создает новый datasource рубрик.
func NewCategoryDatasource(pool PgxPoolInterface) datasources.CategoryDatasource {
	return &CategoryDatasource{pool: pool}
}

// Create сохраняет новую рубрику. Имя должно быть уникально среди
// неудаленных рубрик; удаленная рубрика имя не резервирует.
func (d *CategoryDatasource) Create(ctx context.Context, command *dto.CreateCategoryDTO) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "category"), zap.String("method", "Create"))

	var exists bool
	err := d.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1 AND deleted_at IS NULL)`,
		command.Name,
	).Scan(&exists)
	if err != nil {
		log.Error(ctx, "failed to check name uniqueness", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingCategoryName, err)
	}
	if exists {
		log.Debug(ctx, "category name already taken", zap.String("name", command.Name))
		return nil, apperr.Conflict(MsgCategoryExists)
	}

	var category entities.Category
	err = d.pool.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`,
		command.Name,
	).Scan(&category.ID, &category.Name)
	if err != nil {
		log.Error(ctx, "failed to create category", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingCategory, err)
	}

	log.Info(ctx, "category created", zap.Int64("categoryID", category.ID))
	return &category, nil
}

// GetAll возвращает все неудаленные рубрики.
func (d *CategoryDatasource) GetAll(ctx context.Context) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "category"), zap.String("method", "GetAll"))

	rows, err := d.pool.Query(ctx,
		`SELECT id, name FROM categories WHERE deleted_at IS NULL ORDER BY id`,
	)
	if err != nil {
		log.Error(ctx, "failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingCategories, err)
	}
	defer rows.Close()

	categories := make([]*entities.Category, 0)
	for rows.Next() {
		var category entities.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxListingCategories, err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingCategories, err)
	}

	return categories, nil
}
