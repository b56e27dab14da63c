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

// Сообщения нарушений бизнес-правил для публикаций.
const (
	MsgBlogNotFound       = "Blog not found"
	MsgAuthorNotFound     = "Author does not exist"
	MsgCategoriesMismatch = "One or more categories do not exist"
)

const (
	errCtxCheckingAuthor     = "checking author existence"
	errCtxCheckingCategories = "checking categories existence"
	errCtxCreatingBlog       = "error creating blog"
	errCtxQueryingBlog       = "error querying blog"
	errCtxListingBlogs       = "error listing blogs"
	errCtxUpdatingBlog       = "error updating blog"
	errCtxDeletingBlog       = "error deleting blog"
	errCtxReplacingCats      = "error replacing blog categories"
	errCtxLoadingCats        = "error loading blog categories"
)

const blogColumns = "id, title, content, author_id, created_at, updated_at"

// BlogDatasource реализует datasources.BlogDatasource поверх Postgres.
type BlogDatasource struct {
	pool PgxPoolInterface
}

// NewBlogDatasource создает новый datasource публикаций.
func NewBlogDatasource(pool PgxPoolInterface) datasources.BlogDatasource {
	return &BlogDatasource{pool: pool}
}

func scanBlog(row pgx.Row) (*entities.Blog, error) {
	var blog entities.Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID,
		&blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// checkAuthorExists проверяет, что автор существует и не удален.
func (d *BlogDatasource) checkAuthorExists(ctx context.Context, authorID int64) error {
	var exists bool
	err := d.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND deleted_at IS NULL)`,
		authorID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingAuthor, err)
	}
	if !exists {
		return apperr.NotFound(MsgAuthorNotFound)
	}
	return nil
}

// checkCategoriesExist сравнивает мощность запрошенного набора рубрик с
// числом реально существующих: любое расхождение отклоняет запрос целиком.
func (d *BlogDatasource) checkCategoriesExist(ctx context.Context, ids []int64) error {
	var matched int
	err := d.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM categories WHERE id = ANY($1) AND deleted_at IS NULL`,
		ids,
	).Scan(&matched)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingCategories, err)
	}
	if matched != len(ids) {
		return apperr.BadRequest(MsgCategoriesMismatch)
	}
	return nil
}

// loadCategories подгружает рубрики публикации.
func (d *BlogDatasource) loadCategories(ctx context.Context, blogID int64) ([]*entities.Category, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT c.id, c.name FROM categories c
         JOIN blog_categories bc ON bc.category_id = c.id
         WHERE bc.blog_id = $1 AND c.deleted_at IS NULL
         ORDER BY c.id`,
		blogID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingCats, err)
	}
	defer rows.Close()

	categories := make([]*entities.Category, 0)
	for rows.Next() {
		var category entities.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxLoadingCats, err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingCats, err)
	}

	return categories, nil
}

// Create сохраняет новую публикацию. Автор обязан существовать, каждый
// идентификатор рубрики обязан разрешаться; частичное совпадение набора
// отклоняется атомарно, без записи.
func (d *BlogDatasource) Create(ctx context.Context, command *dto.CreateBlogDTO) (*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "blog"), zap.String("method", "Create"))

	if err := d.checkAuthorExists(ctx, command.AuthorID); err != nil {
		return nil, err
	}
	if err := d.checkCategoriesExist(ctx, command.CategoriesIDs); err != nil {
		return nil, err
	}

	blog, err := scanBlog(d.pool.QueryRow(ctx,
		`INSERT INTO blogs (title, content, author_id) VALUES ($1, $2, $3) RETURNING `+blogColumns,
		command.Title, command.Content, command.AuthorID,
	))
	if err != nil {
		log.Error(ctx, "failed to create blog", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingBlog, err)
	}

	if _, err := d.pool.Exec(ctx,
		`INSERT INTO blog_categories (blog_id, category_id) SELECT $1, unnest($2::bigint[])`,
		blog.ID, command.CategoriesIDs,
	); err != nil {
		log.Error(ctx, "failed to link categories", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingBlog, err)
	}

	categories, err := d.loadCategories(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.Categories = categories

	log.Info(ctx, "blog created", zap.Int64("blogID", blog.ID))
	return blog, nil
}

// GetAll возвращает все неудаленные публикации, новые первыми.
func (d *BlogDatasource) GetAll(ctx context.Context) ([]*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "blog"), zap.String("method", "GetAll"))

	rows, err := d.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE deleted_at IS NULL ORDER BY created_at DESC`,
	)
	if err != nil {
		log.Error(ctx, "failed to list blogs", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingBlogs, err)
	}
	defer rows.Close()

	blogs := make([]*entities.Blog, 0)
	for rows.Next() {
		var blog entities.Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID,
			&blog.CreatedAt, &blog.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxListingBlogs, err)
		}
		blogs = append(blogs, &blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingBlogs, err)
	}

	return blogs, nil
}

// GetByID возвращает публикацию с рубриками. Мягко удаленная публикация
// считается отсутствующей.
func (d *BlogDatasource) GetByID(ctx context.Context, id int64) (*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "blog"), zap.String("method", "GetByID"))

	blog, err := scanBlog(d.pool.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE id = $1 AND deleted_at IS NULL`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "blog not found", zap.Int64("id", id))
			return nil, apperr.NotFound(MsgBlogNotFound)
		}
		log.Error(ctx, "failed to query blog", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryingBlog, err)
	}

	categories, err := d.loadCategories(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.Categories = categories

	return blog, nil
}

// Update перепроверяет существование публикации и набора рубрик и заменяет
// набор целиком, не сливая его с прежним.
func (d *BlogDatasource) Update(ctx context.Context, command *dto.UpdateBlogDTO) (*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "blog"), zap.String("method", "Update"))

	if _, err := d.GetByID(ctx, command.BlogID); err != nil {
		return nil, err
	}
	if err := d.checkCategoriesExist(ctx, command.CategoriesIDs); err != nil {
		return nil, err
	}

	blog, err := scanBlog(d.pool.QueryRow(ctx,
		`UPDATE blogs SET title = $1, content = $2, updated_at = $3 WHERE id = $4 RETURNING `+blogColumns,
		command.Title, command.Content, time.Now().UTC(), command.BlogID,
	))
	if err != nil {
		log.Error(ctx, "failed to update blog", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingBlog, err)
	}

	if _, err := d.pool.Exec(ctx,
		`DELETE FROM blog_categories WHERE blog_id = $1`,
		blog.ID,
	); err != nil {
		log.Error(ctx, "failed to clear categories", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxReplacingCats, err)
	}
	if _, err := d.pool.Exec(ctx,
		`INSERT INTO blog_categories (blog_id, category_id) SELECT $1, unnest($2::bigint[])`,
		blog.ID, command.CategoriesIDs,
	); err != nil {
		log.Error(ctx, "failed to link categories", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxReplacingCats, err)
	}

	categories, err := d.loadCategories(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.Categories = categories

	log.Info(ctx, "blog updated", zap.Int64("blogID", blog.ID))
	return blog, nil
}

// Delete мягко удаляет публикацию; последующий GetByID по тому же
// идентификатору сообщит об отсутствии.
func (d *BlogDatasource) Delete(ctx context.Context, id int64) (*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("datasource", "blog"), zap.String("method", "Delete"))

	now := time.Now().UTC()
	blog, err := scanBlog(d.pool.QueryRow(ctx,
		`UPDATE blogs SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL RETURNING `+blogColumns,
		now, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "blog not found for deletion", zap.Int64("id", id))
			return nil, apperr.NotFound(MsgBlogNotFound)
		}
		log.Error(ctx, "failed to delete blog", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxDeletingBlog, err)
	}

	blog.MarkDeleted(now)
	log.Info(ctx, "blog deleted", zap.Int64("blogID", id))
	return blog, nil
}
