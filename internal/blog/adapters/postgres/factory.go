package postgres

import (
	"goblognest/internal/blog/ports/datasources"
)

// DatasourceFactory создает все datasource-компоненты поверх одного пула.
type DatasourceFactory struct {
	userDatasource     datasources.UserDatasource
	blogDatasource     datasources.BlogDatasource
	categoryDatasource datasources.CategoryDatasource
	commentDatasource  datasources.CommentDatasource
	likeDatasource     datasources.LikeDatasource
}

// NewDatasourceFactory создает новую фабрику datasource-компонентов.
// cooldownDays ограничивает частоту смены имени пользователя.
func NewDatasourceFactory(pool PgxPoolInterface, cooldownDays int) *DatasourceFactory {
	return &DatasourceFactory{
		userDatasource:     NewUserDatasource(pool, cooldownDays),
		blogDatasource:     NewBlogDatasource(pool),
		categoryDatasource: NewCategoryDatasource(pool),
		commentDatasource:  NewCommentDatasource(pool),
		likeDatasource:     NewLikeDatasource(pool),
	}
}

// UserDatasource возвращает datasource пользователей.
func (f *DatasourceFactory) UserDatasource() datasources.UserDatasource {
	return f.userDatasource
}

// BlogDatasource возвращает datasource публикаций.
func (f *DatasourceFactory) BlogDatasource() datasources.BlogDatasource {
	return f.blogDatasource
}

// CategoryDatasource возвращает datasource рубрик.
func (f *DatasourceFactory) CategoryDatasource() datasources.CategoryDatasource {
	return f.categoryDatasource
}

// CommentDatasource возвращает datasource комментариев.
func (f *DatasourceFactory) CommentDatasource() datasources.CommentDatasource {
	return f.commentDatasource
}

// LikeDatasource возвращает datasource лайков.
func (f *DatasourceFactory) LikeDatasource() datasources.LikeDatasource {
	return f.likeDatasource
}
