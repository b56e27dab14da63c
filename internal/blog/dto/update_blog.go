package dto

import "strings"

// UpdateBlogProps - необработанный ввод запроса обновления публикации.
type UpdateBlogProps struct {
	BlogID        int64   `json:"blogId"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	CategoriesIDs []int64 `json:"categoriesIds"`
}

// UpdateBlogDTO - проверенная команда обновления публикации. Набор
// категорий заменяется целиком, а не сливается с прежним.
type UpdateBlogDTO struct {
	BlogID        int64
	Title         string
	Content       string
	CategoriesIDs []int64
}

// ValidateUpdateBlog применяет те же полевые правила, что и создание.
func ValidateUpdateBlog(props UpdateBlogProps) []ErrorMsg {
	return ValidateCreateBlog(CreateBlogProps{
		Title:         props.Title,
		Content:       props.Content,
		CategoriesIDs: props.CategoriesIDs,
	})
}

// NewUpdateBlogDTO - фабрика команды обновления.
func NewUpdateBlogDTO(props UpdateBlogProps) (*UpdateBlogDTO, *FactoryError) {
	if isMissingID(props.BlogID) {
		return nil, preconditionError(MsgBlogIDInvalid)
	}

	if errs := ValidateUpdateBlog(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &UpdateBlogDTO{
		BlogID:        props.BlogID,
		Title:         strings.TrimSpace(props.Title),
		Content:       strings.TrimSpace(props.Content),
		CategoriesIDs: props.CategoriesIDs,
	}, nil
}
