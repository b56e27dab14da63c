package dto

import "strings"

// CreateBlogProps - необработанный ввод запроса создания публикации.
type CreateBlogProps struct {
	AuthorID      int64   `json:"authorId"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	CategoriesIDs []int64 `json:"categoriesIds"`
}

// CreateBlogDTO - проверенная команда создания публикации.
type CreateBlogDTO struct {
	AuthorID      int64
	Title         string
	Content       string
	CategoriesIDs []int64
}

// ValidateCreateBlog выполняет полевую валидацию без побочных эффектов.
// Порядок этапов фиксирован: сначала пакетная проверка отсутствующих
// обязательных полей, затем проверка формы, затем контентные проверки.
func ValidateCreateBlog(props CreateBlogProps) []ErrorMsg {
	var missing []ErrorMsg
	if props.Title == "" {
		missing = append(missing, ErrorMsg{Field: FieldTitle, Message: MsgTitleRequired})
	}
	if props.Content == "" {
		missing = append(missing, ErrorMsg{Field: FieldContent, Message: MsgContentRequired})
	}
	if len(props.CategoriesIDs) == 0 {
		missing = append(missing, ErrorMsg{Field: FieldCategories, Message: MsgCategoriesRequired})
	}
	if len(missing) > 0 {
		return missing
	}

	if shapeErrs := categoryIDsShapeChecks(props.CategoriesIDs); len(shapeErrs) > 0 {
		return shapeErrs
	}

	var errs []ErrorMsg
	errs = append(errs, textChecks(FieldTitle, props.Title, 5, 150,
		MsgTitleEmpty, MsgTitleTooShort, MsgTitleTooLong)...)
	errs = append(errs, textChecks(FieldContent, props.Content, 15, 500,
		MsgContentEmpty, MsgContentTooShort, MsgContentTooLong)...)
	return errs
}

// NewCreateBlogDTO - фабрика команды. Предусловие идентичности (authorId)
// проверяется до полевой валидации; при его нарушении возвращается
// одиночное сообщение без массива полевых ошибок.
func NewCreateBlogDTO(props CreateBlogProps) (*CreateBlogDTO, *FactoryError) {
	if isMissingID(props.AuthorID) {
		return nil, preconditionError(MsgAuthorIDInvalid)
	}

	if errs := ValidateCreateBlog(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &CreateBlogDTO{
		AuthorID:      props.AuthorID,
		Title:         strings.TrimSpace(props.Title),
		Content:       strings.TrimSpace(props.Content),
		CategoriesIDs: props.CategoriesIDs,
	}, nil
}
