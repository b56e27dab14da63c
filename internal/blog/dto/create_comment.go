package dto

import "strings"

// CreateCommentProps - необработанный ввод запроса создания комментария.
type CreateCommentProps struct {
	AuthorID int64  `json:"authorId"`
	BlogID   int64  `json:"blogId"`
	Content  string `json:"content"`
}

// CreateCommentDTO - проверенная команда создания комментария.
type CreateCommentDTO struct {
	AuthorID int64
	BlogID   int64
	Content  string
}

// ValidateCreateComment выполняет полевую валидацию текста комментария.
func ValidateCreateComment(props CreateCommentProps) []ErrorMsg {
	if props.Content == "" {
		return []ErrorMsg{{Field: FieldContent, Message: MsgCommentRequired}}
	}

	return textChecks(FieldContent, props.Content, 2, 40,
		MsgCommentEmpty, MsgCommentTooShort, MsgCommentTooLong)
}

// NewCreateCommentDTO - фабрика команды. Оба внешних ключа проверяются как
// предусловия, в порядке authorId, blogId; первый же отказ возвращается
// одиночным сообщением без вызова полевой валидации.
func NewCreateCommentDTO(props CreateCommentProps) (*CreateCommentDTO, *FactoryError) {
	if isMissingID(props.AuthorID) {
		return nil, preconditionError(MsgAuthorIDInvalid)
	}
	if isMissingID(props.BlogID) {
		return nil, preconditionError(MsgBlogIDInvalid)
	}

	if errs := ValidateCreateComment(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &CreateCommentDTO{
		AuthorID: props.AuthorID,
		BlogID:   props.BlogID,
		Content:  strings.TrimSpace(props.Content),
	}, nil
}
