package dto

// CreateDeleteLikeProps - необработанный ввод переключения лайка.
type CreateDeleteLikeProps struct {
	UserID int64 `json:"userId"`
	BlogID int64 `json:"blogId"`
}

// CreateDeleteLikeDTO - проверенная команда переключения лайка для пары
// (UserID, BlogID).
type CreateDeleteLikeDTO struct {
	UserID int64
	BlogID int64
}

// NewCreateDeleteLikeDTO - фабрика команды. У команды нет текстовых полей,
// поэтому весь отказ сводится к предусловиям идентичности, в порядке
// userId, blogId.
func NewCreateDeleteLikeDTO(props CreateDeleteLikeProps) (*CreateDeleteLikeDTO, *FactoryError) {
	if isMissingID(props.UserID) {
		return nil, preconditionError(MsgUserIDInvalid)
	}
	if isMissingID(props.BlogID) {
		return nil, preconditionError(MsgBlogIDInvalid)
	}

	return &CreateDeleteLikeDTO{UserID: props.UserID, BlogID: props.BlogID}, nil
}
