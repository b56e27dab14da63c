package dto

import "strings"

// CreateCategoryProps - необработанный ввод запроса создания рубрики.
type CreateCategoryProps struct {
	Name string `json:"name"`
}

// CreateCategoryDTO - проверенная команда создания рубрики.
type CreateCategoryDTO struct {
	Name string
}

// ValidateCreateCategory выполняет полевую валидацию имени рубрики.
func ValidateCreateCategory(props CreateCategoryProps) []ErrorMsg {
	if props.Name == "" {
		return []ErrorMsg{{Field: FieldName, Message: MsgNameRequired}}
	}

	return textChecks(FieldName, props.Name, 3, 30,
		MsgNameEmpty, MsgNameTooShort, MsgNameTooLong)
}

// NewCreateCategoryDTO - фабрика команды создания рубрики.
func NewCreateCategoryDTO(props CreateCategoryProps) (*CreateCategoryDTO, *FactoryError) {
	if errs := ValidateCreateCategory(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &CreateCategoryDTO{Name: strings.TrimSpace(props.Name)}, nil
}
