package dto

import "strings"

// CreateUserProps - необработанный ввод запроса регистрации.
type CreateUserProps struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserDTO - проверенная команда регистрации пользователя.
// Password содержит открытый текст; хэширование выполняет use-case
// до обращения к репозиторию.
type CreateUserDTO struct {
	Username string
	Email    string
	Password string
}

// ValidateCreateUser выполняет полевую валидацию регистрации. Отсутствующие
// обязательные поля возвращаются пакетом в порядке username, email,
// password; контентные проверки при этом пропускаются.
func ValidateCreateUser(props CreateUserProps) []ErrorMsg {
	var missing []ErrorMsg
	if props.Username == "" {
		missing = append(missing, ErrorMsg{Field: FieldUsername, Message: MsgUsernameRequired})
	}
	if props.Email == "" {
		missing = append(missing, ErrorMsg{Field: FieldEmail, Message: MsgEmailRequired})
	}
	if props.Password == "" {
		missing = append(missing, ErrorMsg{Field: FieldPassword, Message: MsgPasswordRequired})
	}
	if len(missing) > 0 {
		return missing
	}

	var errs []ErrorMsg
	errs = append(errs, usernameChecks(props.Username)...)
	errs = append(errs, emailChecks(props.Email)...)
	errs = append(errs, passwordChecks(props.Password)...)
	return errs
}

// NewCreateUserDTO - фабрика команды регистрации. Почта нормализуется к
// нижнему регистру.
func NewCreateUserDTO(props CreateUserProps) (*CreateUserDTO, *FactoryError) {
	if errs := ValidateCreateUser(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &CreateUserDTO{
		Username: strings.TrimSpace(props.Username),
		Email:    strings.ToLower(strings.TrimSpace(props.Email)),
		Password: props.Password,
	}, nil
}
