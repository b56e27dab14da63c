package dto

import "strings"

// LoginUserProps - необработанный ввод запроса входа.
type LoginUserProps struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserDTO - проверенная команда входа.
type LoginUserDTO struct {
	Email    string
	Password string
}

// ValidateLoginUser выполняет полевую валидацию входа. Политика пароля на
// входе не проверяется, чтобы не раскрывать действующие правила.
func ValidateLoginUser(props LoginUserProps) []ErrorMsg {
	var missing []ErrorMsg
	if props.Email == "" {
		missing = append(missing, ErrorMsg{Field: FieldEmail, Message: MsgEmailRequired})
	}
	if props.Password == "" {
		missing = append(missing, ErrorMsg{Field: FieldPassword, Message: MsgPasswordRequired})
	}
	if len(missing) > 0 {
		return missing
	}

	return emailChecks(props.Email)
}

// NewLoginUserDTO - фабрика команды входа.
func NewLoginUserDTO(props LoginUserProps) (*LoginUserDTO, *FactoryError) {
	if errs := ValidateLoginUser(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &LoginUserDTO{
		Email:    strings.ToLower(strings.TrimSpace(props.Email)),
		Password: props.Password,
	}, nil
}
