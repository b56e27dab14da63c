package dto

import "strings"

// UpdateUsernameProps - необработанный ввод запроса смены имени пользователя.
type UpdateUsernameProps struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UpdateUsernameDTO - проверенная команда смены имени пользователя.
type UpdateUsernameDTO struct {
	ID       int64
	Username string
}

// ValidateUpdateUsername использует тот же набор предикатов имени, что и
// регистрация.
func ValidateUpdateUsername(props UpdateUsernameProps) []ErrorMsg {
	if props.Username == "" {
		return []ErrorMsg{{Field: FieldUsername, Message: MsgUsernameRequired}}
	}
	return usernameChecks(props.Username)
}

// NewUpdateUsernameDTO - фабрика команды смены имени.
func NewUpdateUsernameDTO(props UpdateUsernameProps) (*UpdateUsernameDTO, *FactoryError) {
	if isMissingID(props.ID) {
		return nil, preconditionError(MsgIDInvalid)
	}

	if errs := ValidateUpdateUsername(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &UpdateUsernameDTO{
		ID:       props.ID,
		Username: strings.TrimSpace(props.Username),
	}, nil
}
