package dto

// UpdatePasswordProps - необработанный ввод запроса смены пароля.
type UpdatePasswordProps struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// UpdatePasswordDTO - проверенная команда смены пароля. Password содержит
// открытый текст; хэширование выполняет use-case.
type UpdatePasswordDTO struct {
	ID       int64
	Password string
}

// ValidateUpdatePassword использует тот же набор предикатов пароля, что и
// регистрация.
func ValidateUpdatePassword(props UpdatePasswordProps) []ErrorMsg {
	if props.Password == "" {
		return []ErrorMsg{{Field: FieldPassword, Message: MsgPasswordRequired}}
	}
	return passwordChecks(props.Password)
}

// NewUpdatePasswordDTO - фабрика команды смены пароля.
func NewUpdatePasswordDTO(props UpdatePasswordProps) (*UpdatePasswordDTO, *FactoryError) {
	if isMissingID(props.ID) {
		return nil, preconditionError(MsgIDInvalid)
	}

	if errs := ValidateUpdatePassword(props); len(errs) > 0 {
		return nil, validationError(errs)
	}

	return &UpdatePasswordDTO{ID: props.ID, Password: props.Password}, nil
}
