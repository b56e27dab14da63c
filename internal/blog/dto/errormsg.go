// Package dto реализует командные DTO: проверенные представления одной
// мутации. Фабрики пакета - единственный способ получить экземпляр DTO.
package dto

// ErrorMsg - атомарная единица обратной связи валидации: поле и сообщение.
// Валидаторы накапливают ноль или больше таких записей и никогда не
// возвращают ошибку Go для ожидаемых нарушений.
type ErrorMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FactoryError - неуспешный результат фабрики DTO. Является либо
// одиночным сообщением (нарушено предусловие идентичности, Errors пуст),
// либо общим сообщением с накопленными полевыми ошибками.
type FactoryError struct {
	Message string     `json:"message"`
	Errors  []ErrorMsg `json:"errors,omitempty"`
}

func (e *FactoryError) Error() string {
	return e.Message
}

// IsPrecondition сообщает, что фабрика отклонила ввод до полевой валидации.
func (e *FactoryError) IsPrecondition() bool {
	return len(e.Errors) == 0
}

// preconditionError строит отказ предусловия без полевых ошибок.
func preconditionError(message string) *FactoryError {
	return &FactoryError{Message: message}
}

// validationError оборачивает накопленные полевые ошибки общим сообщением.
func validationError(errs []ErrorMsg) *FactoryError {
	return &FactoryError{Message: MsgValidationErrors, Errors: errs}
}
