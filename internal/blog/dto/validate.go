package dto

import (
	"regexp"
	"strings"
)

// Общие предикаты формата. Единый набор для CreateUser, UpdateUsername и
// UpdatePassword гарантирует одинаковые критерии приема на всей платформе.
var (
	usernameAllowedRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	whitespaceRegex      = regexp.MustCompile(`\s`)
	emailRegex           = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uppercaseRegex       = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex       = regexp.MustCompile(`[a-z]`)
	digitRegex           = regexp.MustCompile(`[0-9]`)
	specialCharRegex     = regexp.MustCompile(`[^A-Za-z0-9\s]`)
)

// Допустимые длины полей.
const (
	usernameMaxLength = 15
	passwordMinLength = 6
)

// isMissingID воспроизводит проверку обязательности числовых идентификаторов:
// ноль трактуется как отсутствующее значение, чтобы не путать его со
// значением по умолчанию.
func isMissingID(id int64) bool {
	return id == 0
}

// textChecks выполняет контентные проверки текстового поля: пустота после
// обрезки, минимальная и максимальная длина. Длина измеряется по исходной,
// необрезанной строке; проверка на пустоту - по обрезанной. Каждое нарушение
// добавляется независимо.
func textChecks(field, value string, minLen, maxLen int, emptyMsg, shortMsg, longMsg string) []ErrorMsg {
	var errs []ErrorMsg
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ErrorMsg{Field: field, Message: emptyMsg})
	}
	if len(value) < minLen {
		errs = append(errs, ErrorMsg{Field: field, Message: shortMsg})
	}
	if len(value) > maxLen {
		errs = append(errs, ErrorMsg{Field: field, Message: longMsg})
	}
	return errs
}

// usernameChecks - контентные проверки имени пользователя. Ошибка о пробелах
// добавляется всегда, когда они присутствуют, независимо от прочих нарушений.
func usernameChecks(username string) []ErrorMsg {
	var errs []ErrorMsg
	if whitespaceRegex.MatchString(username) {
		errs = append(errs, ErrorMsg{Field: FieldUsername, Message: MsgUsernameSpaces})
	}
	if !usernameAllowedRegex.MatchString(username) {
		errs = append(errs, ErrorMsg{Field: FieldUsername, Message: MsgUsernameInvalid})
	}
	if len(username) > usernameMaxLength {
		errs = append(errs, ErrorMsg{Field: FieldUsername, Message: MsgUsernameTooLong})
	}
	return errs
}

// emailChecks - контентная проверка адреса почты по либеральному шаблону
// local@domain.tld.
func emailChecks(email string) []ErrorMsg {
	if !emailRegex.MatchString(email) {
		return []ErrorMsg{{Field: FieldEmail, Message: MsgEmailInvalid}}
	}
	return nil
}

// passwordChecks - контентные проверки пароля: минимальная длина и четыре
// независимых предиката по классам символов.
func passwordChecks(password string) []ErrorMsg {
	var errs []ErrorMsg
	if len(password) < passwordMinLength {
		errs = append(errs, ErrorMsg{Field: FieldPassword, Message: MsgPasswordTooShort})
	}
	if !uppercaseRegex.MatchString(password) {
		errs = append(errs, ErrorMsg{Field: FieldPassword, Message: MsgPasswordUppercase})
	}
	if !lowercaseRegex.MatchString(password) {
		errs = append(errs, ErrorMsg{Field: FieldPassword, Message: MsgPasswordLowercase})
	}
	if !digitRegex.MatchString(password) {
		errs = append(errs, ErrorMsg{Field: FieldPassword, Message: MsgPasswordDigit})
	}
	if !specialCharRegex.MatchString(password) {
		errs = append(errs, ErrorMsg{Field: FieldPassword, Message: MsgPasswordSpecial})
	}
	return errs
}

// categoryIDsShapeChecks - проверка формы списка идентификаторов категорий:
// каждый элемент обязан быть действительным числовым идентификатором.
func categoryIDsShapeChecks(ids []int64) []ErrorMsg {
	for _, id := range ids {
		if isMissingID(id) {
			return []ErrorMsg{{Field: FieldCategories, Message: MsgCategoriesNotArray}}
		}
	}
	return nil
}
