package dto

// Каталог сообщений валидации. Неизменяемая статическая конфигурация:
// одинаковые правила обязаны давать одинаковые формулировки во всем API.
const (
	MsgValidationErrors = "Validation errors in request"

	MsgIDInvalid       = "Id must be a valid number"
	MsgAuthorIDInvalid = "AuthorId must be a valid number"
	MsgBlogIDInvalid   = "BlogId must be a valid number"
	MsgUserIDInvalid   = "UserId must be a valid number"

	MsgTitleRequired = "Title is required"
	MsgTitleEmpty    = "Title cannot be empty"
	MsgTitleTooShort = "Title must be at least 5 characters long"
	MsgTitleTooLong  = "Title must be at most 150 characters long"

	MsgContentRequired = "Content is required"
	MsgContentEmpty    = "Content cannot be empty"
	MsgContentTooShort = "Content must be at least 15 characters long"
	MsgContentTooLong  = "Content must be at most 500 characters long"

	MsgCategoriesRequired = "CategoriesIds is required"
	MsgCategoriesNotArray = "CategoriesIds must be an array of numbers"

	MsgNameRequired = "Name is required"
	MsgNameEmpty    = "Name cannot be empty"
	MsgNameTooShort = "Name must be at least 3 characters long"
	MsgNameTooLong  = "Name must be at most 30 characters long"

	MsgCommentRequired = "Content is required"
	MsgCommentEmpty    = "Content cannot be empty"
	MsgCommentTooShort = "Content must be at least 2 characters long"
	MsgCommentTooLong  = "Content must be at most 40 characters long"

	MsgUsernameRequired = "Username is required"
	MsgUsernameSpaces   = "Username cannot contain spaces"
	MsgUsernameInvalid  = "Username can only contain letters, numbers and underscores"
	MsgUsernameTooLong  = "Username must be at most 15 characters long"

	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Email format is not valid"

	MsgPasswordRequired  = "Password is required"
	MsgPasswordTooShort  = "Password must be at least 6 characters long"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordDigit     = "Password must contain at least one number"
	MsgPasswordSpecial   = "Password must contain at least one special character"
)

// Имена полей в том виде, в каком их видит клиент API.
const (
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldCategories = "categoriesIds"
	FieldName       = "name"
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPassword   = "password"
)
