package factories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblognest/internal/blog/dto"
)

func validUserProps() dto.CreateUserProps {
	return dto.CreateUserProps{
		Username: "blogger_01",
		Email:    "Blogger@Example.com",
		Password: "Passw0rd!",
	}
}

func TestNewCreateUserDTO(t *testing.T) {
	t.Run("успешная регистрация нормализует почту", func(t *testing.T) {
		command, factoryErr := dto.NewCreateUserDTO(validUserProps())

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
		assert.Equal(t, "blogger@example.com", command.Email)
		assert.Equal(t, "blogger_01", command.Username)
		assert.Equal(t, "Passw0rd!", command.Password, "пароль остается открытым текстом до use-case")
	})

	t.Run("все отсутствующие поля сообщаются пакетом по порядку", func(t *testing.T) {
		command, factoryErr := dto.NewCreateUserDTO(dto.CreateUserProps{})

		assert.Nil(t, command)
		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 3)
		assert.Equal(t, dto.FieldUsername, factoryErr.Errors[0].Field)
		assert.Equal(t, dto.FieldEmail, factoryErr.Errors[1].Field)
		assert.Equal(t, dto.FieldPassword, factoryErr.Errors[2].Field)
	})

	t.Run("имя с пробелом дает обе ошибки имени", func(t *testing.T) {
		props := validUserProps()
		props.Username = "bad name"

		_, factoryErr := dto.NewCreateUserDTO(props)

		require.NotNil(t, factoryErr)
		messages := make([]string, 0, len(factoryErr.Errors))
		for _, e := range factoryErr.Errors {
			messages = append(messages, e.Message)
		}
		assert.Contains(t, messages, dto.MsgUsernameSpaces)
		assert.Contains(t, messages, dto.MsgUsernameInvalid)
	})

	t.Run("слишком длинное имя отклоняется", func(t *testing.T) {
		props := validUserProps()
		props.Username = "very_long_username"

		_, factoryErr := dto.NewCreateUserDTO(props)

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.MsgUsernameTooLong, factoryErr.Errors[0].Message)
	})

	t.Run("некорректная почта отклоняется", func(t *testing.T) {
		props := validUserProps()
		props.Email = "not-an-email"

		_, factoryErr := dto.NewCreateUserDTO(props)

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.MsgEmailInvalid, factoryErr.Errors[0].Message)
	})

	t.Run("слабый пароль собирает все нарушения сразу", func(t *testing.T) {
		props := validUserProps()
		props.Password = "abc"

		_, factoryErr := dto.NewCreateUserDTO(props)

		require.NotNil(t, factoryErr)
		messages := make([]string, 0, len(factoryErr.Errors))
		for _, e := range factoryErr.Errors {
			messages = append(messages, e.Message)
		}
		assert.Contains(t, messages, dto.MsgPasswordTooShort)
		assert.Contains(t, messages, dto.MsgPasswordUppercase)
		assert.Contains(t, messages, dto.MsgPasswordDigit)
		assert.Contains(t, messages, dto.MsgPasswordSpecial)
		assert.NotContains(t, messages, dto.MsgPasswordLowercase)
	})
}

func TestNewLoginUserDTO(t *testing.T) {
	t.Run("успешный вход", func(t *testing.T) {
		command, factoryErr := dto.NewLoginUserDTO(dto.LoginUserProps{
			Email:    "user@example.com",
			Password: "whatever",
		})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
	})

	t.Run("политика пароля на входе не проверяется", func(t *testing.T) {
		command, factoryErr := dto.NewLoginUserDTO(dto.LoginUserProps{
			Email:    "user@example.com",
			Password: "x",
		})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
	})

	t.Run("отсутствующие поля сообщаются пакетом", func(t *testing.T) {
		command, factoryErr := dto.NewLoginUserDTO(dto.LoginUserProps{})

		assert.Nil(t, command)
		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 2)
		assert.Equal(t, dto.FieldEmail, factoryErr.Errors[0].Field)
		assert.Equal(t, dto.FieldPassword, factoryErr.Errors[1].Field)
	})
}
