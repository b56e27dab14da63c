package factories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblognest/internal/blog/dto"
)

func TestNewCreateCommentDTO(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		command, factoryErr := dto.NewCreateCommentDTO(dto.CreateCommentProps{
			AuthorID: 1,
			BlogID:   2,
			Content:  "неплохо",
		})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
		assert.Equal(t, "неплохо", command.Content)
	})

	t.Run("нулевой автор сообщается первым и единственным", func(t *testing.T) {
		command, factoryErr := dto.NewCreateCommentDTO(dto.CreateCommentProps{
			BlogID:  0,
			Content: "неплохо",
		})

		assert.Nil(t, command)
		require.NotNil(t, factoryErr)
		assert.True(t, factoryErr.IsPrecondition())
		assert.Equal(t, dto.MsgAuthorIDInvalid, factoryErr.Message)
	})

	t.Run("нулевая публикация отклоняется после автора", func(t *testing.T) {
		_, factoryErr := dto.NewCreateCommentDTO(dto.CreateCommentProps{
			AuthorID: 1,
			Content:  "неплохо",
		})

		require.NotNil(t, factoryErr)
		assert.Equal(t, dto.MsgBlogIDInvalid, factoryErr.Message)
	})

	t.Run("слишком короткий комментарий отклоняется", func(t *testing.T) {
		_, factoryErr := dto.NewCreateCommentDTO(dto.CreateCommentProps{
			AuthorID: 1,
			BlogID:   2,
			Content:  "a",
		})

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.MsgCommentTooShort, factoryErr.Errors[0].Message)
	})
}

func TestNewCreateCategoryDTO(t *testing.T) {
	t.Run("успешное создание команды с обрезкой имени", func(t *testing.T) {
		command, factoryErr := dto.NewCreateCategoryDTO(dto.CreateCategoryProps{Name: " Go разработка "})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
		assert.Equal(t, "Go разработка", command.Name)
	})

	t.Run("отсутствующее имя обязательно", func(t *testing.T) {
		_, factoryErr := dto.NewCreateCategoryDTO(dto.CreateCategoryProps{})

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.FieldName, factoryErr.Errors[0].Field)
		assert.Equal(t, dto.MsgNameRequired, factoryErr.Errors[0].Message)
	})

	t.Run("слишком короткое имя отклоняется", func(t *testing.T) {
		_, factoryErr := dto.NewCreateCategoryDTO(dto.CreateCategoryProps{Name: "ab"})

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.MsgNameTooShort, factoryErr.Errors[0].Message)
	})
}

func TestNewCreateDeleteLikeDTO(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		command, factoryErr := dto.NewCreateDeleteLikeDTO(dto.CreateDeleteLikeProps{UserID: 1, BlogID: 2})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
	})

	t.Run("нулевой пользователь сообщается первым", func(t *testing.T) {
		_, factoryErr := dto.NewCreateDeleteLikeDTO(dto.CreateDeleteLikeProps{BlogID: 2})

		require.NotNil(t, factoryErr)
		assert.True(t, factoryErr.IsPrecondition())
		assert.Equal(t, dto.MsgUserIDInvalid, factoryErr.Message)
	})

	t.Run("нулевая публикация отклоняется", func(t *testing.T) {
		_, factoryErr := dto.NewCreateDeleteLikeDTO(dto.CreateDeleteLikeProps{UserID: 1})

		require.NotNil(t, factoryErr)
		assert.Equal(t, dto.MsgBlogIDInvalid, factoryErr.Message)
	})
}

func TestNewUpdateUsernameDTO(t *testing.T) {
	t.Run("нулевой идентификатор отклоняется предусловием", func(t *testing.T) {
		_, factoryErr := dto.NewUpdateUsernameDTO(dto.UpdateUsernameProps{Username: "new_name"})

		require.NotNil(t, factoryErr)
		assert.True(t, factoryErr.IsPrecondition())
		assert.Equal(t, dto.MsgIDInvalid, factoryErr.Message)
	})

	t.Run("имя проверяется тем же набором правил", func(t *testing.T) {
		_, factoryErr := dto.NewUpdateUsernameDTO(dto.UpdateUsernameProps{ID: 1, Username: "bad name"})

		require.NotNil(t, factoryErr)
		assert.Equal(t, dto.MsgValidationErrors, factoryErr.Message)
		assert.NotEmpty(t, factoryErr.Errors)
	})

	t.Run("успешная команда", func(t *testing.T) {
		command, factoryErr := dto.NewUpdateUsernameDTO(dto.UpdateUsernameProps{ID: 1, Username: "new_name"})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
		assert.Equal(t, "new_name", command.Username)
	})
}

func TestNewUpdatePasswordDTO(t *testing.T) {
	t.Run("нулевой идентификатор отклоняется предусловием", func(t *testing.T) {
		_, factoryErr := dto.NewUpdatePasswordDTO(dto.UpdatePasswordProps{Password: "Passw0rd!"})

		require.NotNil(t, factoryErr)
		assert.True(t, factoryErr.IsPrecondition())
	})

	t.Run("политика пароля применяется полностью", func(t *testing.T) {
		_, factoryErr := dto.NewUpdatePasswordDTO(dto.UpdatePasswordProps{ID: 1, Password: "weak"})

		require.NotNil(t, factoryErr)
		assert.NotEmpty(t, factoryErr.Errors)
	})

	t.Run("успешная команда", func(t *testing.T) {
		command, factoryErr := dto.NewUpdatePasswordDTO(dto.UpdatePasswordProps{ID: 1, Password: "Passw0rd!"})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
	})
}
