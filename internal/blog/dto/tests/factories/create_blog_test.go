package factories_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblognest/internal/blog/dto"
)

func validBlogProps() dto.CreateBlogProps {
	return dto.CreateBlogProps{
		AuthorID:      7,
		Title:         "Заголовок публикации",
		Content:       "Достаточно длинное содержимое публикации",
		CategoriesIDs: []int64{1, 2},
	}
}

func TestNewCreateBlogDTO(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		command, factoryErr := dto.NewCreateBlogDTO(validBlogProps())

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
		assert.Equal(t, int64(7), command.AuthorID)
		assert.Equal(t, []int64{1, 2}, command.CategoriesIDs)
	})

	t.Run("нулевой автор отклоняется до валидации полей", func(t *testing.T) {
		props := validBlogProps()
		props.AuthorID = 0

		command, factoryErr := dto.NewCreateBlogDTO(props)

		assert.Nil(t, command)
		require.NotNil(t, factoryErr)
		assert.True(t, factoryErr.IsPrecondition())
		assert.Equal(t, dto.MsgAuthorIDInvalid, factoryErr.Message)
	})

	t.Run("все отсутствующие поля сообщаются пакетом по порядку", func(t *testing.T) {
		props := dto.CreateBlogProps{AuthorID: 7}

		command, factoryErr := dto.NewCreateBlogDTO(props)

		assert.Nil(t, command)
		require.NotNil(t, factoryErr)
		assert.Equal(t, dto.MsgValidationErrors, factoryErr.Message)
		require.Len(t, factoryErr.Errors, 3)
		assert.Equal(t, dto.FieldTitle, factoryErr.Errors[0].Field)
		assert.Equal(t, dto.MsgTitleRequired, factoryErr.Errors[0].Message)
		assert.Equal(t, dto.FieldContent, factoryErr.Errors[1].Field)
		assert.Equal(t, dto.FieldCategories, factoryErr.Errors[2].Field)
	})

	t.Run("при отсутствующем поле контентные проверки пропускаются", func(t *testing.T) {
		props := validBlogProps()
		props.Title = "ab" // слишком короткий, но не пустой
		props.Content = ""

		_, factoryErr := dto.NewCreateBlogDTO(props)

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.FieldContent, factoryErr.Errors[0].Field)
		assert.Equal(t, dto.MsgContentRequired, factoryErr.Errors[0].Message)
	})

	t.Run("нечисловой элемент набора рубрик прерывает до контентных проверок", func(t *testing.T) {
		props := validBlogProps()
		props.Title = "ab"
		props.CategoriesIDs = []int64{1, 0}

		_, factoryErr := dto.NewCreateBlogDTO(props)

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.MsgCategoriesNotArray, factoryErr.Errors[0].Message)
	})

	t.Run("короткие заголовок и содержимое сообщаются независимо", func(t *testing.T) {
		props := validBlogProps()
		props.Title = "ab"
		props.Content = "коротко"

		_, factoryErr := dto.NewCreateBlogDTO(props)

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 2)
		assert.Equal(t, dto.MsgTitleTooShort, factoryErr.Errors[0].Message)
		assert.Equal(t, dto.MsgContentTooShort, factoryErr.Errors[1].Message)
	})

	t.Run("длина меряется до обрезки, хранится обрезанное", func(t *testing.T) {
		props := validBlogProps()
		props.Title = "  abc  " // 7 символов с пробелами, проходит минимум 5

		command, factoryErr := dto.NewCreateBlogDTO(props)

		require.Nil(t, factoryErr)
		assert.Equal(t, "abc", command.Title)
	})

	t.Run("заголовок из одних пробелов пустой", func(t *testing.T) {
		props := validBlogProps()
		props.Title = strings.Repeat(" ", 10)

		_, factoryErr := dto.NewCreateBlogDTO(props)

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.MsgTitleEmpty, factoryErr.Errors[0].Message)
	})

	t.Run("слишком длинный заголовок отклоняется", func(t *testing.T) {
		props := validBlogProps()
		props.Title = strings.Repeat("я", 151)

		_, factoryErr := dto.NewCreateBlogDTO(props)

		require.NotNil(t, factoryErr)
		require.Len(t, factoryErr.Errors, 1)
		assert.Equal(t, dto.MsgTitleTooLong, factoryErr.Errors[0].Message)
	})
}

func TestNewUpdateBlogDTO(t *testing.T) {
	t.Run("нулевой идентификатор публикации отклоняется предусловием", func(t *testing.T) {
		command, factoryErr := dto.NewUpdateBlogDTO(dto.UpdateBlogProps{
			Title:         "Заголовок публикации",
			Content:       "Достаточно длинное содержимое публикации",
			CategoriesIDs: []int64{1},
		})

		assert.Nil(t, command)
		require.NotNil(t, factoryErr)
		assert.True(t, factoryErr.IsPrecondition())
		assert.Equal(t, dto.MsgBlogIDInvalid, factoryErr.Message)
	})

	t.Run("валидация полей совпадает с созданием", func(t *testing.T) {
		command, factoryErr := dto.NewUpdateBlogDTO(dto.UpdateBlogProps{
			BlogID:        3,
			Title:         "Заголовок публикации",
			Content:       "Достаточно длинное содержимое публикации",
			CategoriesIDs: []int64{1},
		})

		require.Nil(t, factoryErr)
		require.NotNil(t, command)
		assert.Equal(t, int64(3), command.BlogID)
	})
}
