package categorydatasource_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblognest/internal/blog/adapters/postgres"
	"goblognest/internal/blog/domain/apperr"
	"goblognest/internal/blog/dto"
	"goblognest/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestCategoryDatasource_Create(t *testing.T) {
	ctx := testContext(t)

	command := &dto.CreateCategoryDTO{Name: "golang"}

	t.Run("успешное создание рубрики", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM categories WHERE name = \$1`).
			WithArgs(command.Name).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		mock.ExpectQuery(`INSERT INTO categories \(name\)`).
			WithArgs(command.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), command.Name))

		datasource := postgres.NewCategoryDatasource(mock)
		category, err := datasource.Create(ctx, command)

		require.NoError(t, err)
		assert.Equal(t, int64(1), category.ID)
		assert.Equal(t, "golang", category.Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("занятое имя отклоняется", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM categories WHERE name = \$1`).
			WithArgs(command.Name).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		datasource := postgres.NewCategoryDatasource(mock)
		category, err := datasource.Create(ctx, command)

		assert.Nil(t, category)
		appErr, ok := apperr.FromError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, postgres.MsgCategoryExists, appErr.Message)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryDatasource_GetAll(t *testing.T) {
	ctx := testContext(t)

	t.Run("список рубрик по возрастанию идентификатора", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name FROM categories WHERE deleted_at IS NULL ORDER BY id`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
				AddRow(int64(1), "golang").
				AddRow(int64(2), "databases"))

		datasource := postgres.NewCategoryDatasource(mock)
		categories, err := datasource.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "golang", categories[0].Name)
		assert.Equal(t, "databases", categories[1].Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустой список без рубрик", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name FROM categories WHERE deleted_at IS NULL ORDER BY id`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		datasource := postgres.NewCategoryDatasource(mock)
		categories, err := datasource.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, categories)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
