package db_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undefinedlabs/go-mpatch"

	"goblognest/internal/blog/config"
	"goblognest/internal/blog/db"
	"goblognest/pkg/db/postgres"
	"goblognest/pkg/logger"
)

const (
	ErrUnpatchMsg        = "failed to unpatch"
	ErrPatchCloseMsg     = "error patching Close method"
	CloseMethodCalledMsg = "close method should be called"
	MigrationsPath       = "./migrations"
)

func safeUnpatch(t *testing.T, p *mpatch.Patch) {
	t.Helper()
	if err := p.Unpatch(); err != nil {
		t.Errorf("%s: %v", ErrUnpatchMsg, err)
	}
}

func testConfig() *config.PostgresConfig {
	return &config.PostgresConfig{
		Host:     "testhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		Database: "testdb",
		MinConn:  1,
		MaxConn:  10,
	}
}

func TestNew(t *testing.T) {
	err := logger.InitGlobalLoggerWithLevel(logger.Development, "info")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("new should apply migrations before connecting", func(t *testing.T) {
		migrateCalled := false

		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
			migrateCalled = true
			return nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
			require.True(t, migrateCalled, "migrations must run before pool creation")
			return &postgres.Database{}, nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, newPatch)

		database, err := db.New(ctx, testConfig(), MigrationsPath)
		require.NoError(t, err)
		require.NotNil(t, database)
	})

	t.Run("migration failure aborts initialization", func(t *testing.T) {
		migrateErr := errors.New("migration failed")

		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
			return migrateErr
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		database, err := db.New(ctx, testConfig(), MigrationsPath)
		assert.Nil(t, database)
		require.Error(t, err)
		assert.ErrorIs(t, err, migrateErr)
	})

	t.Run("connection failure is reported", func(t *testing.T) {
		connErr := errors.New("connection refused")

		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
			return nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
			return nil, connErr
		})
		require.NoError(t, err)
		defer safeUnpatch(t, newPatch)

		database, err := db.New(ctx, testConfig(), MigrationsPath)
		assert.Nil(t, database)
		assert.ErrorIs(t, err, connErr)
	})
}

func TestClose(t *testing.T) {
	err := logger.InitGlobalLoggerWithLevel(logger.Development, "info")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("close should call Close on the internal database", func(t *testing.T) {
		closeCalled := false

		patch, err := mpatch.PatchInstanceMethodByName(reflect.TypeOf(&postgres.Database{}), "Close", func(_ *postgres.Database, _ context.Context) {
			closeCalled = true
		})
		require.NoError(t, err, ErrPatchCloseMsg)
		defer safeUnpatch(t, patch)

		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
			return nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
			return &postgres.Database{}, nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, newPatch)

		database, err := db.New(ctx, testConfig(), MigrationsPath)
		require.NoError(t, err)

		database.Close(ctx)

		require.True(t, closeCalled, CloseMethodCalledMsg)
	})
}
