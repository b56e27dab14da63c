package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"goblognest/pkg/logger"
)

const (
	errCtxOpeningMigrations  = "opening migration source"
	errCtxApplyingMigrations = "applying migrations"
)

// MigrateDSN накатывает миграции из источника migrationsPath (схема
// file://) на базу, заданную dsn. Отсутствие новых миграций не
// считается ошибкой.
func MigrateDSN(ctx context.Context, dsn string, migrationsPath string) error {
	log := logger.Log(ctx)

	m, err := migrate.New(migrationsPath, dsn)
	if err != nil {
		log.Error(ctx, "failed to open migration source",
			zap.Error(err), zap.String("path", migrationsPath))
		return fmt.Errorf("%s: %w", errCtxOpeningMigrations, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error(ctx, "failed to apply migrations", zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxApplyingMigrations, err)
	}

	log.Info(ctx, LogMigrationsApplied)
	return nil
}
