// Package postgres содержит конкретные datasource-реализации для Postgres.
// Именно здесь живут бизнес-правила ядра: проверки уникальности, мягкое
// удаление, переключение лайков и кулдаун смены имени.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool.
// Шов для подмены пула в тестах (pgxmock).
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// Код Postgres для нарушения ограничения уникальности.
const uniqueViolationCode = "23505"
