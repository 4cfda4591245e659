package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier operaciones comunes a *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Nombres de tablas del almacén externo.
const (
	movementsTable = "stock_movements"
	productsTable  = "products"
	clientsTable   = "clients"
	locationsTable = "hospitals"
)

// psql constructor de sentencias con placeholders $1, $2...
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// selectInto construye la sentencia y escanea todas las filas en dst.
func selectInto[T any](ctx context.Context, q Querier, what string, b squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", what, err)
	}
	out := []T{}
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, classify(err))
	}
	return out, nil
}

// whereIDs filtra por id IN (...) salvo que ids esté vacío (= todos).
func whereIDs(b squirrel.SelectBuilder, ids []string) squirrel.SelectBuilder {
	if len(ids) == 0 {
		return b
	}
	return b.Where(squirrel.Eq{"id": ids})
}
