package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo lectura del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// ubd_date es DATE y quantity puede ser INTEGER; se normalizan a texto ISO y NUMERIC.
var movementColumns = []string{
	"id", "product_id", "lot_number", "ubd_date::text AS ubd_date", "quantity::numeric AS quantity",
	"movement_type", "movement_reason", "from_location_id", "to_location_id", "created_at", "updated_at",
}

func movementsQuery() squirrel.SelectBuilder {
	return psql.Select(movementColumns...).From(movementsTable).OrderBy("created_at DESC")
}

func movementsByLocationQuery(locationID string) squirrel.SelectBuilder {
	return movementsQuery().Where(squirrel.Or{
		squirrel.Eq{"from_location_id": locationID},
		squirrel.Eq{"to_location_id": locationID},
	})
}

func movementsPageQuery(limit, offset int) squirrel.SelectBuilder {
	return movementsQuery().Limit(uint64(limit)).Offset(uint64(offset))
}

func movementsCountQuery() squirrel.SelectBuilder {
	return psql.Select("COUNT(*)").From(movementsTable)
}

// ListByLocation movimientos con locationID como origen o destino, más recientes primero.
func (r *StockMovementRepo) ListByLocation(ctx context.Context, locationID string) ([]entity.StockMovement, error) {
	return selectInto[entity.StockMovement](ctx, r.q, "movements by location", movementsByLocationQuery(locationID))
}

// ListAll todos los movimientos, más recientes primero.
func (r *StockMovementRepo) ListAll(ctx context.Context) ([]entity.StockMovement, error) {
	return selectInto[entity.StockMovement](ctx, r.q, "movements", movementsQuery())
}

// ListPage página del libro completo, más recientes primero.
func (r *StockMovementRepo) ListPage(ctx context.Context, limit, offset int) ([]entity.StockMovement, error) {
	return selectInto[entity.StockMovement](ctx, r.q, "movements page", movementsPageQuery(limit, offset))
}

// Count total de movimientos del libro.
func (r *StockMovementRepo) Count(ctx context.Context) (int, error) {
	sql, args, err := movementsCountQuery().ToSql()
	if err != nil {
		return 0, fmt.Errorf("build movements count query: %w", err)
	}
	var n int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", classify(err))
	}
	return n, nil
}
