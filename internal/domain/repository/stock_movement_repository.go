package repository

import (
	"context"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// StockMovementRepository define el puerto de lectura del libro de movimientos (DIP).
// El libro lo mantiene un sistema externo; aquí no hay escrituras.
type StockMovementRepository interface {
	// ListByLocation devuelve los movimientos donde locationID es origen o destino,
	// del más reciente al más antiguo.
	ListByLocation(ctx context.Context, locationID string) ([]entity.StockMovement, error)
	// ListAll devuelve todos los movimientos del sistema, del más reciente al más antiguo.
	ListAll(ctx context.Context) ([]entity.StockMovement, error)
	// ListPage devuelve una página del libro completo con el mismo orden que ListAll.
	ListPage(ctx context.Context, limit, offset int) ([]entity.StockMovement, error)
	// Count devuelve el número total de movimientos del sistema.
	Count(ctx context.Context) (int, error)
}
