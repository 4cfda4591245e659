package repository

import (
	"context"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// ProductRepository define el puerto de consulta de productos (DIP).
type ProductRepository interface {
	// ListByIDs devuelve id, cfn, upn, description y client_id. ids vacío = todos.
	ListByIDs(ctx context.Context, ids []string) ([]entity.Product, error)
}
