package repository

import (
	"context"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// ClientRepository define el puerto de consulta de clientes/proveedores (DIP).
type ClientRepository interface {
	// ListByIDs devuelve id y company_name. ids vacío = todos.
	ListByIDs(ctx context.Context, ids []string) ([]entity.Client, error)
}
