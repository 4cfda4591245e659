package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo consulta de productos sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func productsQuery(ids []string) squirrel.SelectBuilder {
	return whereIDs(psql.Select("id", "cfn", "upn", "description", "client_id").From(productsTable), ids)
}

// ListByIDs proyección mínima de productos. ids vacío = todos.
func (r *ProductRepo) ListByIDs(ctx context.Context, ids []string) ([]entity.Product, error) {
	return selectInto[entity.Product](ctx, r.q, "products", productsQuery(ids))
}
