package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo consulta de clientes sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func clientsQuery(ids []string) squirrel.SelectBuilder {
	return whereIDs(psql.Select("id", "company_name").From(clientsTable), ids)
}

// ListByIDs id y company_name. ids vacío = todos.
func (r *ClientRepo) ListByIDs(ctx context.Context, ids []string) ([]entity.Client, error) {
	return selectInto[entity.Client](ctx, r.q, "clients", clientsQuery(ids))
}
