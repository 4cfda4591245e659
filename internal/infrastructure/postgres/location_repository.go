package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo consulta de hospitales/bodegas sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func locationsQuery() squirrel.SelectBuilder {
	return psql.Select("id", "hospital_name").From(locationsTable).OrderBy("hospital_name")
}

// List ubicaciones ordenadas por nombre.
func (r *LocationRepo) List(ctx context.Context) ([]entity.Location, error) {
	return selectInto[entity.Location](ctx, r.q, "locations", locationsQuery())
}
