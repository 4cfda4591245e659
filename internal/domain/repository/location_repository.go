package repository

import (
	"context"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// LocationRepository define el puerto de consulta de ubicaciones (hospitales y bodegas).
type LocationRepository interface {
	// List devuelve todas las ubicaciones ordenadas por hospital_name.
	List(ctx context.Context) ([]entity.Location, error)
}
