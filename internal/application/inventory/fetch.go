package inventory

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain"
)

// fetchOr ejecuta una consulta al almacén y, si falla, registra el error y devuelve def.
// Las vistas de inventario son de solo lectura: una consulta caída degrada la pantalla a
// "desconocido/vacío" en lugar de romperla. Los parámetros rechazados por el almacén
// (domain.ErrInvalidInput) se marcan con invalid_input en el log.
func fetchOr[T any](ctx context.Context, log zerolog.Logger, what string, def T, fetch func(context.Context) (T, error)) T {
	v, err := fetch(ctx)
	if err != nil {
		ev := log.Warn().Err(err).Str("fetch", what)
		if errors.Is(err, domain.ErrInvalidInput) {
			ev = ev.Bool("invalid_input", true)
		}
		ev.Msg("consulta fallida, se usa valor vacío")
		return def
	}
	return v
}
