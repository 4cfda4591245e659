package inventory

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/repository"
)

// MovementFetcher lee el libro de movimientos. Si la consulta falla devuelve lista vacía.
type MovementFetcher struct {
	repo repository.StockMovementRepository
	log  zerolog.Logger
}

// NewMovementFetcher construye el lector de movimientos.
func NewMovementFetcher(repo repository.StockMovementRepository, log zerolog.Logger) *MovementFetcher {
	return &MovementFetcher{repo: repo, log: log.With().Str("component", "movements").Logger()}
}

// ByLocation movimientos con la ubicación como origen o destino, del más reciente al más antiguo.
func (f *MovementFetcher) ByLocation(ctx context.Context, locationID string) []entity.StockMovement {
	return fetchOr(ctx, f.log.With().Str("location_id", locationID).Logger(), "movements_by_location",
		[]entity.StockMovement{},
		func(ctx context.Context) ([]entity.StockMovement, error) {
			return f.repo.ListByLocation(ctx, locationID)
		})
}

// All todos los movimientos del sistema.
func (f *MovementFetcher) All(ctx context.Context) []entity.StockMovement {
	return fetchOr(ctx, f.log, "movements_all", []entity.StockMovement{}, f.repo.ListAll)
}

// Page una página del libro completo y el total de movimientos. La página y el conteo
// se consultan en paralelo y cada uno degrada por separado (vacío / 0).
func (f *MovementFetcher) Page(ctx context.Context, limit, offset int) ([]entity.StockMovement, int) {
	var (
		items []entity.StockMovement
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items = fetchOr(gctx, f.log, "movements_page", []entity.StockMovement{},
			func(ctx context.Context) ([]entity.StockMovement, error) {
				return f.repo.ListPage(ctx, limit, offset)
			})
		return nil
	})
	g.Go(func() error {
		total = fetchOr(gctx, f.log, "movements_count", 0, f.repo.Count)
		return nil
	})
	_ = g.Wait()
	return items, total
}

// productIDs IDs de producto referenciados por los movimientos, sin duplicados.
func productIDs(movements []entity.StockMovement) []string {
	ids := make([]string, 0, len(movements))
	for _, m := range movements {
		ids = append(ids, m.ProductID)
	}
	return uniqueIDs(ids)
}
