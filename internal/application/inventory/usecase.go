package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
)

// QueryConfig parámetros del caso de uso de consultas.
type QueryConfig struct {
	// CentralWarehouseID ubicación de la bodega central (inyectada por configuración).
	CentralWarehouseID string
	// Timeout para el conjunto de consultas de una vista. 0 = sin límite propio.
	Timeout time.Duration
}

// Recorder recibe métricas de las vistas. La implementación Prometheus vive en infraestructura.
type Recorder interface {
	SkippedMovements(reason string, n int)
	ObserveView(view string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) SkippedMovements(string, int) {}
func (nopRecorder) ObserveView(string, time.Duration) {}

// QueryUseCase arma las vistas de inventario de una ubicación: lee movimientos y diccionarios
// del almacén externo y los pliega con el motor de inventario. Cada llamada vuelve a consultar
// todo; no hay caché entre llamadas.
type QueryUseCase struct {
	movements *MovementFetcher
	lookups   *LookupService
	cfg       QueryConfig
	log       zerolog.Logger
	rec       Recorder
	now       func() time.Time
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(movements *MovementFetcher, lookups *LookupService, cfg QueryConfig, log zerolog.Logger) *QueryUseCase {
	return &QueryUseCase{
		movements: movements,
		lookups:   lookups,
		cfg:       cfg,
		log:       log.With().Str("component", "inventory_query").Logger(),
		rec:       nopRecorder{},
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj usado para los días hasta vencimiento.
func (uc *QueryUseCase) WithClock(now func() time.Time) *QueryUseCase {
	uc.now = now
	return uc
}

// WithRecorder registra métricas de cada vista en r.
func (uc *QueryUseCase) WithRecorder(r Recorder) *QueryUseCase {
	if r != nil {
		uc.rec = r
	}
	return uc
}

// CentralWarehouseID ubicación configurada como bodega central.
func (uc *QueryUseCase) CentralWarehouseID() string {
	return uc.cfg.CentralWarehouseID
}

// loadPlan qué necesita cada vista además de los movimientos.
type loadPlan struct {
	view         string
	allProducts  bool // catálogo completo (vista por CFN)
	clients      bool
	locationName bool
}

type snapshot struct {
	movements    []entity.StockMovement
	products     inventory.ProductMap
	clients      inventory.ClientMap
	locationName string
}

func (uc *QueryUseCase) load(ctx context.Context, locationID string, plan loadPlan) (snapshot, error) {
	if locationID == "" {
		return snapshot{}, domain.ErrInvalidInput
	}
	defer func(start time.Time) { uc.rec.ObserveView(plan.view, time.Since(start)) }(time.Now())
	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	snap := snapshot{movements: uc.movements.ByLocation(ctx, locationID)}

	// Productos y ubicación no dependen entre sí; los clientes dependen de los productos.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		switch ids := productIDs(snap.movements); {
		case plan.allProducts:
			snap.products = uc.lookups.ProductMap(gctx, nil)
		case len(ids) == 0:
			snap.products = inventory.ProductMap{}
		default:
			snap.products = uc.lookups.ProductMap(gctx, ids)
		}
		return nil
	})
	if plan.locationName {
		g.Go(func() error {
			snap.locationName = uc.lookups.LocationMap(gctx)[locationID].HospitalName
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}

	if plan.clients {
		snap.clients = uc.lookups.ClientMapFor(ctx, snap.products)
	} else {
		snap.clients = inventory.ClientMap{}
	}

	uc.warnSkipped(locationID, snap)
	return snap, nil
}

// warnSkipped registra los movimientos que no aportan inventario por datos inconsistentes.
func (uc *QueryUseCase) warnSkipped(locationID string, snap snapshot) {
	skipped := inventory.SkippedMovements(snap.movements, snap.products)
	if len(skipped) == 0 {
		return
	}
	ev := uc.log.Warn().Str("location_id", locationID)
	total := 0
	for reason, n := range skipped {
		ev = ev.Int(string(reason), n)
		uc.rec.SkippedMovements(string(reason), n)
		total += n
	}
	ev.Int("skipped_movements", total).Msg("movimientos descartados al calcular inventario")
}

// Inventory stock por (cfn, lote, vencimiento) de la ubicación.
func (uc *QueryUseCase) Inventory(ctx context.Context, locationID string, opts inventory.Options) ([]inventory.InventoryItem, error) {
	snap, err := uc.load(ctx, locationID, loadPlan{view: "inventory", clients: true})
	if err != nil {
		return nil, err
	}
	return inventory.CalculateInventory(snap.movements, locationID, snap.products, snap.clients, opts), nil
}

// CFNInventory total por CFN, con todos los CFN del catálogo.
func (uc *QueryUseCase) CFNInventory(ctx context.Context, locationID string) ([]inventory.CFNInventoryItem, error) {
	snap, err := uc.load(ctx, locationID, loadPlan{view: "cfn", allProducts: true, clients: true})
	if err != nil {
		return nil, err
	}
	return inventory.CalculateCFNInventory(snap.movements, locationID, snap.products, snap.clients), nil
}

// AvailableStock totales positivos por CFN.
func (uc *QueryUseCase) AvailableStock(ctx context.Context, locationID string) ([]inventory.AvailableStock, error) {
	snap, err := uc.load(ctx, locationID, loadPlan{view: "available"})
	if err != nil {
		return nil, err
	}
	return inventory.CalculateAvailableStock(snap.movements, locationID, snap.products), nil
}

// AvailableLots lotes con stock positivo del CFN dado.
func (uc *QueryUseCase) AvailableLots(ctx context.Context, locationID, cfn string) ([]inventory.LotInfo, error) {
	if cfn == "" {
		return nil, domain.ErrInvalidInput
	}
	snap, err := uc.load(ctx, locationID, loadPlan{view: "lots"})
	if err != nil {
		return nil, err
	}
	return inventory.CalculateAvailableLots(snap.movements, locationID, cfn, snap.products), nil
}

// UBDInventory filas con días hasta vencimiento, lo más próximo primero.
func (uc *QueryUseCase) UBDInventory(ctx context.Context, locationID string) ([]inventory.UBDInventoryItem, error) {
	snap, err := uc.load(ctx, locationID, loadPlan{view: "ubd", clients: true, locationName: true})
	if err != nil {
		return nil, err
	}
	return inventory.CalculateUBDInventory(snap.movements, locationID, snap.locationName, snap.products, snap.clients, uc.now()), nil
}

// ExchangeInventory inventario con IDs sintéticos por fila.
func (uc *QueryUseCase) ExchangeInventory(ctx context.Context, locationID string) ([]inventory.ExchangeInventoryItem, error) {
	snap, err := uc.load(ctx, locationID, loadPlan{view: "exchange", clients: true})
	if err != nil {
		return nil, err
	}
	return inventory.CalculateExchangeInventory(snap.movements, locationID, snap.products, snap.clients), nil
}

// Movements libro completo del sistema, del más reciente al más antiguo.
func (uc *QueryUseCase) Movements(ctx context.Context) []entity.StockMovement {
	return uc.movements.All(ctx)
}

// MovementPage página del libro del sistema y total de movimientos.
func (uc *QueryUseCase) MovementPage(ctx context.Context, limit, offset int) ([]entity.StockMovement, int) {
	return uc.movements.Page(ctx, limit, offset)
}

// Locations ubicaciones ordenadas por nombre.
func (uc *QueryUseCase) Locations(ctx context.Context) []entity.Location {
	return uc.lookups.Locations(ctx)
}
