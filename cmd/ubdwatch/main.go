// Comando ubdwatch: revisa periódicamente el stock próximo a vencer de una ubicación
// y lo reporta por log.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	appinventory "github.com/ablemeditech-dev/able-inventory-sub001/internal/application/inventory"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/infrastructure/postgres"
	"github.com/ablemeditech-dev/able-inventory-sub001/pkg/config"
	"github.com/ablemeditech-dev/able-inventory-sub001/pkg/logger"
)

func main() {
	locationID := flag.String("location", "", "ubicación a revisar (vacío = bodega central)")
	within := flag.Int("days", 30, "reportar lotes que vencen dentro de N días")
	every := flag.Duration("interval", 10*time.Minute, "frecuencia de revisión")
	search := flag.String("q", "", "búsqueda por CFN, lote o cliente")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})
	watchLog := log.Component("ubdwatch")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	queryUC := appinventory.NewQueryUseCase(
		appinventory.NewMovementFetcher(postgres.NewStockMovementRepository(pool), log.Zerolog()),
		appinventory.NewLookupService(
			postgres.NewProductRepository(pool),
			postgres.NewClientRepository(pool),
			postgres.NewLocationRepository(pool),
			log.Zerolog(),
		),
		appinventory.QueryConfig{CentralWarehouseID: cfg.Inventory.CentralWarehouseID, Timeout: cfg.Inventory.RequestTimeout},
		log.Zerolog(),
	)
	target := *locationID
	if target == "" {
		target = queryUC.CentralWarehouseID()
	}

	view := appinventory.NewView(func(ctx context.Context) ([]inventory.UBDInventoryItem, error) {
		return queryUC.UBDInventory(ctx, target)
	}, appinventory.MatchUBDItem)
	view.SetSearch(*search)

	ticker := time.NewTicker(*every)
	defer ticker.Stop()
	for {
		check(ctx, view, *within, watchLog.With().Str("location_id", target).Logger())
		select {
		case <-ctx.Done():
			watchLog.Info().Msg("revisión detenida")
			return
		case <-ticker.C:
		}
	}
}

func check(ctx context.Context, view *appinventory.View[inventory.UBDInventoryItem], within int, log zerolog.Logger) {
	if err := view.Refresh(ctx); err != nil {
		if !errors.Is(err, appinventory.ErrStaleResponse) {
			log.Error().Err(err).Msg("recargar inventario por vencer")
		}
		return
	}
	expiring := 0
	for _, it := range view.State().Items {
		if it.DaysUntilExpiry > within {
			break // ordenado por días restantes
		}
		expiring++
		log.Warn().
			Str("cfn", it.CFN).
			Str("lot_number", it.LotNumber).
			Str("ubd_date", it.UBDDate).
			Str("quantity", it.Quantity.String()).
			Int("days_until_expiry", it.DaysUntilExpiry).
			Msg("lote próximo a vencer")
	}
	log.Info().Int("expiring", expiring).Int("within_days", within).Msg("revisión completada")
}
