package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appinventory "github.com/ablemeditech-dev/able-inventory-sub001/internal/application/inventory"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/infrastructure/observability"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/ablemeditech-dev/able-inventory-sub001/internal/interfaces/http"
	"github.com/ablemeditech-dev/able-inventory-sub001/pkg/config"
	"github.com/ablemeditech-dev/able-inventory-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("central_warehouse_id", cfg.Inventory.CentralWarehouseID).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	movementRepo := postgres.NewStockMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)

	metrics := observability.NewMetrics()
	queryUC := appinventory.NewQueryUseCase(
		appinventory.NewMovementFetcher(movementRepo, log.Zerolog()),
		appinventory.NewLookupService(productRepo, clientRepo, locationRepo, log.Zerolog()),
		appinventory.QueryConfig{
			CentralWarehouseID: cfg.Inventory.CentralWarehouseID,
			Timeout:            cfg.Inventory.RequestTimeout,
		},
		log.Zerolog(),
	).WithRecorder(metrics)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Inventory.RequestTimeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{Query: queryUC})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
