package http

import (
	"github.com/gofiber/fiber/v2"

	appinventory "github.com/ablemeditech-dev/able-inventory-sub001/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Query *appinventory.QueryUseCase
}

// Router registra las rutas de la API. Todas son de solo lectura.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	locationHandler := NewLocationHandler(deps.Query)
	api.Get("/locations", locationHandler.List)
	api.Get("/movements", locationHandler.Movements)

	inventoryHandler := NewInventoryHandler(deps.Query)
	mountInventory(api.Group("/locations/:id/inventory"), inventoryHandler)

	// Bodega central: mismas vistas sin id en la ruta
	mountInventory(api.Group("/warehouse/inventory"), inventoryHandler)
}

func mountInventory(r fiber.Router, h *InventoryHandler) {
	r.Get("/", h.Inventory)
	r.Get("/cfn", h.CFNInventory)
	r.Get("/available", h.AvailableStock)
	r.Get("/lots", h.AvailableLots)
	r.Get("/ubd", h.UBDInventory)
	r.Get("/exchange", h.ExchangeInventory)
}
