package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/application/dto"
	appinventory "github.com/ablemeditech-dev/able-inventory-sub001/internal/application/inventory"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
)

// InventoryHandler expone las vistas de inventario de una ubicación.
// Montado bajo /locations/:id usa el id de la ruta; bajo /warehouse usa la bodega central.
type InventoryHandler struct {
	uc *appinventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) locationID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	if raw == "" {
		return h.uc.CentralWarehouseID(), nil
	}
	return parseLocationID(raw)
}

// inventoryOptions lee sort_by, positive_only e include_zero; sin parámetros = DefaultOptions.
func inventoryOptions(c *fiber.Ctx) (inventory.Options, error) {
	opts := inventory.DefaultOptions()
	key, err := inventory.ParseSortKey(c.Query("sort_by"))
	if err != nil {
		return opts, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	opts.SortBy = key
	opts.FilterPositiveOnly = c.QueryBool("positive_only", opts.FilterPositiveOnly)
	opts.IncludeZeroQuantity = c.QueryBool("include_zero", opts.IncludeZeroQuantity)
	return opts, nil
}

// Inventory godoc
// @Summary      Inventario por CFN, lote y vencimiento
// @Tags         inventory
// @Produce      json
// @Param        id             path   string  true   "ID de la ubicación (UUID)"
// @Param        sort_by        query  string  false  "cfn | lot | ubd | quantity | cfn_numeric"  default(cfn)
// @Param        positive_only  query  bool    false  "Solo cantidades positivas"   default(true)
// @Param        include_zero   query  bool    false  "Incluir cantidades en cero"  default(false)
// @Param        q              query  string  false  "Búsqueda en CFN, lote, cliente y descripción"
// @Success      200  {object}  dto.ListResponse[inventory.InventoryItem]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory [get]
func (h *InventoryHandler) Inventory(c *fiber.Ctx) error {
	locationID, err := h.locationID(c)
	if err != nil {
		return respondError(c, err)
	}
	opts, err := inventoryOptions(c)
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.Inventory(c.UserContext(), locationID, opts)
	if err != nil {
		return respondError(c, err)
	}
	items = appinventory.Filter(items, c.Query("q"), appinventory.MatchItem)
	return c.JSON(dto.NewListResponse(locationID, items))
}

// CFNInventory godoc
// @Summary      Inventario total por CFN (incluye CFN sin stock)
// @Tags         inventory
// @Produce      json
// @Param        id  path   string  true   "ID de la ubicación (UUID)"
// @Param        q   query  string  false  "Búsqueda en CFN, cliente y descripción"
// @Success      200  {object}  dto.ListResponse[inventory.CFNInventoryItem]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory/cfn [get]
func (h *InventoryHandler) CFNInventory(c *fiber.Ctx) error {
	locationID, err := h.locationID(c)
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.CFNInventory(c.UserContext(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	items = appinventory.Filter(items, c.Query("q"), appinventory.MatchCFNItem)
	return c.JSON(dto.NewListResponse(locationID, items))
}

// AvailableStock godoc
// @Summary      Stock disponible por CFN
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación (UUID)"
// @Success      200  {object}  dto.ListResponse[inventory.AvailableStock]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory/available [get]
func (h *InventoryHandler) AvailableStock(c *fiber.Ctx) error {
	locationID, err := h.locationID(c)
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.AvailableStock(c.UserContext(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewListResponse(locationID, items))
}

// AvailableLots godoc
// @Summary      Lotes disponibles de un CFN
// @Tags         inventory
// @Produce      json
// @Param        id   path   string  true  "ID de la ubicación (UUID)"
// @Param        cfn  query  string  true  "CFN"
// @Success      200  {object}  dto.LotsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory/lots [get]
func (h *InventoryHandler) AvailableLots(c *fiber.Ctx) error {
	locationID, err := h.locationID(c)
	if err != nil {
		return respondError(c, err)
	}
	cfn := c.Query("cfn")
	lots, err := h.uc.AvailableLots(c.UserContext(), locationID, cfn)
	if err != nil {
		return respondError(c, err)
	}
	if lots == nil {
		lots = []inventory.LotInfo{}
	}
	return c.JSON(dto.LotsResponse{LocationID: locationID, CFN: cfn, Lots: lots})
}

// UBDInventory godoc
// @Summary      Inventario por vencer
// @Description  Filas con vencimiento futuro, ordenadas por días restantes.
// @Tags         inventory
// @Produce      json
// @Param        id  path   string  true   "ID de la ubicación (UUID)"
// @Param        q   query  string  false  "Búsqueda"
// @Success      200  {object}  dto.ListResponse[inventory.UBDInventoryItem]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory/ubd [get]
func (h *InventoryHandler) UBDInventory(c *fiber.Ctx) error {
	locationID, err := h.locationID(c)
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.UBDInventory(c.UserContext(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	items = appinventory.Filter(items, c.Query("q"), appinventory.MatchUBDItem)
	return c.JSON(dto.NewListResponse(locationID, items))
}

// ExchangeInventory godoc
// @Summary      Inventario para intercambio (con ID por fila)
// @Tags         inventory
// @Produce      json
// @Param        id  path   string  true   "ID de la ubicación (UUID)"
// @Param        q   query  string  false  "Búsqueda"
// @Success      200  {object}  dto.ListResponse[inventory.ExchangeInventoryItem]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory/exchange [get]
func (h *InventoryHandler) ExchangeInventory(c *fiber.Ctx) error {
	locationID, err := h.locationID(c)
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.ExchangeInventory(c.UserContext(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	items = appinventory.Filter(items, c.Query("q"), appinventory.MatchExchangeItem)
	return c.JSON(dto.NewListResponse(locationID, items))
}
