package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/application/dto"
	appinventory "github.com/ablemeditech-dev/able-inventory-sub001/internal/application/inventory"
)

// LocationHandler listados de ubicaciones y del libro de movimientos.
type LocationHandler struct {
	uc *appinventory.QueryUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *appinventory.QueryUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations := h.uc.Locations(c.UserContext())
	central := h.uc.CentralWarehouseID()
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, dto.LocationResponse{ID: l.ID, HospitalName: l.HospitalName, Central: l.ID == central})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Libro de movimientos del sistema
// @Tags         movements
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *LocationHandler) Movements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	movements, total := h.uc.MovementPage(c.UserContext(), page.Limit, page.Offset)
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.ToMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
		Items: items,
	})
}
