package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
)

// ListResponse listado de filas de una vista de inventario.
type ListResponse[T any] struct {
	LocationID string `json:"location_id"`
	Total      int    `json:"total"`
	Items      []T    `json:"items"`
}

// NewListResponse nunca serializa items como null.
func NewListResponse[T any](locationID string, items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{LocationID: locationID, Total: len(items), Items: items}
}

// LotsResponse lotes disponibles de un CFN.
type LotsResponse struct {
	LocationID string              `json:"location_id"`
	CFN        string              `json:"cfn"`
	Lots       []inventory.LotInfo `json:"lots"`
}

// LocationResponse hospital o bodega.
type LocationResponse struct {
	ID           string `json:"id"`
	HospitalName string `json:"hospital_name"`
	Central      bool   `json:"central"`
}

// MovementResponse movimiento del libro de stock.
type MovementResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	LotNumber      string          `json:"lot_number,omitempty"`
	UBDDate        string          `json:"ubd_date,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	MovementType   string          `json:"movement_type"`
	MovementReason *string         `json:"movement_reason,omitempty"`
	FromLocationID *string         `json:"from_location_id,omitempty"`
	ToLocationID   *string         `json:"to_location_id,omitempty"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
}

// MovementListResponse página del libro de movimientos.
type MovementListResponse struct {
	Page  PageResponse       `json:"page"`
	Items []MovementResponse `json:"items"`
}

// ToMovementResponse mapea la entidad al cuerpo HTTP.
func ToMovementResponse(m entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		LotNumber:      m.Lot(),
		UBDDate:        m.UBD(),
		Quantity:       m.Quantity,
		MovementType:   m.MovementType,
		MovementReason: m.MovementReason,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		CreatedAt:      m.CreatedAt,
	}
}
