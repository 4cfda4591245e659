package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// ProductMap productos indexados por ID.
type ProductMap map[string]entity.Product

// ClientMap clientes indexados por ID.
type ClientMap map[string]entity.Client

// InventoryItem fila de stock de una ubicación para la tripleta (cfn, lote, vencimiento).
// Lote y vencimiento ausentes se agrupan bajo la clave "".
type InventoryItem struct {
	CFN         string          `json:"cfn"`
	LotNumber   string          `json:"lot_number"`
	UBDDate     string          `json:"ubd_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	ClientName  string          `json:"client_name"`
	ProductID   string          `json:"product_id"`
	ClientID    string          `json:"client_id"`
	Description string          `json:"description"`
}

// CFNInventoryItem total por CFN, sin distinguir lote ni vencimiento.
type CFNInventoryItem struct {
	CFN         string          `json:"cfn"`
	Quantity    decimal.Decimal `json:"quantity"`
	ProductID   string          `json:"product_id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name"`
	Description string          `json:"description"`
}

// AvailableStock total positivo por CFN, usado para elegir qué despachar.
type AvailableStock struct {
	CFN           string          `json:"cfn"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	ProductID     string          `json:"product_id"`
	Description   string          `json:"description"`
}

// LotInfo disponibilidad de un lote dentro de un CFN.
type LotInfo struct {
	LotNumber         string          `json:"lot_number"`
	UBDDate           string          `json:"ubd_date"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
}

// UBDInventoryItem fila de inventario con los días que faltan para el vencimiento.
type UBDInventoryItem struct {
	InventoryItem
	LocationName    string `json:"location_name"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
}

// ExchangeInventoryItem fila de inventario con un ID sintético estable para la UI.
type ExchangeInventoryItem struct {
	InventoryItem
	ID string `json:"id"`
}
