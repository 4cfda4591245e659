package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento registrados en el libro de movimientos.
const (
	MovementTypeIn       = "in"       // entrada al sistema
	MovementTypeOut      = "out"      // salida (consumo, devolución)
	MovementTypeTransfer = "transfer" // entre ubicaciones
	MovementTypeAdjust   = "adjust"   // ajuste de conteo
)

// StockMovement representa una entrada inmutable del libro de movimientos: una transferencia
// dirigida de unidades de un producto entre dos ubicaciones. Si falta un extremo, el movimiento
// entra o sale del sistema. Se crea fuera de este servicio; aquí es de solo lectura.
type StockMovement struct {
	ID             string          `db:"id"`
	ProductID      string          `db:"product_id"`
	LotNumber      *string         `db:"lot_number"`
	UBDDate        *string         `db:"ubd_date"` // fecha de vencimiento ISO (YYYY-MM-DD)
	Quantity       decimal.Decimal `db:"quantity"` // siempre no negativa; el signo lo da la dirección
	MovementType   string          `db:"movement_type"`
	MovementReason *string         `db:"movement_reason"`
	FromLocationID *string         `db:"from_location_id"`
	ToLocationID   *string         `db:"to_location_id"`
	CreatedAt      *time.Time      `db:"created_at"`
	UpdatedAt      *time.Time      `db:"updated_at"`
}

// Lot devuelve el número de lote o "" si no tiene.
func (m StockMovement) Lot() string {
	return deref(m.LotNumber)
}

// UBD devuelve la fecha de vencimiento o "" si no tiene.
func (m StockMovement) UBD() string {
	return deref(m.UBDDate)
}

// IsTo indica si el movimiento entra a la ubicación dada.
func (m StockMovement) IsTo(locationID string) bool {
	return m.ToLocationID != nil && *m.ToLocationID == locationID
}

// IsFrom indica si el movimiento sale de la ubicación dada.
func (m StockMovement) IsFrom(locationID string) bool {
	return m.FromLocationID != nil && *m.FromLocationID == locationID
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
