// Package inventory contiene el motor de proyección de inventario: funciones puras que pliegan
// el libro de movimientos en vistas de stock por ubicación. No hace I/O ni guarda estado.
package inventory

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// SortKey criterio de orden de CalculateInventory.
type SortKey string

const (
	SortByCFN      SortKey = "cfn"
	SortByLot      SortKey = "lot"
	SortByUBD      SortKey = "ubd"
	SortByQuantity SortKey = "quantity"
	// SortByCatalog orden de catálogo: CFN por prefijo y sub-medida (ver CompareCFN).
	SortByCatalog  SortKey = "cfn_numeric"
)

// ParseSortKey valida un criterio recibido como texto. "" equivale a SortByCFN.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortByCFN, nil
	case SortByCFN, SortByLot, SortByUBD, SortByQuantity, SortByCatalog:
		return k, nil
	}
	return "", fmt.Errorf("criterio de orden desconocido %q", s)
}

// SkipReason motivo por el que un movimiento no aporta inventario.
type SkipReason string

const (
	SkipUnknownProduct SkipReason = "unknown_product"
	SkipMissingCFN     SkipReason = "missing_cfn"
)

// Options controla el filtrado y el orden. Usar DefaultOptions como base.
type Options struct {
	SortBy SortKey
	// FilterPositiveOnly conserva solo cantidades > 0.
	FilterPositiveOnly bool
	// IncludeZeroQuantity conserva filas en 0 cuando FilterPositiveOnly es false.
	// Las filas negativas (libro inconsistente) se conservan siempre en ese modo.
	IncludeZeroQuantity bool
}

// DefaultOptions solo positivos, orden por CFN.
func DefaultOptions() Options {
	return Options{SortBy: SortByCFN, FilterPositiveOnly: true}
}

// signedQuantity aplica la regla de dirección respecto a locationID.
// Si origen y destino coinciden con la ubicación, gana el destino (suma).
func signedQuantity(m entity.StockMovement, locationID string) (decimal.Decimal, bool) {
	if m.IsTo(locationID) {
		return m.Quantity, true
	}
	if m.IsFrom(locationID) {
		return m.Quantity.Neg(), true
	}
	return decimal.Zero, false
}

// resolveProduct busca el producto del movimiento; si no aporta inventario devuelve el motivo.
func resolveProduct(m entity.StockMovement, products ProductMap) (entity.Product, SkipReason, bool) {
	p, ok := products[m.ProductID]
	if !ok {
		return entity.Product{}, SkipUnknownProduct, false
	}
	if p.CFNCode() == "" {
		return entity.Product{}, SkipMissingCFN, false
	}
	return p, "", true
}

// SkippedMovements cuenta por motivo los movimientos que CalculateInventory descartaría.
func SkippedMovements(movements []entity.StockMovement, products ProductMap) map[SkipReason]int {
	out := make(map[SkipReason]int)
	for _, m := range movements {
		if _, reason, ok := resolveProduct(m, products); !ok {
			out[reason]++
		}
	}
	return out
}

type itemKey struct {
	cfn, lot, ubd string
}

// CalculateInventory pliega los movimientos en filas (cfn, lote, vencimiento) para locationID.
// Cada fila acumula la suma con signo de sus movimientos: entradas a la ubicación suman y
// salidas restan. Los movimientos con producto desconocido o sin CFN se descartan.
func CalculateInventory(
	movements []entity.StockMovement,
	locationID string,
	products ProductMap,
	clients ClientMap,
	opts Options,
) []InventoryItem {
	rows := make(map[itemKey]*InventoryItem)
	var order []itemKey

	for _, m := range movements {
		p, _, ok := resolveProduct(m, products)
		if !ok {
			continue
		}
		k := itemKey{cfn: p.CFNCode(), lot: m.Lot(), ubd: m.UBD()}
		row, seen := rows[k]
		if !seen {
			row = &InventoryItem{
				CFN:         k.cfn,
				LotNumber:   k.lot,
				UBDDate:     k.ubd,
				Quantity:    decimal.Zero,
				ClientName:  clients[p.ClientID].CompanyName,
				ProductID:   m.ProductID,
				ClientID:    p.ClientID,
				Description: p.DescriptionText(),
			}
			rows[k] = row
			order = append(order, k)
		}
		if qty, ok := signedQuantity(m, locationID); ok {
			row.Quantity = row.Quantity.Add(qty)
		}
	}

	out := make([]InventoryItem, 0, len(order))
	for _, k := range order {
		row := rows[k]
		if keepQuantity(row.Quantity, opts) {
			out = append(out, *row)
		}
	}
	sortItems(out, opts.SortBy)
	return out
}

func keepQuantity(q decimal.Decimal, opts Options) bool {
	if opts.FilterPositiveOnly {
		return q.IsPositive()
	}
	if !opts.IncludeZeroQuantity {
		return !q.IsZero()
	}
	return true
}

func sortItems(items []InventoryItem, by SortKey) {
	if by == SortByCatalog {
		SortByCFNNumeric(items)
		return
	}
	var compare func(a, b InventoryItem) int
	switch by {
	case SortByLot:
		compare = func(a, b InventoryItem) int {
			return cmp.Or(cmp.Compare(a.LotNumber, b.LotNumber), cmp.Compare(a.CFN, b.CFN), cmp.Compare(a.UBDDate, b.UBDDate))
		}
	case SortByUBD:
		compare = func(a, b InventoryItem) int {
			return cmp.Or(cmp.Compare(a.UBDDate, b.UBDDate), cmp.Compare(a.CFN, b.CFN), cmp.Compare(a.LotNumber, b.LotNumber))
		}
	case SortByQuantity:
		compare = func(a, b InventoryItem) int {
			return b.Quantity.Cmp(a.Quantity)
		}
	default:
		compare = func(a, b InventoryItem) int {
			return cmp.Or(cmp.Compare(a.CFN, b.CFN), cmp.Compare(a.LotNumber, b.LotNumber), cmp.Compare(a.UBDDate, b.UBDDate))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return compare(items[i], items[j]) < 0
	})
}
