package inventory

import (
	"cmp"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// CalculateAvailableStock total positivo por CFN en locationID, ordenado por CFN.
// Se apoya en CalculateInventory con opciones por defecto y sin nombres de cliente.
func CalculateAvailableStock(
	movements []entity.StockMovement,
	locationID string,
	products ProductMap,
) []AvailableStock {
	items := CalculateInventory(movements, locationID, products, ClientMap{}, DefaultOptions())

	totals := make(map[string]*AvailableStock)
	var order []string
	for _, it := range items {
		row, ok := totals[it.CFN]
		if !ok {
			row = &AvailableStock{
				CFN:           it.CFN,
				TotalQuantity: decimal.Zero,
				ProductID:     it.ProductID,
				Description:   it.Description,
			}
			totals[it.CFN] = row
			order = append(order, it.CFN)
		}
		row.TotalQuantity = row.TotalQuantity.Add(it.Quantity)
	}

	out := make([]AvailableStock, 0, len(order))
	for _, code := range order {
		if totals[code].TotalQuantity.IsPositive() {
			out = append(out, *totals[code])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CFN < out[j].CFN
	})
	return out
}

// ProductByCFN devuelve el producto con ese CFN. Si varios comparten CFN, gana el de menor ID.
func ProductByCFN(products ProductMap, cfn string) (entity.Product, bool) {
	for _, id := range sortedProductIDs(products) {
		if p := products[id]; p.CFNCode() == cfn {
			return p, true
		}
	}
	return entity.Product{}, false
}

// CalculateAvailableLots lotes con stock positivo del producto con ese CFN en locationID,
// ordenados por vencimiento y luego por lote. Devuelve vacío si ningún producto tiene el CFN.
func CalculateAvailableLots(
	movements []entity.StockMovement,
	locationID string,
	cfn string,
	products ProductMap,
) []LotInfo {
	if cfn == "" {
		return []LotInfo{}
	}
	product, ok := ProductByCFN(products, cfn)
	if !ok {
		return []LotInfo{}
	}

	lots := make(map[string]*LotInfo)
	var order []string
	for _, m := range movements {
		if m.ProductID != product.ID {
			continue
		}
		qty, ok := signedQuantity(m, locationID)
		if !ok {
			continue
		}
		lot := m.Lot()
		row, seen := lots[lot]
		if !seen {
			row = &LotInfo{LotNumber: lot, AvailableQuantity: decimal.Zero}
			lots[lot] = row
			order = append(order, lot)
		}
		if row.UBDDate == "" {
			row.UBDDate = m.UBD()
		}
		row.AvailableQuantity = row.AvailableQuantity.Add(qty)
	}

	out := make([]LotInfo, 0, len(order))
	for _, lot := range order {
		if lots[lot].AvailableQuantity.IsPositive() {
			out = append(out, *lots[lot])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp.Or(cmp.Compare(out[i].UBDDate, out[j].UBDDate), cmp.Compare(out[i].LotNumber, out[j].LotNumber)) < 0
	})
	return out
}
