package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// CalculateCFNInventory total por CFN para locationID. Todo CFN presente en products aparece,
// aunque no tenga movimientos (cantidad 0). Nunca se crean filas para CFNs fuera de products.
func CalculateCFNInventory(
	movements []entity.StockMovement,
	locationID string,
	products ProductMap,
	clients ClientMap,
) []CFNInventoryItem {
	rows := make(map[string]*CFNInventoryItem)
	for _, id := range sortedProductIDs(products) {
		p := products[id]
		code := p.CFNCode()
		if code == "" {
			continue
		}
		if _, ok := rows[code]; ok {
			continue
		}
		rows[code] = &CFNInventoryItem{
			CFN:         code,
			Quantity:    decimal.Zero,
			ProductID:   p.ID,
			ClientID:    p.ClientID,
			ClientName:  clients[p.ClientID].CompanyName,
			Description: p.DescriptionText(),
		}
	}

	for _, m := range movements {
		p, ok := products[m.ProductID]
		if !ok {
			continue
		}
		row, ok := rows[p.CFNCode()]
		if !ok {
			continue
		}
		if qty, ok := signedQuantity(m, locationID); ok {
			row.Quantity = row.Quantity.Add(qty)
		}
	}

	out := make([]CFNInventoryItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := CompareCFN(out[i].CFN, out[j].CFN); c != 0 {
			return c < 0
		}
		return out[i].CFN < out[j].CFN
	})
	return out
}

// sortedProductIDs IDs en orden ascendente, para recorrer products de forma determinista.
func sortedProductIDs(products ProductMap) []string {
	ids := make([]string, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
