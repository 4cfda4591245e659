package inventory

import (
	"strings"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// ExchangeID ID sintético de fila: product_id-lot_number-ubd_date.
func ExchangeID(productID, lot, ubd string) string {
	return strings.Join([]string{productID, lot, ubd}, "-")
}

// CalculateExchangeInventory inventario de locationID con un ID estable por fila para la pantalla
// de intercambio. No filtra más allá de CalculateInventory.
func CalculateExchangeInventory(
	movements []entity.StockMovement,
	locationID string,
	products ProductMap,
	clients ClientMap,
) []ExchangeInventoryItem {
	items := CalculateInventory(movements, locationID, products, clients, DefaultOptions())
	out := make([]ExchangeInventoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, ExchangeInventoryItem{
			InventoryItem: it,
			ID:            ExchangeID(it.ProductID, it.LotNumber, it.UBDDate),
		})
	}
	return out
}
