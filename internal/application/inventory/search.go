package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
)

// Filter conserva los elementos que coinciden con la búsqueda q. q vacío devuelve items sin tocar.
func Filter[T any](items []T, q string, match func(item T, folded string) bool) []T {
	folded := fold(q)
	if folded == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it, folded) {
			out = append(out, it)
		}
	}
	return out
}

// MatchItem busca en CFN, lote, vencimiento, cliente y descripción.
func MatchItem(it inventory.InventoryItem, folded string) bool {
	return containsFolded(folded, it.CFN, it.LotNumber, it.UBDDate, it.ClientName, it.Description)
}

// MatchCFNItem busca en CFN, cliente y descripción.
func MatchCFNItem(it inventory.CFNInventoryItem, folded string) bool {
	return containsFolded(folded, it.CFN, it.ClientName, it.Description)
}

// MatchUBDItem como MatchItem, más el nombre de la ubicación.
func MatchUBDItem(it inventory.UBDInventoryItem, folded string) bool {
	return MatchItem(it.InventoryItem, folded) || containsFolded(folded, it.LocationName)
}

// MatchExchangeItem como MatchItem.
func MatchExchangeItem(it inventory.ExchangeInventoryItem, folded string) bool {
	return MatchItem(it.InventoryItem, folded)
}

func containsFolded(folded string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(fold(f), folded) {
			return true
		}
	}
	return false
}

// fold normaliza para comparar sin distinguir mayúsculas (cases.Caser no es seguro entre goroutines).
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
