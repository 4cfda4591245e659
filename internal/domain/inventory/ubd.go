package inventory

import (
	"cmp"
	"math"
	"sort"
	"time"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
)

// DaysUntilExpiry días enteros que faltan desde now hasta ubd, redondeados hacia arriba.
// ubd acepta "2006-01-02" (medianoche UTC) o RFC 3339. ok=false si la fecha no se entiende.
func DaysUntilExpiry(ubd string, now time.Time) (int, bool) {
	t, err := time.Parse(time.DateOnly, ubd)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ubd)
		if err != nil {
			return 0, false
		}
	}
	days := math.Ceil(t.Sub(now).Hours() / 24)
	return int(days), true
}

// CalculateUBDInventory filas con stock y fecha de vencimiento de locationID, anotadas con los
// días restantes. Se excluye lo ya vencido (días <= 0). Orden: lo que vence antes, primero.
func CalculateUBDInventory(
	movements []entity.StockMovement,
	locationID string,
	locationName string,
	products ProductMap,
	clients ClientMap,
	now time.Time,
) []UBDInventoryItem {
	items := CalculateInventory(movements, locationID, products, clients, DefaultOptions())

	out := make([]UBDInventoryItem, 0, len(items))
	for _, it := range items {
		if it.UBDDate == "" {
			continue
		}
		days, ok := DaysUntilExpiry(it.UBDDate, now)
		if !ok || days <= 0 {
			continue
		}
		out = append(out, UBDInventoryItem{
			InventoryItem:   it,
			LocationName:    locationName,
			DaysUntilExpiry: days,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp.Compare(out[i].DaysUntilExpiry, out[j].DaysUntilExpiry) < 0
	})
	return out
}
