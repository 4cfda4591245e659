package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
)

func TestCompareCFN(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"sub-medida menor primero", "DHC2508", "DHC2512", -1},
		{"prefijo manda sobre números", "DHC2599", "DPC2501", -1},
		{"mismo prefijo y sufijo, número principal", "DHC2408", "DHC2508", -1},
		{"sufijo antes que número principal", "DHC9908", "DHC1012", -1},
		{"iguales", "DHC2508", "DHC2508", 0},
		{"cuerpo corto sin sufijo", "AB12", "AB100", -1},
		{"sin patrón compara texto", "123", "ABC1", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventory.CompareCFN(tt.a, tt.b))
			assert.Equal(t, -tt.want, inventory.CompareCFN(tt.b, tt.a))
		})
	}
}

func TestSortByCFNNumeric(t *testing.T) {
	items := []inventory.InventoryItem{
		{CFN: "DPC2508", LotNumber: "A"},
		{CFN: "DHC2512", LotNumber: "A"},
		{CFN: "DHC2508", LotNumber: "B", UBDDate: "2025-02-01"},
		{CFN: "DHC2508", LotNumber: "B", UBDDate: "2025-01-01"},
		{CFN: "DHC2508", LotNumber: "A"},
	}

	inventory.SortByCFNNumeric(items)

	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.CFN+"/"+it.LotNumber+"/"+it.UBDDate)
	}
	assert.Equal(t, []string{
		"DHC2508/A/",
		"DHC2508/B/2025-01-01",
		"DHC2508/B/2025-02-01",
		"DHC2512/A/",
		"DPC2508/A/",
	}, got)
}
