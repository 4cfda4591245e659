package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	locL1 = "L1"
	locL2 = "L2"
)

func str(s string) *string { return &s }

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func inbound(productID, lot, ubd, to string, n int64) entity.StockMovement {
	m := entity.StockMovement{ProductID: productID, ToLocationID: str(to), Quantity: qty(n), MovementType: entity.MovementTypeIn}
	if lot != "" {
		m.LotNumber = str(lot)
	}
	if ubd != "" {
		m.UBDDate = str(ubd)
	}
	return m
}

func outbound(productID, lot, ubd, from string, n int64) entity.StockMovement {
	m := inbound(productID, lot, ubd, from, n)
	m.FromLocationID, m.ToLocationID = m.ToLocationID, nil
	m.MovementType = entity.MovementTypeOut
	return m
}

func transfer(productID, lot, ubd, from, to string, n int64) entity.StockMovement {
	m := inbound(productID, lot, ubd, to, n)
	m.FromLocationID = str(from)
	m.MovementType = entity.MovementTypeTransfer
	return m
}

func product(id, cfn, clientID string) entity.Product {
	return entity.Product{ID: id, CFN: str(cfn), ClientID: clientID, Description: str("desc " + cfn)}
}

func acmeProducts() inventory.ProductMap {
	return inventory.ProductMap{"P1": product("P1", "X1", "C1")}
}

func acmeClients() inventory.ClientMap {
	return inventory.ClientMap{"C1": {ID: "C1", CompanyName: "Acme"}}
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculateInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateInventory_EntradaMenosSalida(t *testing.T) {
	movs := []entity.StockMovement{
		inbound("P1", "A", "2025-01-01", locL1, 5),
		outbound("P1", "A", "2025-01-01", locL1, 2),
	}

	got := inventory.CalculateInventory(movs, locL1, acmeProducts(), acmeClients(), inventory.DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, "X1", got[0].CFN)
	assert.Equal(t, "A", got[0].LotNumber)
	assert.Equal(t, "2025-01-01", got[0].UBDDate)
	assert.True(t, qty(3).Equal(got[0].Quantity), "cantidad esperada 3, obtenida %s", got[0].Quantity)
	assert.Equal(t, "Acme", got[0].ClientName)
	assert.Equal(t, "P1", got[0].ProductID)
	assert.Equal(t, "C1", got[0].ClientID)
}

func TestCalculateInventory_ProductoDesconocidoSeDescarta(t *testing.T) {
	movs := []entity.StockMovement{
		inbound("P1", "A", "2025-01-01", locL1, 5),
		outbound("P1", "A", "2025-01-01", locL1, 2),
	}

	got := inventory.CalculateInventory(movs, locL1, inventory.ProductMap{}, acmeClients(), inventory.DefaultOptions())

	assert.Empty(t, got)
	assert.Equal(t, map[inventory.SkipReason]int{inventory.SkipUnknownProduct: 2},
		inventory.SkippedMovements(movs, inventory.ProductMap{}))
}

func TestCalculateInventory_ProductoSinCFNSeDescarta(t *testing.T) {
	products := inventory.ProductMap{"P1": {ID: "P1", ClientID: "C1"}}
	movs := []entity.StockMovement{inbound("P1", "", "", locL1, 4)}

	got := inventory.CalculateInventory(movs, locL1, products, nil, inventory.DefaultOptions())

	assert.Empty(t, got)
	assert.Equal(t, map[inventory.SkipReason]int{inventory.SkipMissingCFN: 1}, inventory.SkippedMovements(movs, products))
}

func TestCalculateInventory_LotesYFechasSeparanFilas(t *testing.T) {
	movs := []entity.StockMovement{
		inbound("P1", "A", "2025-01-01", locL1, 1),
		inbound("P1", "B", "2025-01-01", locL1, 2),
		inbound("P1", "A", "2026-01-01", locL1, 3),
		inbound("P1", "", "", locL1, 4),
	}

	got := inventory.CalculateInventory(movs, locL1, acmeProducts(), acmeClients(), inventory.DefaultOptions())

	require.Len(t, got, 4)
	// orden cfn → lote → fecha; lote vacío primero
	assert.Equal(t, "", got[0].LotNumber)
	assert.Equal(t, "", got[0].UBDDate)
	assert.Equal(t, [2]string{"A", "2025-01-01"}, [2]string{got[1].LotNumber, got[1].UBDDate})
	assert.Equal(t, [2]string{"A", "2026-01-01"}, [2]string{got[2].LotNumber, got[2].UBDDate})
	assert.Equal(t, "B", got[3].LotNumber)
}

func TestCalculateInventory_TransferenciaEntreUbicaciones(t *testing.T) {
	movs := []entity.StockMovement{
		inbound("P1", "A", "2025-01-01", locL1, 10),
		transfer("P1", "A", "2025-01-01", locL1, locL2, 4),
	}

	l1 := inventory.CalculateInventory(movs, locL1, acmeProducts(), acmeClients(), inventory.DefaultOptions())
	l2 := inventory.CalculateInventory(movs, locL2, acmeProducts(), acmeClients(), inventory.DefaultOptions())

	require.Len(t, l1, 1)
	require.Len(t, l2, 1)
	assert.True(t, qty(6).Equal(l1[0].Quantity))
	assert.True(t, qty(4).Equal(l2[0].Quantity))
}

func TestCalculateInventory_OrigenYDestinoIgualesGanaDestino(t *testing.T) {
	movs := []entity.StockMovement{transfer("P1", "A", "", locL1, locL1, 7)}

	got := inventory.CalculateInventory(movs, locL1, acmeProducts(), acmeClients(), inventory.DefaultOptions())

	require.Len(t, got, 1)
	assert.True(t, qty(7).Equal(got[0].Quantity))
}

func TestCalculateInventory_MovimientoAjenoNoAporta(t *testing.T) {
	movs := []entity.StockMovement{
		inbound("P1", "A", "", locL2, 7),
	}
	opts := inventory.DefaultOptions()
	opts.FilterPositiveOnly = false
	opts.IncludeZeroQuantity = true

	got := inventory.CalculateInventory(movs, locL1, acmeProducts(), acmeClients(), opts)

	require.Len(t, got, 1)
	assert.True(t, got[0].Quantity.IsZero())
}

func TestCalculateInventory_Filtros(t *testing.T) {
	products := inventory.ProductMap{
		"P1": product("P1", "POS1", "C1"),
		"P2": product("P2", "ZERO1", "C1"),
		"P3": product("P3", "NEG1", "C1"),
	}
	movs := []entity.StockMovement{
		inbound("P1", "", "", locL1, 3),
		inbound("P2", "", "", locL1, 2),
		outbound("P2", "", "", locL1, 2),
		outbound("P3", "", "", locL1, 1),
	}
	cfns := func(items []inventory.InventoryItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.CFN)
		}
		return out
	}

	positive := inventory.CalculateInventory(movs, locL1, products, nil, inventory.DefaultOptions())
	assert.Equal(t, []string{"POS1"}, cfns(positive))

	nonZero := inventory.DefaultOptions()
	nonZero.FilterPositiveOnly = false
	assert.Equal(t, []string{"NEG1", "POS1"}, cfns(inventory.CalculateInventory(movs, locL1, products, nil, nonZero)))

	all := nonZero
	all.IncludeZeroQuantity = true
	assert.Equal(t, []string{"NEG1", "POS1", "ZERO1"}, cfns(inventory.CalculateInventory(movs, locL1, products, nil, all)))
}

func TestCalculateInventory_ModosDeOrden(t *testing.T) {
	products := inventory.ProductMap{
		"P1": product("P1", "AAA1", "C1"),
		"P2": product("P2", "BBB1", "C1"),
	}
	movs := []entity.StockMovement{
		inbound("P1", "L2", "2025-06-01", locL1, 1),
		inbound("P2", "L1", "2025-01-01", locL1, 9),
		inbound("P1", "L3", "2024-12-01", locL1, 5),
	}
	lots := func(by inventory.SortKey) []string {
		opts := inventory.DefaultOptions()
		opts.SortBy = by
		var out []string
		for _, it := range inventory.CalculateInventory(movs, locL1, products, nil, opts) {
			out = append(out, it.LotNumber)
		}
		return out
	}

	assert.Equal(t, []string{"L2", "L3", "L1"}, lots(inventory.SortByCFN))
	assert.Equal(t, []string{"L1", "L2", "L3"}, lots(inventory.SortByLot))
	assert.Equal(t, []string{"L3", "L1", "L2"}, lots(inventory.SortByUBD))
	assert.Equal(t, []string{"L1", "L3", "L2"}, lots(inventory.SortByQuantity))
	assert.Equal(t, []string{"L2", "L3", "L1"}, lots(inventory.SortByCatalog))
}

func TestCalculateInventory_OrdenCatalogo(t *testing.T) {
	products := inventory.ProductMap{
		"P1": product("P1", "DHC2412", "C1"),
		"P2": product("P2", "DHC2508", "C1"),
	}
	movs := []entity.StockMovement{
		inbound("P1", "A", "", locL1, 1),
		inbound("P2", "A", "", locL1, 1),
	}
	opts := inventory.DefaultOptions()

	byText := inventory.CalculateInventory(movs, locL1, products, nil, opts)
	opts.SortBy = inventory.SortByCatalog
	byCatalog := inventory.CalculateInventory(movs, locL1, products, nil, opts)

	assert.Equal(t, "DHC2412", byText[0].CFN)
	assert.Equal(t, "DHC2508", byCatalog[0].CFN, "sub-medida 08 antes que 12")
}

func TestCalculateInventory_Determinista(t *testing.T) {
	products := inventory.ProductMap{
		"P1": product("P1", "DHC2512", "C1"),
		"P2": product("P2", "DHC2508", "C1"),
	}
	movs := []entity.StockMovement{
		inbound("P1", "A", "2025-01-01", locL1, 5),
		inbound("P2", "B", "2025-02-01", locL1, 5),
		inbound("P2", "C", "2025-02-01", locL1, 5),
		outbound("P1", "A", "2025-01-01", locL1, 1),
	}
	opts := inventory.DefaultOptions()
	opts.SortBy = inventory.SortByQuantity

	first := inventory.CalculateInventory(movs, locL1, products, acmeClients(), opts)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, inventory.CalculateInventory(movs, locL1, products, acmeClients(), opts))
	}
}

func TestCalculateInventory_SumaNetaCoincide(t *testing.T) {
	movs := []entity.StockMovement{
		inbound("P1", "A", "", locL1, 8),
		outbound("P1", "B", "", locL1, 3),
		transfer("P1", "A", "", locL2, locL1, 2),
		transfer("P1", "A", "", locL1, locL2, 1),
		inbound("P9", "A", "", locL1, 100), // producto desconocido
	}
	opts := inventory.DefaultOptions()
	opts.FilterPositiveOnly = false
	opts.IncludeZeroQuantity = true

	total := decimal.Zero
	for _, it := range inventory.CalculateInventory(movs, locL1, acmeProducts(), nil, opts) {
		total = total.Add(it.Quantity)
	}
	assert.True(t, qty(6).Equal(total), "total esperado 6, obtenido %s", total)
}

func TestParseSortKey(t *testing.T) {
	k, err := inventory.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, inventory.SortByCFN, k)

	k, err = inventory.ParseSortKey("quantity")
	require.NoError(t, err)
	assert.Equal(t, inventory.SortByQuantity, k)

	k, err = inventory.ParseSortKey("cfn_numeric")
	require.NoError(t, err)
	assert.Equal(t, inventory.SortByCatalog, k)

	_, err = inventory.ParseSortKey("price")
	assert.Error(t, err)
}
