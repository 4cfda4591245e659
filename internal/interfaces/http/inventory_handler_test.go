package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/ablemeditech-dev/able-inventory-sub001/internal/application/inventory"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	apphttp "github.com/ablemeditech-dev/able-inventory-sub001/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	centralID  = "00000000-0000-0000-0000-0000000000c1"
	hospitalID = "00000000-0000-0000-0000-0000000000a2"
)

func str(s string) *string { return &s }

type fakeMovements struct{ list []entity.StockMovement }

func (f fakeMovements) ListByLocation(_ context.Context, locationID string) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	for _, m := range f.list {
		if m.IsFrom(locationID) || m.IsTo(locationID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f fakeMovements) ListAll(context.Context) ([]entity.StockMovement, error) { return f.list, nil }

func (f fakeMovements) ListPage(_ context.Context, limit, offset int) ([]entity.StockMovement, error) {
	from := min(offset, len(f.list))
	return f.list[from:min(from+limit, len(f.list))], nil
}

func (f fakeMovements) Count(context.Context) (int, error) { return len(f.list), nil }

type fakeProducts struct{}

func (fakeProducts) ListByIDs(context.Context, []string) ([]entity.Product, error) {
	return []entity.Product{
		{ID: "P1", CFN: str("DHC2512"), ClientID: "C1", Description: str("Catéter")},
		{ID: "P2", CFN: str("DHC2508"), ClientID: "C1", Description: str("Guía")},
	}, nil
}

type fakeClients struct{}

func (fakeClients) ListByIDs(context.Context, []string) ([]entity.Client, error) {
	return []entity.Client{{ID: "C1", CompanyName: "Acme"}}, nil
}

type fakeLocations struct{}

func (fakeLocations) List(context.Context) ([]entity.Location, error) {
	return []entity.Location{
		{ID: centralID, HospitalName: "Bodega central"},
		{ID: hospitalID, HospitalName: "Hospital Norte"},
	}, nil
}

func buildTestApp() *fiber.App {
	movs := []entity.StockMovement{
		{ID: "m1", ProductID: "P1", LotNumber: str("A"), UBDDate: str("2025-01-11"), ToLocationID: str(centralID), Quantity: decimal.NewFromInt(5)},
		{ID: "m2", ProductID: "P2", LotNumber: str("B"), UBDDate: str("2025-02-01"), ToLocationID: str(centralID), Quantity: decimal.NewFromInt(2)},
		{ID: "m3", ProductID: "P1", LotNumber: str("A"), UBDDate: str("2025-01-11"), FromLocationID: str(centralID), ToLocationID: str(hospitalID), Quantity: decimal.NewFromInt(1)},
	}
	log := zerolog.Nop()
	uc := appinventory.NewQueryUseCase(
		appinventory.NewMovementFetcher(fakeMovements{list: movs}, log),
		appinventory.NewLookupService(fakeProducts{}, fakeClients{}, fakeLocations{}, log),
		appinventory.QueryConfig{CentralWarehouseID: centralID},
		log,
	).WithClock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Query: uc})
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type listBody struct {
	LocationID string           `json:"location_id"`
	Total      int              `json:"total"`
	Items      []map[string]any `json:"items"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_PorUbicacion(t *testing.T) {
	app := buildTestApp()

	var body listBody
	status := getJSON(t, app, "/api/locations/"+centralID+"/inventory", &body)

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, 2, body.Total)
	assert.Equal(t, "DHC2508", body.Items[0]["cfn"])
	assert.Equal(t, "DHC2512", body.Items[1]["cfn"])
	assert.Equal(t, "4", body.Items[1]["quantity"])
	assert.Equal(t, "Acme", body.Items[1]["client_name"])
}

func TestInventory_BodegaCentralSinID(t *testing.T) {
	app := buildTestApp()

	var body listBody
	status := getJSON(t, app, "/api/warehouse/inventory?sort_by=quantity", &body)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, centralID, body.LocationID)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "DHC2512", body.Items[0]["cfn"])
}

func TestInventory_Busqueda(t *testing.T) {
	app := buildTestApp()

	var body listBody
	status := getJSON(t, app, "/api/locations/"+centralID+"/inventory?q=gu%C3%8DA", &body)

	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "DHC2508", body.Items[0]["cfn"])
}

func TestInventory_ParametrosInvalidos(t *testing.T) {
	app := buildTestApp()

	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/api/locations/no-es-uuid/inventory", nil))
	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/api/locations/"+centralID+"/inventory?sort_by=precio", nil))
	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/api/locations/"+centralID+"/inventory/lots", nil))
}

func TestAvailableLots(t *testing.T) {
	app := buildTestApp()

	var body struct {
		CFN  string           `json:"cfn"`
		Lots []map[string]any `json:"lots"`
	}
	status := getJSON(t, app, "/api/warehouse/inventory/lots?cfn=DHC2512", &body)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "DHC2512", body.CFN)
	require.Len(t, body.Lots, 1)
	assert.Equal(t, "A", body.Lots[0]["lot_number"])
	assert.Equal(t, "4", body.Lots[0]["available_quantity"])
}

func TestUBDInventory_NombreDeUbicacion(t *testing.T) {
	app := buildTestApp()

	var body listBody
	status := getJSON(t, app, "/api/locations/"+hospitalID+"/inventory/ubd", &body)

	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Hospital Norte", body.Items[0]["location_name"])
	assert.Equal(t, float64(10), body.Items[0]["days_until_expiry"])
}

func TestLocationsYMovimientos(t *testing.T) {
	app := buildTestApp()

	var locations []map[string]any
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/locations", &locations))
	require.Len(t, locations, 2)
	assert.Equal(t, true, locations[0]["central"])
	assert.Equal(t, false, locations[1]["central"])

	var movements struct {
		Page struct {
			Total int `json:"total"`
		} `json:"page"`
		Items []map[string]any `json:"items"`
	}
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/movements?limit=2&offset=1", &movements))
	assert.Equal(t, 3, movements.Page.Total)
	require.Len(t, movements.Items, 2)
	assert.Equal(t, "m2", movements.Items[0]["id"])
}
