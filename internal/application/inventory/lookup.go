package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/entity"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/inventory"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain/repository"
)

// LookupService construye diccionarios por ID a partir del almacén externo.
// Nunca devuelve error: si la consulta falla, el diccionario queda vacío.
type LookupService struct {
	products  repository.ProductRepository
	clients   repository.ClientRepository
	locations repository.LocationRepository
	log       zerolog.Logger
}

// NewLookupService construye el servicio de diccionarios.
func NewLookupService(
	products repository.ProductRepository,
	clients repository.ClientRepository,
	locations repository.LocationRepository,
	log zerolog.Logger,
) *LookupService {
	return &LookupService{
		products:  products,
		clients:   clients,
		locations: locations,
		log:       log.With().Str("component", "lookup").Logger(),
	}
}

// ProductMap productos por ID. ids vacío = todos.
func (s *LookupService) ProductMap(ctx context.Context, ids []string) inventory.ProductMap {
	ids = uniqueIDs(ids)
	list := fetchOr(ctx, s.log, "products", []entity.Product{}, func(ctx context.Context) ([]entity.Product, error) {
		return s.products.ListByIDs(ctx, ids)
	})
	out := make(inventory.ProductMap, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out
}

// ClientMap clientes por ID. ids vacío = todos.
func (s *LookupService) ClientMap(ctx context.Context, ids []string) inventory.ClientMap {
	ids = uniqueIDs(ids)
	list := fetchOr(ctx, s.log, "clients", []entity.Client{}, func(ctx context.Context) ([]entity.Client, error) {
		return s.clients.ListByIDs(ctx, ids)
	})
	out := make(inventory.ClientMap, len(list))
	for _, c := range list {
		out[c.ID] = c
	}
	return out
}

// ClientMapFor clientes dueños de los productos dados.
func (s *LookupService) ClientMapFor(ctx context.Context, products inventory.ProductMap) inventory.ClientMap {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ClientID)
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return inventory.ClientMap{}
	}
	return s.ClientMap(ctx, ids)
}

// Locations ubicaciones ordenadas por nombre.
func (s *LookupService) Locations(ctx context.Context) []entity.Location {
	return fetchOr(ctx, s.log, "locations", []entity.Location{}, s.locations.List)
}

// LocationMap ubicaciones por ID.
func (s *LookupService) LocationMap(ctx context.Context) map[string]entity.Location {
	list := s.Locations(ctx)
	out := make(map[string]entity.Location, len(list))
	for _, l := range list {
		out[l.ID] = l
	}
	return out
}

// uniqueIDs elimina vacíos y duplicados conservando el primer orden de aparición.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
