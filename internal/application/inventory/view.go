package inventory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrStaleResponse la respuesta llegó después de una recarga más reciente y se descartó.
var ErrStaleResponse = errors.New("respuesta obsoleta descartada")

// Loader obtiene los elementos de una vista.
type Loader[T any] func(ctx context.Context) ([]T, error)

// ViewState estado visible de una vista: carga, error, búsqueda y filas.
type ViewState[T any] struct {
	Loading    bool
	Err        error
	Search     string
	Items      []T // ya filtrados por Search
	Generation uint64
}

// View mantiene el estado de una pantalla de inventario entre recargas.
// Cada Refresh recibe un número de generación creciente; si una respuesta vuelve cuando ya
// se emitió una recarga más nueva, se descarta para no pisar datos más frescos.
type View[T any] struct {
	load  Loader[T]
	match func(item T, folded string) bool

	gen atomic.Uint64

	mu      sync.Mutex
	loading bool
	err     error
	search  string
	items   []T
	applied uint64
}

// NewView construye una vista. match decide qué filas sobreviven a la búsqueda.
func NewView[T any](load Loader[T], match func(item T, folded string) bool) *View[T] {
	return &View[T]{load: load, match: match}
}

// Refresh recarga la vista. Devuelve ErrStaleResponse si otra recarga la superó.
func (v *View[T]) Refresh(ctx context.Context) error {
	gen := v.gen.Add(1)
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	items, err := v.load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen.Load() {
		return ErrStaleResponse
	}
	v.loading = false
	v.applied = gen
	v.err = err
	if err == nil {
		v.items = items
	}
	return err
}

// SetSearch cambia la búsqueda sin recargar.
func (v *View[T]) SetSearch(q string) {
	v.mu.Lock()
	v.search = q
	v.mu.Unlock()
}

// State copia del estado actual.
func (v *View[T]) State() ViewState[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	items := v.items
	if v.match != nil {
		items = Filter(items, v.search, v.match)
	}
	return ViewState[T]{
		Loading:    v.loading,
		Err:        v.err,
		Search:     v.search,
		Items:      append([]T(nil), items...),
		Generation: v.applied,
	}
}
