package engine

import (
	"reflect"

	"github.com/lixenwraith/gridcrawl/core"
)

// View is the read-only accessor over a World used while deciding what to do.
// It mirrors the World's read operations and offers no path to a mutable store,
// a mutable resource, or the World itself.
type View struct {
	w *World
}

// NewView wraps a world for read-only access
func NewView(w *World) *View {
	return &View{w: w}
}

// ReadStore is the non-mutating surface of a component store
type ReadStore[T any] interface {
	QueryableStore

	// Get returns a copy of the entity's component
	Get(e core.Entity) (T, bool)
}

// readStore hides the concrete store so callers cannot assert back to *Store[T]
type readStore[T any] struct {
	s *Store[T]
}

func (r readStore[T]) Get(e core.Entity) (T, bool) { return r.s.Get(e) }
func (r readStore[T]) Has(e core.Entity) bool      { return r.s.Has(e) }
func (r readStore[T]) All() []core.Entity          { return r.s.All() }
func (r readStore[T]) Count() int                  { return r.s.Count() }

// ViewStore returns the read-only store for component type T
func ViewStore[T any](v *View) ReadStore[T] {
	return readStore[T]{s: GetStore[T](v.w)}
}

// Read looks up a single component by entity
func Read[T any](v *View, e core.Entity) (T, bool) {
	return GetStore[T](v.w).Get(e)
}

// Query starts a component intersection query, filters take ViewStore results
func (v *View) Query() *QueryBuilder {
	return newQueryBuilder()
}

// Alive reports whether the entity still has at least one component
func (v *View) Alive(e core.Entity) bool {
	return v.w.Alive(e)
}

// ReadResource returns a value copy of the resource stored as *T
// Mutating the copy never reaches the world
func ReadResource[T any](v *View) (T, bool) {
	p, ok := GetResource[*T](v.w.Resources)
	if !ok || p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// MustReadResource is ReadResource for resources that must exist, panics otherwise
func MustReadResource[T any](v *View) T {
	res, ok := ReadResource[T](v)
	if !ok {
		panic("Required resource not found: " + reflect.TypeFor[*T]().String())
	}
	return res
}
