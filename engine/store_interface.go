package engine

import (
	"github.com/lixenwraith/gridcrawl/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	// Remove deletes a component from an entity
	Remove(e core.Entity)

	// RemoveBatch deletes the component from every listed entity
	RemoveBatch(entities []core.Entity)

	// Clear removes all components from this store
	Clear()

	QueryableStore
}

// QueryableStore is the read surface the query builder needs to
// intersect component sets. Read-only views satisfy it too.
type QueryableStore interface {
	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// All returns all entities that have this component type
	All() []core.Entity

	// Count returns the number of entities with this component
	Count() int
}
