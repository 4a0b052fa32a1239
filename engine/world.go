package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/gridcrawl/core"
)

// World contains all entities and their components using typed stores
// Stores are created on first use and live for the world's lifetime
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global ResourceStore
	Resources *ResourceStore

	stores     map[reflect.Type]AnyStore
	storeOrder []AnyStore // Registration order for deterministic lifecycle sweeps
}

// NewWorld creates a new ECS world with dynamic component store support
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		stores:       make(map[reflect.Type]AnyStore),
	}
}

// GetStore returns the store for component type T, creating it on first call
// The returned pointer remains valid for the world's lifetime
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	s, ok := w.stores[t]
	w.mu.RUnlock()
	if ok {
		return s.(*Store[T])
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	store := NewStore[T]()
	w.stores[t] = store
	w.storeOrder = append(w.storeOrder, store)
	return store
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.snapshotStores() {
		s.Remove(e)
	}
}

// DestroyBatch removes all components of every listed entity
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	for _, s := range w.snapshotStores() {
		s.RemoveBatch(entities)
	}
}

// Alive reports whether the entity still has at least one component
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.snapshotStores() {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Entities returns every entity holding at least one component, ascending
func (w *World) Entities() []core.Entity {
	seen := make(map[core.Entity]struct{})
	for _, s := range w.snapshotStores() {
		for _, e := range s.All() {
			seen[e] = struct{}{}
		}
	}
	return sortedEntities(seen)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, s := range w.snapshotStores() {
		s.Clear()
	}
}

func (w *World) snapshotStores() []AnyStore {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]AnyStore, len(w.storeOrder))
	copy(result, w.storeOrder)
	return result
}
