package engine

import (
	"slices"
	"sort"

	"github.com/lixenwraith/gridcrawl/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// It uses the sparse set pattern from stores to efficiently find entities that have all specified components.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	stores   []QueryableStore
	without  []QueryableStore
	sorted   bool
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
// Use With() to add component filters, then Execute() to get the results.
//
// Example:
//
//	entities := world.Query().
//	    With(engine.GetStore[component.Position](world)).
//	    With(engine.GetStore[component.Health](world)).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return newQueryBuilder()
}

func newQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4), // Pre-allocate for common case
	}
}

// With adds a component store to the query filter.
// The resulting query will only return entities that have components in ALL specified stores.
//
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Without excludes entities present in store
//
// Panics if called after Execute().
func (qb *QueryBuilder) Without(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.without = append(qb.without, store)
	return qb
}

// Sorted requests results in ascending entity order
func (qb *QueryBuilder) Sorted() *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.sorted = true
	return qb
}

// Execute runs the query and returns all entities that have components in all specified stores.
// The query is optimized by sorting stores by size (smallest first) to minimize intersection work.
// Calling Execute() multiple times returns the cached result.
//
// Returns:
//   - Empty slice if no stores were specified
//   - Slice of entities that exist in ALL specified stores and none of the excluded ones
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Starting with the smallest store minimizes the number of Has() checks
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	// All() returns a copy, safe to filter in place
	candidates := qb.stores[0].All()

	for i := 1; i < len(qb.stores) && len(candidates) > 0; i++ {
		candidates = filterEntities(candidates, qb.stores[i].Has)
	}

	for _, store := range qb.without {
		if len(candidates) == 0 {
			break
		}
		candidates = filterEntities(candidates, func(e core.Entity) bool { return !store.Has(e) })
	}

	if qb.sorted {
		slices.Sort(candidates)
	}

	qb.results = candidates
	return qb.results
}

// filterEntities keeps entities matching keep, reusing the underlying array
func filterEntities(entities []core.Entity, keep func(core.Entity) bool) []core.Entity {
	filtered := entities[:0]
	for _, e := range entities {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func sortedEntities(set map[core.Entity]struct{}) []core.Entity {
	result := make([]core.Entity, 0, len(set))
	for e := range set {
		result = append(result, e)
	}
	slices.Sort(result)
	return result
}
