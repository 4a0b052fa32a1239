package engine

import "github.com/lixenwraith/gridcrawl/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront and stages components until Build() commits them.
//
// Example usage:
//
//	entity := engine.With(
//	    engine.With(world.NewEntity(), component.Position{X: 1, Y: 2}),
//	    component.Health{Current: 10, Maximum: 10},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	staged []func()
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID.
// Components are not added to stores until Build() is called.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With stages a component of type T on the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store := GetStore[T](eb.world)
	e := eb.entity
	eb.staged = append(eb.staged, func() { store.Set(e, component) })
	return eb
}

// Build commits staged components and returns the entity ID.
// Panics on an empty builder, an entity without components is unreachable by every query.
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		panic("entity already built")
	}
	if len(eb.staged) == 0 {
		panic("entity has no components")
	}
	for _, commit := range eb.staged {
		commit()
	}
	eb.built = true
	eb.staged = nil
	return eb.entity
}

// Entity returns the reserved ID before Build, for components that reference their owner
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}
