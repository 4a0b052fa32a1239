// Package spawn assembles the entities that make up a game session.
package spawn

import (
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/parameter/visual"
	"github.com/lixenwraith/gridcrawl/turn"
)

// Sprite layers
const (
	LayerTile = iota
	LayerActor
	LayerPlayer
)

// Player creates the player: an unlimited Player-group actor kept between floors
func Player(w *engine.World, x, y int, brain turn.Brain) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, component.At(x, y))
	engine.With(eb, component.TransformAt(x, y, parameter.TilePixels))
	engine.With(eb, component.NewHealth(parameter.PlayerMaxHealth))
	engine.With(eb, turn.NewUnlimitedActor(brain, turn.GroupPlayer))
	engine.With(eb, component.SpriteComponent{Rune: visual.GlyphPlayer, Name: "player", Layer: LayerPlayer})
	engine.With(eb, component.KeepBetweenFloorsComponent{})
	return eb.Build()
}

// SkeletonScout creates an Enemy-group actor
func SkeletonScout(w *engine.World, x, y int, brain turn.Brain) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, component.At(x, y))
	engine.With(eb, component.TransformAt(x, y, parameter.TilePixels))
	engine.With(eb, component.NewHealth(parameter.ScoutMaxHealth))
	engine.With(eb, turn.NewActor(brain, turn.GroupEnemy))
	engine.With(eb, component.SpriteComponent{Rune: visual.GlyphScout, Name: "skeleton_scout", Layer: LayerActor})
	return eb.Build()
}

// Camera creates the viewport centered at the origin, kept between floors
func Camera(w *engine.World, width, height float64) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, component.NewCamera(width, height))
	engine.With(eb, component.TransformComponent{})
	engine.With(eb, component.KeepBetweenFloorsComponent{})
	return eb.Build()
}

// Follow centers the camera on the target transform
// Returns false if either side has no transform
func Follow(w *engine.World, camera, target core.Entity) bool {
	transforms := engine.GetStore[component.TransformComponent](w)
	tr, ok := transforms.Get(target)
	if !ok {
		return false
	}
	return transforms.Update(camera, func(c *component.TransformComponent) {
		*c = tr
	})
}

// Place moves an entity to a grid cell, snapping its transform
func Place(w *engine.World, e core.Entity, p core.Point) {
	engine.GetStore[component.PositionComponent](w).Update(e, func(pos *component.PositionComponent) {
		pos.Point = p
	})
	engine.GetStore[component.TransformComponent](w).Update(e, func(tr *component.TransformComponent) {
		*tr = component.TransformAt(p.X, p.Y, parameter.TilePixels)
	})
}
