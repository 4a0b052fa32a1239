package dungeon

import (
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/engine"
)

// Spawn creates wall and floor entities for the layout
// Walls carry a grid position so they block movement, floors only draw
func Spawn(w *engine.World, layout Layout, tilePixels float64) {
	for _, c := range layout.Walls {
		kind := component.TileWall
		if c.Cap {
			kind = component.TileWallCap
		}
		eb := w.NewEntity()
		engine.With(eb, component.At(c.X, c.Y))
		engine.With(eb, component.TransformAt(c.X, c.Y, tilePixels))
		engine.With(eb, component.TileComponent{Kind: kind})
		eb.Build()
	}

	for _, p := range layout.Floors {
		eb := w.NewEntity()
		engine.With(eb, component.TransformAt(p.X, p.Y, tilePixels))
		engine.With(eb, component.TileComponent{Kind: component.TileFloor})
		eb.Build()
	}
}
