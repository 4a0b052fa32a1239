package action

import (
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// RectVisible reports whether a world pixel rect overlaps the first camera's bounds
// With no camera nothing is visible
func RectVisible(v *engine.View, rect core.Rect) bool {
	cameras := engine.ViewStore[component.CameraComponent](v)
	transforms := engine.ViewStore[component.TransformComponent](v)

	entities := v.Query().With(cameras).With(transforms).Sorted().Execute()
	if len(entities) == 0 {
		return false
	}

	cam, _ := cameras.Get(entities[0])
	tr, _ := transforms.Get(entities[0])
	bounds := core.Rect{
		Left:   cam.Left + tr.X,
		Right:  cam.Right + tr.X,
		Top:    cam.Top + tr.Y,
		Bottom: cam.Bottom + tr.Y,
	}
	return bounds.Overlaps(rect)
}

// entityRect is the tile-sized rect centered on a transform
func entityRect(tr component.TransformComponent) core.Rect {
	return core.RectAround(tr.X, tr.Y, parameter.HalfTilePixels)
}

// frameDelta reads the current frame delta, the host must register a TimeResource
func frameDelta(w *engine.World) float64 {
	return engine.MustGetResource[*engine.TimeResource](w.Resources).DeltaTime.Seconds()
}
