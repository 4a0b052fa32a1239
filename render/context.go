package render

import (
	"math"

	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	View *engine.View

	// Camera transform and projection bounds, world pixels
	CameraX float64
	CameraY float64
	Camera  component.CameraComponent

	// HasCamera is false when the world holds no camera, nothing is projected then
	HasCamera bool

	// TilePixels is the world size of one terminal cell
	TilePixels float64

	// Viewport dimensions in terminal cells, clipped to the screen
	ViewportWidth  int
	ViewportHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext builds the frame context from the first camera in entity order
func NewRenderContext(v *engine.View, tilePixels float64, screenWidth, screenHeight int) RenderContext {
	ctx := RenderContext{
		View:         v,
		TilePixels:   tilePixels,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}

	cameras := engine.ViewStore[component.CameraComponent](v)
	transforms := engine.ViewStore[component.TransformComponent](v)
	entities := v.Query().With(cameras).With(transforms).Sorted().Execute()
	if len(entities) == 0 {
		return ctx
	}

	cam, _ := cameras.Get(entities[0])
	tr, _ := transforms.Get(entities[0])
	ctx.Camera = cam
	ctx.CameraX, ctx.CameraY = tr.X, tr.Y
	ctx.HasCamera = true
	ctx.ViewportWidth = min(int((cam.Right-cam.Left)/tilePixels), screenWidth)
	ctx.ViewportHeight = min(int((cam.Top-cam.Bottom)/tilePixels), screenHeight)
	return ctx
}

// Project maps a world transform to a viewport cell
// World Y grows upward, screen rows grow downward
func (ctx RenderContext) Project(tr component.TransformComponent) (x, y int, ok bool) {
	if !ctx.HasCamera {
		return 0, 0, false
	}
	x = int(math.Floor((tr.X - ctx.CameraX - ctx.Camera.Left) / ctx.TilePixels))
	y = int(math.Floor((ctx.CameraY + ctx.Camera.Top - tr.Y) / ctx.TilePixels))
	if x < 0 || y < 0 || x >= ctx.ViewportWidth || y >= ctx.ViewportHeight {
		return 0, 0, false
	}
	return x, y, true
}
