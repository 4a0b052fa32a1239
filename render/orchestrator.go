// Package render draws the world into a tcell screen, one cell per grid tile.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/parameter/visual"
	"github.com/lixenwraith/gridcrawl/status"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to the given screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(w *engine.World) {
	width, height := o.screen.Size()
	ctx := NewRenderContext(engine.NewView(w), parameter.TilePixels, width, height)

	o.screen.Fill(' ', tcell.StyleDefault.Background(visual.ColorBackground))
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}
	o.screen.Show()
}

// NewGameOrchestrator registers the grid, sprite and status bar renderers
func NewGameOrchestrator(screen tcell.Screen, player core.Entity, reg *status.Registry) (*RenderOrchestrator, *StatusBarRenderer) {
	o := NewRenderOrchestrator(screen)
	bar := NewStatusBarRenderer(player, reg)
	o.Register(NewGridRenderer(), PriorityGrid)
	o.Register(NewSpritesRenderer(), PriorityEntities)
	o.Register(bar, PriorityUI)
	return o, bar
}
