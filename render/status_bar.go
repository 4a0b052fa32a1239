package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter/visual"
	"github.com/lixenwraith/gridcrawl/status"
)

// StatusBarRenderer draws the player summary and scheduler metrics below the viewport
type StatusBarRenderer struct {
	player  core.Entity
	reg     *status.Registry
	visible bool
}

// NewStatusBarRenderer creates a status bar for the player entity, reg may be nil
func NewStatusBarRenderer(player core.Entity, reg *status.Registry) *StatusBarRenderer {
	return &StatusBarRenderer{player: player, reg: reg, visible: true}
}

func (r *StatusBarRenderer) IsVisible() bool { return r.visible }

// Toggle flips status bar display, returns the new state
func (r *StatusBarRenderer) Toggle() bool {
	r.visible = !r.visible
	return r.visible
}

func (r *StatusBarRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	style := tcell.StyleDefault.Foreground(visual.ColorStatus).Background(visual.ColorBackground)
	row := ctx.ViewportHeight
	if row >= ctx.ScreenHeight {
		return
	}

	drawText(screen, 0, row, ctx.ScreenWidth, r.summary(ctx.View), style)
	row++

	if r.reg == nil {
		return
	}
	// Pack metrics into as few rows as the width allows
	var line strings.Builder
	for _, m := range r.reg.Lines() {
		if line.Len() > 0 && line.Len()+2+len(m) > ctx.ScreenWidth {
			if row >= ctx.ScreenHeight {
				return
			}
			drawText(screen, 0, row, ctx.ScreenWidth, line.String(), style)
			row++
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString("  ")
		}
		line.WriteString(m)
	}
	if line.Len() > 0 && row < ctx.ScreenHeight {
		drawText(screen, 0, row, ctx.ScreenWidth, line.String(), style)
	}
}

func (r *StatusBarRenderer) summary(v *engine.View) string {
	hp := "dead"
	if h, ok := engine.Read[component.HealthComponent](v, r.player); ok {
		hp = fmt.Sprintf("%d/%d", h.Current, h.Maximum)
	}
	depth := 0
	if floor, ok := engine.ReadResource[action.FloorResource](v); ok {
		depth = floor.Depth
	}
	return fmt.Sprintf("HP %s  Depth %d", hp, depth)
}

// drawText writes s from (x, y), clipped at maxX
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= maxX {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
