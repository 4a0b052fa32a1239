package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter/visual"
)

// GridRenderer draws static map tiles
type GridRenderer struct{}

func NewGridRenderer() *GridRenderer {
	return &GridRenderer{}
}

func (r *GridRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	tiles := engine.ViewStore[component.TileComponent](ctx.View)
	transforms := engine.ViewStore[component.TransformComponent](ctx.View)

	for _, e := range ctx.View.Query().With(tiles).With(transforms).Execute() {
		tr, _ := transforms.Get(e)
		x, y, ok := ctx.Project(tr)
		if !ok {
			continue
		}
		tile, _ := tiles.Get(e)
		screen.SetContent(x, y, tile.Kind.Rune(), nil, tileStyle(tile.Kind))
	}
}

func tileStyle(k component.TileKind) tcell.Style {
	style := tcell.StyleDefault.Background(visual.ColorBackground)
	switch k {
	case component.TileWall:
		return style.Foreground(visual.ColorWall)
	case component.TileWallCap:
		return style.Foreground(visual.ColorWallCap)
	default:
		return style.Foreground(visual.ColorFloor)
	}
}
