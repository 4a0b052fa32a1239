package render

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter/visual"
	"github.com/lixenwraith/gridcrawl/turn"
)

// SpritesRenderer draws actor glyphs over the grid, higher layers on top
// A visible flash overrides the glyph color
type SpritesRenderer struct{}

func NewSpritesRenderer() *SpritesRenderer {
	return &SpritesRenderer{}
}

type spriteDraw struct {
	entity core.Entity
	sprite component.SpriteComponent
	x, y   int
}

func (r *SpritesRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	sprites := engine.ViewStore[component.SpriteComponent](ctx.View)
	transforms := engine.ViewStore[component.TransformComponent](ctx.View)

	var draws []spriteDraw
	for _, e := range ctx.View.Query().With(sprites).With(transforms).Execute() {
		tr, _ := transforms.Get(e)
		x, y, ok := ctx.Project(tr)
		if !ok {
			continue
		}
		s, _ := sprites.Get(e)
		draws = append(draws, spriteDraw{entity: e, sprite: s, x: x, y: y})
	}

	slices.SortFunc(draws, func(a, b spriteDraw) int {
		if a.sprite.Layer != b.sprite.Layer {
			return a.sprite.Layer - b.sprite.Layer
		}
		return cmp.Compare(a.entity, b.entity)
	})

	for _, d := range draws {
		screen.SetContent(d.x, d.y, d.sprite.Rune, nil, spriteStyle(ctx.View, d.entity))
	}
}

func spriteStyle(v *engine.View, e core.Entity) tcell.Style {
	style := tcell.StyleDefault.Background(visual.ColorBackground)
	if flash, ok := engine.Read[component.FlashComponent](v, e); ok && flash.Visible() {
		return style.Foreground(visual.ColorFlash)
	}
	if actor, ok := engine.Read[turn.ActorComponent](v, e); ok && actor.Group() == turn.GroupPlayer {
		return style.Foreground(visual.ColorPlayer)
	}
	return style.Foreground(visual.ColorEnemy)
}
