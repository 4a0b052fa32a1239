package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/parameter/visual"
	"github.com/lixenwraith/gridcrawl/status"
	"github.com/lixenwraith/gridcrawl/turn"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(40, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func addCamera(w *engine.World) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, component.NewCamera(parameter.CameraWidth, parameter.CameraHeight))
	engine.With(eb, component.TransformComponent{})
	return eb.Build()
}

func addTile(w *engine.World, x, y int, kind component.TileKind) {
	eb := w.NewEntity()
	engine.With(eb, component.TransformAt(x, y, parameter.TilePixels))
	engine.With(eb, component.TileComponent{Kind: kind})
	eb.Build()
}

var idleBrain = turn.BrainFunc(func(core.Entity, turn.Group, *engine.View) action.Action { return nil })

func addSprite(w *engine.World, x, y int, r rune, layer int, group turn.Group) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, component.TransformAt(x, y, parameter.TilePixels))
	engine.With(eb, component.SpriteComponent{Rune: r, Layer: layer})
	engine.With(eb, component.NewHealth(30))
	engine.With(eb, turn.NewActor(idleBrain, group))
	return eb.Build()
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestProject(t *testing.T) {
	w := engine.NewWorld()
	addCamera(w)
	ctx := NewRenderContext(engine.NewView(w), parameter.TilePixels, 40, 24)

	if ctx.ViewportWidth != 15 || ctx.ViewportHeight != 15 {
		t.Fatalf("Viewport = %dx%d, want 15x15", ctx.ViewportWidth, ctx.ViewportHeight)
	}

	tests := []struct {
		name   string
		cell   core.Point
		x, y   int
		inView bool
	}{
		{"origin is centered", core.Point{X: 0, Y: 0}, 7, 7, true},
		{"right", core.Point{X: 1, Y: 0}, 8, 7, true},
		{"up is a lower row", core.Point{X: 0, Y: 1}, 7, 6, true},
		{"left edge", core.Point{X: -7, Y: 0}, 0, 7, true},
		{"past left edge", core.Point{X: -8, Y: 0}, 0, 0, false},
		{"past right edge", core.Point{X: 8, Y: 0}, 0, 0, false},
		{"bottom edge", core.Point{X: 0, Y: -7}, 7, 14, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ctx.Project(component.TransformAt(tt.cell.X, tt.cell.Y, parameter.TilePixels))
			if ok != tt.inView {
				t.Fatalf("Project ok = %v, want %v", ok, tt.inView)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("Project = (%d, %d), want (%d, %d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestProjectFollowsCamera(t *testing.T) {
	w := engine.NewWorld()
	cam := addCamera(w)
	engine.GetStore[component.TransformComponent](w).Set(cam, component.TransformAt(3, 2, parameter.TilePixels))
	ctx := NewRenderContext(engine.NewView(w), parameter.TilePixels, 40, 24)

	x, y, ok := ctx.Project(component.TransformAt(3, 2, parameter.TilePixels))
	if !ok || x != 7 || y != 7 {
		t.Errorf("Project = (%d, %d, %v), want camera target centered", x, y, ok)
	}
}

func TestViewportClippedToScreen(t *testing.T) {
	w := engine.NewWorld()
	addCamera(w)
	ctx := NewRenderContext(engine.NewView(w), parameter.TilePixels, 10, 5)
	if ctx.ViewportWidth != 10 || ctx.ViewportHeight != 5 {
		t.Errorf("Viewport = %dx%d, want 10x5", ctx.ViewportWidth, ctx.ViewportHeight)
	}
}

func TestRenderFrame(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld()
	addCamera(w)
	addTile(w, 0, 0, component.TileFloor)
	addTile(w, 1, 0, component.TileWall)
	addTile(w, 0, 1, component.TileWallCap)
	addTile(w, 20, 0, component.TileWall)
	player := addSprite(w, 0, 0, visual.GlyphPlayer, 2, turn.GroupPlayer)
	engine.AddResource(w.Resources, &action.FloorResource{Depth: 2})

	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyTicks).Store(3)

	o, _ := NewGameOrchestrator(screen, player, reg)
	o.RenderFrame(w)

	if r := runeAt(screen, 7, 7); r != visual.GlyphPlayer {
		t.Errorf("Center = %q, want player glyph over floor", r)
	}
	if r := runeAt(screen, 8, 7); r != '#' {
		t.Errorf("Right of center = %q, want wall", r)
	}
	if r := runeAt(screen, 7, 6); r != '▀' {
		t.Errorf("Above center = %q, want wall cap", r)
	}

	_, _, style, _ := screen.GetContent(7, 7)
	want := tcell.StyleDefault.Background(visual.ColorBackground).Foreground(visual.ColorPlayer)
	if style != want {
		t.Errorf("Player style = %v, want %v", style, want)
	}

	if got := rowText(screen, 15); got != "HP 30/30  Depth 2" {
		t.Errorf("Status row = %q", got)
	}
	if got := rowText(screen, 16); got != "turn.ticks=3" {
		t.Errorf("Metrics row = %q", got)
	}
}

func TestSpritesLayerOrder(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld()
	addCamera(w)
	addSprite(w, 0, 0, 'P', 2, turn.GroupPlayer)
	addSprite(w, 0, 0, 's', 1, turn.GroupEnemy)

	o := NewRenderOrchestrator(screen)
	o.Register(NewSpritesRenderer(), PriorityEntities)
	o.RenderFrame(w)

	if r := runeAt(screen, 7, 7); r != 'P' {
		t.Errorf("Center = %q, want higher layer on top", r)
	}
}

func TestFlashOverridesColor(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld()
	addCamera(w)
	e := addSprite(w, 1, 1, 's', 1, turn.GroupEnemy)
	flashes := engine.GetStore[component.FlashComponent](w)
	flashes.Set(e, component.FlashComponent{Remaining: 500 * time.Millisecond, Duration: 500 * time.Millisecond})

	o := NewRenderOrchestrator(screen)
	o.Register(NewSpritesRenderer(), PriorityEntities)
	o.RenderFrame(w)

	_, _, style, _ := screen.GetContent(8, 6)
	if want := tcell.StyleDefault.Background(visual.ColorBackground).Foreground(visual.ColorFlash); style != want {
		t.Errorf("Flash on style = %v, want %v", style, want)
	}

	// 125ms into the flash is the off phase
	flashes.Set(e, component.FlashComponent{Remaining: 375 * time.Millisecond, Duration: 500 * time.Millisecond})
	o.RenderFrame(w)
	_, _, style, _ = screen.GetContent(8, 6)
	if want := tcell.StyleDefault.Background(visual.ColorBackground).Foreground(visual.ColorEnemy); style != want {
		t.Errorf("Flash off style = %v, want %v", style, want)
	}
}

func TestStatusBarWithoutCamera(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld()
	addSprite(w, 0, 0, '@', 2, turn.GroupPlayer)

	o, bar := NewGameOrchestrator(screen, core.Entity(999), nil)
	o.RenderFrame(w)

	if got := rowText(screen, 0); got != "HP dead  Depth 0" {
		t.Errorf("Status row = %q", got)
	}

	if bar.Toggle() {
		t.Fatalf("Expected Toggle to hide the bar")
	}
	o.RenderFrame(w)
	if got := rowText(screen, 0); got != "" {
		t.Errorf("Hidden status row = %q, want empty", got)
	}
}

func TestStatusBarWrapsMetrics(t *testing.T) {
	screen := newScreen(t)
	screen.SetSize(24, 24)
	w := engine.NewWorld()

	reg := status.NewRegistry()
	reg.Ints.Get("a.first").Store(1)
	reg.Ints.Get("b.second").Store(2)
	reg.Ints.Get("c.third").Store(3)

	o := NewRenderOrchestrator(screen)
	o.Register(NewStatusBarRenderer(0, reg), PriorityUI)
	o.RenderFrame(w)

	want := []string{"a.first=1", "b.second=2", "c.third=3"}
	got := []string{rowText(screen, 1), rowText(screen, 2)}
	if got[0] != want[0]+"  "+want[1] {
		t.Errorf("Metrics row 1 = %q", got[0])
	}
	if got[1] != want[2] {
		t.Errorf("Metrics row 2 = %q", got[1])
	}
}
