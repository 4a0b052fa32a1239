package spawn

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/brain"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/config"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/dungeon"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/logging"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/turn"
)

func newTestWorld(t *testing.T) (*engine.World, *turn.Scheduler) {
	t.Helper()
	logging.Use(logging.Discard())
	w := engine.NewWorld()
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := turn.NewScheduler(w, turn.WithClock(clock), turn.WithLogger(logging.Discard()))
	return w, s
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Dungeon.Seed = 7
	cfg.Dungeon.RoomAttempts = 0
	cfg.Enemies.Count = 2
	return cfg
}

func TestPlayerBundle(t *testing.T) {
	w, _ := newTestWorld(t)
	e := Player(w, 2, 2, brain.PrintBrain)

	actor, ok := engine.GetStore[turn.ActorComponent](w).Get(e)
	if !ok {
		t.Fatalf("Expected actor component")
	}
	if actor.Group() != turn.GroupPlayer || !actor.Unlimited() || actor.Ready() {
		t.Errorf("Actor = group %v unlimited %v ready %v", actor.Group(), actor.Unlimited(), actor.Ready())
	}
	h, _ := engine.GetStore[component.HealthComponent](w).Get(e)
	if h.Current != parameter.PlayerMaxHealth {
		t.Errorf("Health = %d, want %d", h.Current, parameter.PlayerMaxHealth)
	}
	if !engine.GetStore[component.KeepBetweenFloorsComponent](w).Has(e) {
		t.Errorf("Expected player kept between floors")
	}
	tr, _ := engine.GetStore[component.TransformComponent](w).Get(e)
	if tr.X != 64 || tr.Y != 64 {
		t.Errorf("Transform = %+v, want (64, 64)", tr)
	}
}

func TestSkeletonScoutBundle(t *testing.T) {
	w, _ := newTestWorld(t)
	e := SkeletonScout(w, 1, 0, brain.PrintBrain)

	actor, _ := engine.GetStore[turn.ActorComponent](w).Get(e)
	if actor.Group() != turn.GroupEnemy || actor.Unlimited() {
		t.Errorf("Actor = group %v unlimited %v", actor.Group(), actor.Unlimited())
	}
	h, _ := engine.GetStore[component.HealthComponent](w).Get(e)
	if h.Current != parameter.ScoutMaxHealth {
		t.Errorf("Health = %d, want %d", h.Current, parameter.ScoutMaxHealth)
	}
	if engine.GetStore[component.KeepBetweenFloorsComponent](w).Has(e) {
		t.Errorf("Scouts should not survive floor changes")
	}
}

func TestFollowAndPlace(t *testing.T) {
	w, _ := newTestWorld(t)
	cam := Camera(w, 480, 480)
	p := Player(w, 0, 0, brain.PrintBrain)

	Place(w, p, core.Point{X: -3, Y: 1})
	pos, _ := engine.GetStore[component.PositionComponent](w).Get(p)
	if pos.Point != (core.Point{X: -3, Y: 1}) {
		t.Errorf("Position = %v", pos.Point)
	}

	if !Follow(w, cam, p) {
		t.Fatalf("Follow failed")
	}
	tr, _ := engine.GetStore[component.TransformComponent](w).Get(cam)
	if tr.X != -96 || tr.Y != 32 {
		t.Errorf("Camera transform = %+v, want (-96, 32)", tr)
	}

	if Follow(w, cam, core.Entity(999)) {
		t.Errorf("Expected Follow to fail for a missing target")
	}
}

func TestEnemyCellsSingleRoom(t *testing.T) {
	cfg := dungeon.DefaultConfig()
	cfg.Seed = 3
	cfg.RoomAttempts = 0
	layout := dungeon.Generate(cfg)

	got := EnemyCells(layout, 3)
	want := []core.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("EnemyCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnemyCells[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if EnemyCells(layout, 0) != nil {
		t.Errorf("Expected no cells for n = 0")
	}
	if n := len(EnemyCells(layout, 100)); n != len(layout.Floors)-1 {
		t.Errorf("Expected every floor but the origin, got %d", n)
	}
}

func TestEnemyCellsPrefersRoomCenters(t *testing.T) {
	layout := dungeon.Generate(dungeon.Config{
		RoomAttempts: 50, Extent: 30, RadiusMin: 2, RadiusMax: 8,
		StartingRadius: 3, GapMin: 3, GapMax: 10, Seed: 11,
	})
	if len(layout.Rooms) < 2 {
		t.Skip("seed produced a single room")
	}
	got := EnemyCells(layout, 1)
	if len(got) != 1 || got[0] != layout.Rooms[1].Center {
		t.Errorf("EnemyCells = %v, want center of room 1 %v", got, layout.Rooms[1].Center)
	}
}

func TestBootstrapFirstFloor(t *testing.T) {
	w, sched := newTestWorld(t)
	s, err := Bootstrap(w, testConfig())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if sched.Stack().Len() != 1 {
		t.Fatalf("Expected the first floor queued, stack len %d", sched.Stack().Len())
	}

	sched.Tick()

	if !sched.Stack().IsEmpty() {
		t.Fatalf("Expected stack drained, len %d", sched.Stack().Len())
	}
	tiles := engine.GetStore[component.TileComponent](w).Count()
	if tiles != 81 {
		t.Errorf("Expected 81 tiles for a single room, got %d", tiles)
	}
	floor := engine.MustGetResource[*action.FloorResource](w.Resources)
	if floor.Depth != 1 {
		t.Errorf("Depth = %d, want 1", floor.Depth)
	}

	actors := engine.GetStore[turn.ActorComponent](w)
	enemies := 0
	for _, e := range actors.All() {
		if a, _ := actors.Get(e); a.Group() == turn.GroupEnemy {
			enemies++
		}
	}
	if enemies != 2 {
		t.Errorf("Expected 2 enemies, got %d", enemies)
	}
	if !s.Alive(w) {
		t.Errorf("Expected player alive")
	}
	pos, _ := engine.GetStore[component.PositionComponent](w).Get(s.Player)
	if pos.Point != (core.Point{}) {
		t.Errorf("Player at %v, want origin", pos.Point)
	}
}

func TestBootstrapRegenerateKeepsPlayer(t *testing.T) {
	w, sched := newTestWorld(t)
	s, err := Bootstrap(w, testConfig())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	sched.Tick()

	Place(w, s.Player, core.Point{X: 2, Y: 2})
	action.Push(w, action.NewRegenerateFloor())
	sched.Tick()

	if !w.Alive(s.Player) || !w.Alive(s.Camera) {
		t.Fatalf("Expected player and camera to survive")
	}
	pos, _ := engine.GetStore[component.PositionComponent](w).Get(s.Player)
	if pos.Point != (core.Point{}) {
		t.Errorf("Player at %v, want origin after regeneration", pos.Point)
	}
	enemies := 0
	actors := engine.GetStore[turn.ActorComponent](w)
	for _, e := range actors.All() {
		if a, _ := actors.Get(e); a.Group() == turn.GroupEnemy {
			enemies++
		}
	}
	if enemies != 2 {
		t.Errorf("Expected old enemies replaced, got %d", enemies)
	}
}

func TestEnemyBrainKinds(t *testing.T) {
	cfg := config.Default()

	cfg.Enemies.Brain = config.BrainChase
	b, err := EnemyBrain(cfg)
	if err != nil {
		t.Fatalf("EnemyBrain chase: %v", err)
	}
	if _, ok := b.(*brain.ChaseBrain); !ok {
		t.Errorf("Expected *ChaseBrain, got %T", b)
	}

	path := filepath.Join(t.TempDir(), "scout.lua")
	if err := os.WriteFile(path, []byte(`function decide(self) return {kind = "print"} end`), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	cfg.Enemies.Brain = config.BrainScript
	cfg.Enemies.Script = path
	b, err = EnemyBrain(cfg)
	if err != nil {
		t.Fatalf("EnemyBrain script: %v", err)
	}
	if _, ok := b.(*brain.ScriptBrain); !ok {
		t.Errorf("Expected *ScriptBrain, got %T", b)
	}

	cfg.Enemies.Script = filepath.Join(t.TempDir(), "missing.lua")
	if _, err := EnemyBrain(cfg); err == nil {
		t.Errorf("Expected error for missing script")
	}
}
