package action

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/dungeon"
	"github.com/lixenwraith/gridcrawl/engine"
)

func spawnMover(w *engine.World, x, y int) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, component.At(x, y))
	engine.With(eb, component.TransformAt(x, y, 32))
	engine.With(eb, component.NewHealth(10))
	return eb.Build()
}

func TestAdapters(t *testing.T) {
	w, _, _ := newTestWorld(0)
	e := spawnMover(w, 0, 0)
	spawnMover(w, 1, 0)
	v := engine.NewView(w)

	if ToDecision(NewPrintEntity(e)) == nil {
		t.Errorf("Expected ToDecision to pass the action through")
	}
	if ToDecisionIfEligible(NewMove(e, core.DirRight), v) != nil {
		t.Errorf("Expected blocked move to be rejected")
	}
	if ToDecisionIfEligible(NewMove(e, core.DirLeft), v) == nil {
		t.Errorf("Expected free move to be accepted")
	}
}

func TestMoveInterpolatesWhenVisible(t *testing.T) {
	w, stack, _ := newTestWorld(20 * time.Millisecond)
	addCamera(w)
	e := spawnMover(w, 0, 0)

	move := NewMove(e, core.DirUp)
	if !move.CanAttempt(engine.NewView(w)) {
		t.Fatalf("Expected move to be eligible")
	}
	stack.Push(move)

	r := stack.DrainStep(w)
	if !r.Unfinished || stack.Len() != 1 {
		t.Fatalf("Expected animation pending after first drain, got %+v", r)
	}

	pos, _ := engine.GetStore[component.PositionComponent](w).Get(e)
	if pos.Point != (core.Point{X: 0, Y: 1}) {
		t.Errorf("Expected grid position committed immediately, got %v", pos.Point)
	}
	tr, _ := engine.GetStore[component.TransformComponent](w).Get(e)
	if tr.Y != 16 {
		t.Errorf("Expected half step of 16px, got %v", tr.Y)
	}

	r = stack.DrainStep(w)
	if r.Unfinished || !stack.IsEmpty() {
		t.Fatalf("Expected animation finished on second drain, got %+v", r)
	}
	tr, _ = engine.GetStore[component.TransformComponent](w).Get(e)
	if tr.Y != 32 || tr.X != 0 {
		t.Errorf("Expected transform at (0,32), got (%v,%v)", tr.X, tr.Y)
	}
}

func TestMoveSnapsWhenInvisible(t *testing.T) {
	w, stack, _ := newTestWorld(time.Millisecond)
	e := spawnMover(w, 0, 0)

	stack.Push(NewMove(e, core.DirLeft))
	r := stack.DrainStep(w)

	if r.Unfinished || r.Finished != 2 || !stack.IsEmpty() {
		t.Fatalf("Expected move and snap in one drain, got %+v", r)
	}
	tr, _ := engine.GetStore[component.TransformComponent](w).Get(e)
	if tr.X != -32 {
		t.Errorf("Expected transform snapped to -32, got %v", tr.X)
	}
}

func TestMoveAnimationStepNeverOvershoots(t *testing.T) {
	w, _, _ := newTestWorld(time.Second)
	addCamera(w)
	e := spawnMover(w, 0, 0)

	anim := NewMoveAnimation(e, core.DirRight)
	if st := anim.Attempt(w); st != Finished {
		t.Fatalf("Expected large delta to finish in one step")
	}
	if anim.Remaining() != 0 {
		t.Errorf("Expected zero remaining, got %v", anim.Remaining())
	}
	tr, _ := engine.GetStore[component.TransformComponent](w).Get(e)
	if tr.X != 32 {
		t.Errorf("Expected clamp to one tile, got %v", tr.X)
	}
}

func TestMoveBlockedAtAttemptTime(t *testing.T) {
	w, stack, _ := newTestWorld(0)
	e := spawnMover(w, 0, 0)
	move := NewMove(e, core.DirRight)
	if !move.CanAttempt(engine.NewView(w)) {
		t.Fatalf("Expected eligible before the cell is taken")
	}

	// Cell taken between decision and execution
	eb := w.NewEntity()
	engine.With(eb, component.At(1, 0))
	eb.Build()

	stack.Push(move)
	r := stack.DrainStep(w)
	if r.Finished != 1 || !stack.IsEmpty() {
		t.Errorf("Expected move to finish without follow-ups, got %+v", r)
	}
	pos, _ := engine.GetStore[component.PositionComponent](w).Get(e)
	if pos.Point != (core.Point{}) {
		t.Errorf("Expected entity to stay put, got %v", pos.Point)
	}
}

func TestMoveMissingEntity(t *testing.T) {
	w, stack, _ := newTestWorld(0)
	move := NewMove(99, core.DirUp)
	if move.CanAttempt(engine.NewView(w)) {
		t.Errorf("Expected missing entity to be ineligible")
	}
	stack.Push(move)
	if r := stack.DrainStep(w); r.Finished != 1 {
		t.Errorf("Expected missing entity to finish, got %+v", r)
	}
}

func TestDamageKillChainInvisible(t *testing.T) {
	w, stack, _ := newTestWorld(time.Millisecond)
	player := &recordingPlayer{}
	engine.AddResource[SoundPlayer](w.Resources, player)

	target := spawnMover(w, 0, 0)
	stack.Push(NewDamage(10, target))
	stack.DrainStep(w)

	if !stack.IsEmpty() {
		t.Fatalf("Expected chain drained, %d pending", stack.Len())
	}
	if w.Alive(target) {
		t.Errorf("Expected target destroyed at zero health")
	}
	if len(player.played) != 1 || player.played[0] != core.SoundDeath {
		t.Errorf("Expected a single death cue, got %v", player.played)
	}
}

func TestDamageAnimationFlashesThenDeletes(t *testing.T) {
	w, stack, _ := newTestWorld(100 * time.Millisecond)
	addCamera(w)
	target := spawnMover(w, 0, 0)
	flashes := engine.GetStore[component.FlashComponent](w)

	stack.Push(NewDamage(25, target))

	drains := 0
	for !stack.IsEmpty() && drains < 20 {
		stack.DrainStep(w)
		drains++
		if drains == 1 {
			if !flashes.Has(target) {
				t.Errorf("Expected flash while animating")
			}
			if !w.Alive(target) {
				t.Errorf("Expected deletion to wait for the animation")
			}
		}
	}

	if drains != 10 {
		t.Errorf("Expected 1s flash over 10 drains of 100ms, got %d", drains)
	}
	if w.Alive(target) || flashes.Has(target) {
		t.Errorf("Expected target and flash gone")
	}
}

func TestDamageSurvives(t *testing.T) {
	w, stack, _ := newTestWorld(time.Millisecond)
	target := spawnMover(w, 0, 0)
	stack.Push(NewDamage(4, target))
	stack.DrainStep(w)

	h, ok := engine.GetStore[component.HealthComponent](w).Get(target)
	if !ok || h.Current != 6 {
		t.Errorf("Expected 6 health left, got %+v", h)
	}
}

func TestDamageMissingTarget(t *testing.T) {
	w, stack, _ := newTestWorld(0)
	d := NewDamage(10, 1234)
	if d.CanAttempt(engine.NewView(w)) {
		t.Errorf("Expected missing target ineligible")
	}
	stack.Push(d)
	r := stack.DrainStep(w)
	if r.Ran != 1 || !stack.IsEmpty() {
		t.Errorf("Expected a missing target to finish quietly, got %+v", r)
	}
}

func TestFollowUpCanAttemptPanics(t *testing.T) {
	followUps := map[string]Action{
		"move_animation":   NewMoveAnimation(1, core.DirUp),
		"damage_animation": NewDamageAnimation(1),
		"delete":           NewDelete(1),
		"play_sound":       NewPlaySound(core.SoundHit),
	}
	v := engine.NewView(engine.NewWorld())
	for name, a := range followUps {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic")
				}
			}()
			a.CanAttempt(v)
		})
	}
}

func TestRectVisible(t *testing.T) {
	w := engine.NewWorld()
	v := engine.NewView(w)
	if RectVisible(v, core.RectAround(0, 0, 16)) {
		t.Errorf("Expected nothing visible without a camera")
	}

	cam := addCamera(w)
	tests := []struct {
		name string
		rect core.Rect
		want bool
	}{
		{"center", core.RectAround(0, 0, 16), true},
		{"edge touching", core.RectAround(256, 0, 16), true},
		{"outside right", core.RectAround(300, 0, 16), false},
		{"outside below", core.RectAround(0, -300, 16), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectVisible(v, tt.rect); got != tt.want {
				t.Errorf("RectVisible(%+v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}

	// Camera transform shifts the bounds
	engine.GetStore[component.TransformComponent](w).Set(cam, component.TransformComponent{X: 300})
	if !RectVisible(v, core.RectAround(300, 0, 16)) {
		t.Errorf("Expected rect visible after camera moved")
	}
}

func TestPlaySoundWithoutPlayer(t *testing.T) {
	w, _, _ := newTestWorld(0)
	if st := NewPlaySound(core.SoundHit).Attempt(w); st != Finished {
		t.Errorf("Expected silent finish")
	}
}

func TestPrintEntity(t *testing.T) {
	w, _, _ := newTestWorld(0)
	a := NewPrintEntity(5)
	if !a.CanAttempt(engine.NewView(w)) {
		t.Errorf("Expected always eligible")
	}
	if a.Attempt(w) != Finished {
		t.Errorf("Expected finished")
	}
}

func TestRegenerateFloor(t *testing.T) {
	w, stack, _ := newTestWorld(0)

	keep := w.NewEntity()
	engine.With(keep, component.At(5, 5))
	engine.With(keep, component.KeepBetweenFloorsComponent{})
	kept := keep.Build()
	doomed := spawnMover(w, 2, 2)

	cfg := dungeon.DefaultConfig()
	cfg.Seed = 11
	cfg.RoomAttempts = 0

	var populated int
	engine.AddResource(w.Resources, &FloorResource{
		Config: cfg,
		Populate: func(pw *engine.World, layout dungeon.Layout) {
			populated = len(layout.Floors)
		},
	})

	stack.Push(NewRegenerateFloor())
	stack.DrainStep(w)

	if !w.Alive(kept) {
		t.Errorf("Expected tagged entity kept")
	}
	if w.Alive(doomed) {
		t.Errorf("Expected untagged entity removed")
	}
	if populated != 49 {
		t.Errorf("Expected populate hook with 49 floors, got %d", populated)
	}
	if n := engine.GetStore[component.TileComponent](w).Count(); n != 49+32 {
		t.Errorf("Expected 81 tiles, got %d", n)
	}
	if res := engine.MustGetResource[*FloorResource](w.Resources); res.Depth != 1 {
		t.Errorf("Expected depth 1, got %d", res.Depth)
	}
}

func TestPushWithoutStackPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic without a stack resource")
		}
	}()
	Push(engine.NewWorld(), NewPrintEntity(1))
}

func TestKind(t *testing.T) {
	if got := Kind(NewMove(1, core.DirDown)); got != "move down" {
		t.Errorf("Kind = %q", got)
	}
	if got := Kind(&scripted{}); got != "*action.scripted" {
		t.Errorf("Kind fallback = %q", got)
	}
}
