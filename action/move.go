package action

import (
	"time"

	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// Blocked reports whether any positioned entity occupies the cell
func Blocked(v *engine.View, p core.Point) bool {
	positions := engine.ViewStore[component.PositionComponent](v)
	for _, e := range positions.All() {
		if pos, ok := positions.Get(e); ok && pos.Point == p {
			return true
		}
	}
	return false
}

// MoveAction steps an entity one grid cell
type MoveAction struct {
	Entity    core.Entity
	Direction core.Direction
}

func NewMove(e core.Entity, d core.Direction) *MoveAction {
	return &MoveAction{Entity: e, Direction: d}
}

func (a *MoveAction) String() string { return "move " + a.Direction.String() }

func (a *MoveAction) intended(v *engine.View) (core.Point, bool) {
	pos, ok := engine.Read[component.PositionComponent](v, a.Entity)
	if !ok {
		return core.Point{}, false
	}
	target := pos.Add(a.Direction.Offset())
	if Blocked(v, target) {
		return core.Point{}, false
	}
	return target, true
}

// CanAttempt holds when the entity exists and the target cell is free
func (a *MoveAction) CanAttempt(v *engine.View) bool {
	_, ok := a.intended(v)
	return ok
}

// Attempt rechecks the target, commits the grid position and queues the slide
// A cell taken since the decision leaves the entity in place
func (a *MoveAction) Attempt(w *engine.World) Status {
	target, ok := a.intended(engine.NewView(w))
	if !ok {
		return Finished
	}
	engine.GetStore[component.PositionComponent](w).Update(a.Entity, func(p *component.PositionComponent) {
		p.Point = target
	})
	Push(w, NewMoveAnimation(a.Entity, a.Direction))
	return Finished
}

// MoveAnimationAction slides the transform one tile along the move direction
type MoveAnimationAction struct {
	entity    core.Entity
	direction core.Direction
	duration  time.Duration
	remaining float64 // pixels
}

func NewMoveAnimation(e core.Entity, d core.Direction) *MoveAnimationAction {
	return &MoveAnimationAction{
		entity:    e,
		direction: d,
		duration:  parameter.MoveAnimationDuration,
		remaining: parameter.TilePixels,
	}
}

func (a *MoveAnimationAction) String() string { return "move_animation" }

// Remaining is the distance left in pixels
func (a *MoveAnimationAction) Remaining() float64 { return a.remaining }

// CanAttempt is unreachable, the slide is only pushed by MoveAction
func (a *MoveAnimationAction) CanAttempt(*engine.View) bool {
	return followUpOnly("MoveAnimationAction")
}

// Attempt interpolates while the swept rect is on camera, otherwise snaps
func (a *MoveAnimationAction) Attempt(w *engine.World) Status {
	transforms := engine.GetStore[component.TransformComponent](w)
	tr, ok := transforms.Get(a.entity)
	if !ok {
		return Finished
	}

	off := a.direction.Offset()
	if RectVisible(engine.NewView(w), a.sweptRect(tr)) {
		step := min(frameDelta(w)/a.duration.Seconds()*parameter.TilePixels, a.remaining)
		transforms.Update(a.entity, func(t *component.TransformComponent) {
			t.X += float64(off.X) * step
			t.Y += float64(off.Y) * step
		})
		a.remaining -= step
		if a.remaining == 0 {
			return Finished
		}
		return Unfinished
	}

	transforms.Update(a.entity, func(t *component.TransformComponent) {
		t.X += float64(off.X) * a.remaining
		t.Y += float64(off.Y) * a.remaining
	})
	a.remaining = 0
	return Finished
}

// sweptRect covers the entity tile plus the distance still to travel
func (a *MoveAnimationAction) sweptRect(tr component.TransformComponent) core.Rect {
	r := entityRect(tr)
	switch a.direction {
	case core.DirUp:
		r.Top += a.remaining
	case core.DirDown:
		r.Bottom -= a.remaining
	case core.DirLeft:
		r.Left -= a.remaining
	case core.DirRight:
		r.Right += a.remaining
	}
	return r
}
