package action

import (
	"strconv"
	"time"

	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// DamageAction removes health from a target
type DamageAction struct {
	Damage int
	Target core.Entity
}

func NewDamage(damage int, target core.Entity) *DamageAction {
	return &DamageAction{Damage: damage, Target: target}
}

func (a *DamageAction) String() string { return "damage " + strconv.Itoa(a.Damage) }

// CanAttempt holds while the target has health
func (a *DamageAction) CanAttempt(v *engine.View) bool {
	_, ok := engine.Read[component.HealthComponent](v, a.Target)
	return ok
}

// Attempt applies the damage and queues, top first: sound, flash, then deletion at zero health
func (a *DamageAction) Attempt(w *engine.World) Status {
	died := false
	found := engine.GetStore[component.HealthComponent](w).Update(a.Target, func(h *component.HealthComponent) {
		died = h.Apply(a.Damage)
	})
	if !found {
		return Finished
	}

	sound := core.SoundHit
	if died {
		Push(w, NewDelete(a.Target))
		sound = core.SoundDeath
	}
	Push(w, NewDamageAnimation(a.Target))
	Push(w, NewPlaySound(sound))
	return Finished
}

// DamageAnimationAction flashes the target for a fixed time while on camera
type DamageAnimationAction struct {
	entity    core.Entity
	duration  time.Duration
	remaining time.Duration
}

func NewDamageAnimation(e core.Entity) *DamageAnimationAction {
	return &DamageAnimationAction{
		entity:    e,
		duration:  parameter.DamageAnimationDuration,
		remaining: parameter.DamageAnimationDuration,
	}
}

func (a *DamageAnimationAction) String() string { return "damage_animation" }

// CanAttempt is unreachable, the flash is only pushed by DamageAction
func (a *DamageAnimationAction) CanAttempt(*engine.View) bool {
	return followUpOnly("DamageAnimationAction")
}

func (a *DamageAnimationAction) Attempt(w *engine.World) Status {
	flashes := engine.GetStore[component.FlashComponent](w)
	tr, ok := engine.GetStore[component.TransformComponent](w).Get(a.entity)
	if !ok {
		flashes.Remove(a.entity)
		return Finished
	}

	if RectVisible(engine.NewView(w), entityRect(tr)) {
		dt := engine.MustGetResource[*engine.TimeResource](w.Resources).DeltaTime
		a.remaining = max(a.remaining-dt, 0)
		if a.remaining > 0 {
			flashes.Set(a.entity, component.FlashComponent{Remaining: a.remaining, Duration: a.duration})
			return Unfinished
		}
	}

	flashes.Remove(a.entity)
	return Finished
}

// DeleteAction destroys an entity
type DeleteAction struct {
	entity core.Entity
}

func NewDelete(e core.Entity) *DeleteAction {
	return &DeleteAction{entity: e}
}

func (a *DeleteAction) String() string { return "delete" }

// CanAttempt is unreachable, deletion is only pushed by DamageAction
func (a *DeleteAction) CanAttempt(*engine.View) bool {
	return followUpOnly("DeleteAction")
}

func (a *DeleteAction) Attempt(w *engine.World) Status {
	w.DestroyEntity(a.entity)
	return Finished
}
