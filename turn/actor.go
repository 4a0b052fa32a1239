package turn

import (
	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
)

// Brain chooses what an actor does when asked
// A nil result means no decision this attempt
type Brain interface {
	Decide(self core.Entity, group Group, v *engine.View) action.Action
}

// BrainFunc adapts a stateless function to Brain
type BrainFunc func(self core.Entity, group Group, v *engine.View) action.Action

func (f BrainFunc) Decide(self core.Entity, group Group, v *engine.View) action.Action {
	return f(self, group, v)
}

// ActorComponent makes an entity take part in the turn cycle
// Stateful brains must be pointer types, the component is stored by value
type ActorComponent struct {
	brain     Brain
	group     Group
	ready     bool
	unlimited bool
}

// NewActor returns an actor with the default retry cap, not ready until its group is active
func NewActor(brain Brain, group Group) ActorComponent {
	if brain == nil {
		panic("turn: actor requires a brain")
	}
	return ActorComponent{brain: brain, group: group}
}

// NewUnlimitedActor returns an actor exempt from the retry cap
// A nil decision ends the engine pass and the actor is asked again next tick
// Capped actors of the same group that sort before it are asked once per tick
// and never reach their final attempt, so they hold their turn until they decide
func NewUnlimitedActor(brain Brain, group Group) ActorComponent {
	a := NewActor(brain, group)
	a.unlimited = true
	return a
}

func (a ActorComponent) Brain() Brain    { return a.brain }
func (a ActorComponent) Group() Group    { return a.group }
func (a ActorComponent) Ready() bool     { return a.ready }
func (a ActorComponent) Unlimited() bool { return a.unlimited }
