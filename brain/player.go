// Package brain holds the decision makers attached to actors.
package brain

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/input"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/turn"
)

// Player input states
const (
	StateWaiting    statekit.StateID = "waiting_for_input"
	StateBuffering  statekit.StateID = "buffering_movement"
	StateUnbuffered statekit.StateID = "moving_unbuffered"
	StateAiming     statekit.StateID = "waiting_for_attack_direction"
)

const (
	evToggleAttack statekit.EventType = "TOGGLE_ATTACK"
	evMove         statekit.EventType = "MOVE"
	evRepeat       statekit.EventType = "REPEAT"
	evIdle         statekit.EventType = "IDLE"
	evAttack       statekit.EventType = "ATTACK"
)

// playerMemo is the machine context
type playerMemo struct {
	LastMove time.Time
}

func stampMove(ctx **playerMemo, e statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	if t, ok := e.Payload.(time.Time); ok {
		(*ctx).LastMove = t
	}
}

func newPlayerMachine(memo *playerMemo) (*statekit.MachineConfig[*playerMemo], error) {
	return statekit.NewMachine[*playerMemo]("player").
		WithInitial(StateWaiting).
		WithContext(memo).
		WithAction("stampMove", stampMove).
		State(StateWaiting).
		On(evToggleAttack).Target(StateAiming).
		On(evMove).Target(StateBuffering).Do("stampMove").
		Done().
		State(StateBuffering).
		On(evToggleAttack).Target(StateAiming).
		On(evRepeat).Target(StateUnbuffered).
		On(evIdle).Target(StateWaiting).
		Done().
		State(StateUnbuffered).
		On(evToggleAttack).Target(StateAiming).
		On(evIdle).Target(StateWaiting).
		Done().
		State(StateAiming).
		On(evToggleAttack).Target(StateWaiting).
		On(evAttack).Target(StateWaiting).
		Done().
		Build()
}

// PlayerBrain turns keyboard state into moves and attacks
//
// A first press moves one tile, then holding the key waits out the buffer
// delay before moving continuously. The attack toggle arms a directional
// attack on the next movement key.
type PlayerBrain struct {
	interp *statekit.Interpreter[*playerMemo]
	memo   *playerMemo
	clock  engine.Clock
	delay  time.Duration
	damage int
}

// PlayerOption configures a PlayerBrain
type PlayerOption func(*PlayerBrain)

// WithPlayerClock reads time from c instead of the frame time resource
func WithPlayerClock(c engine.Clock) PlayerOption {
	return func(b *PlayerBrain) { b.clock = c }
}

// WithBufferDelay sets the hold time before continuous movement starts
func WithBufferDelay(d time.Duration) PlayerOption {
	return func(b *PlayerBrain) { b.delay = d }
}

// WithAttackDamage sets the damage of a directional attack
func WithAttackDamage(n int) PlayerOption {
	return func(b *PlayerBrain) { b.damage = n }
}

func NewPlayerBrain(opts ...PlayerOption) (*PlayerBrain, error) {
	memo := &playerMemo{}
	m, err := newPlayerMachine(memo)
	if err != nil {
		return nil, fmt.Errorf("build player machine: %w", err)
	}

	b := &PlayerBrain{
		memo:   memo,
		delay:  parameter.MoveBufferDelay,
		damage: parameter.AttackDamage,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.interp = statekit.NewInterpreter(m)
	b.interp.UpdateContext(func(c **playerMemo) {
		*c = memo
	})
	b.interp.Start()
	return b, nil
}

// State is the current input state
func (b *PlayerBrain) State() statekit.StateID {
	return b.interp.State().Value
}

func (b *PlayerBrain) now(v *engine.View) time.Time {
	if b.clock != nil {
		return b.clock.Now()
	}
	if tr, ok := engine.ReadResource[engine.TimeResource](v); ok && !tr.Now.IsZero() {
		return tr.Now
	}
	return time.Now()
}

// Decide implements turn.Brain
func (b *PlayerBrain) Decide(self core.Entity, _ turn.Group, v *engine.View) action.Action {
	keys, _ := engine.ReadResource[input.State](v)

	if keys.JustPressed(input.IntentToggleAttack) {
		b.send(evToggleAttack, nil)
		return nil
	}

	switch b.State() {
	case StateWaiting:
		if keys.JustPressed(input.IntentDescend) {
			return action.ToDecision(action.NewRegenerateFloor())
		}
		if a := b.firstMove(self, keys, v); a != nil {
			b.send(evMove, b.now(v))
			return a
		}
		return nil

	case StateBuffering:
		a := b.firstMove(self, keys, v)
		if a == nil {
			b.send(evIdle, nil)
			return nil
		}
		if b.now(v).Sub(b.memo.LastMove) < b.delay {
			return nil
		}
		b.send(evRepeat, nil)
		return a

	case StateUnbuffered:
		if a := b.firstMove(self, keys, v); a != nil {
			return a
		}
		b.send(evIdle, nil)
		return nil

	case StateAiming:
		for i, d := range core.Directions {
			if !keys.Pressed(input.MoveIntents[i]) {
				continue
			}
			if a := attackToward(self, d, b.damage, v); a != nil {
				b.send(evAttack, nil)
				return a
			}
		}
		return nil
	}
	return nil
}

// firstMove returns the move for the first held direction that is eligible
func (b *PlayerBrain) firstMove(self core.Entity, keys input.State, v *engine.View) action.Action {
	for i, d := range core.Directions {
		if !keys.Pressed(input.MoveIntents[i]) {
			continue
		}
		if a := action.ToDecisionIfEligible(action.NewMove(self, d), v); a != nil {
			return a
		}
	}
	return nil
}

func (b *PlayerBrain) send(t statekit.EventType, payload any) {
	b.interp.Send(statekit.Event{Type: t, Payload: payload})
}

// attackToward targets the damageable entity in the adjacent cell
func attackToward(self core.Entity, d core.Direction, damage int, v *engine.View) action.Action {
	pos, ok := engine.Read[component.PositionComponent](v, self)
	if !ok {
		return nil
	}
	cell := pos.Add(d.Offset())

	positions := engine.ViewStore[component.PositionComponent](v)
	targets := v.Query().
		With(engine.ViewStore[component.HealthComponent](v)).
		With(positions).
		Sorted().
		Execute()
	for _, e := range targets {
		if p, ok := positions.Get(e); ok && p.Point == cell {
			return action.ToDecisionIfEligible(action.NewDamage(damage, e), v)
		}
	}
	return nil
}
