package brain

import (
	"fmt"
	"sync"

	"github.com/Shopify/go-lua"

	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/logging"
	"github.com/lixenwraith/gridcrawl/turn"
)

// ScriptBrain delegates decisions to a Lua function named decide
//
// The script sees a read-only world table:
//
//	world.position(e)   -> x, y or nil
//	world.health(e)     -> current, maximum or nil
//	world.blocked(x, y) -> boolean
//	world.actors()      -> array of {entity, group, x, y}
//
// decide(self, group) returns nil or a table with kind "move" (dir),
// "attack" (target, damage) or "print".
type ScriptBrain struct {
	mu     sync.Mutex
	state  *lua.State
	view   *engine.View
	damage int
}

// NewScriptBrain loads Lua source that defines decide
func NewScriptBrain(source string, damage int) (*ScriptBrain, error) {
	b := newScriptState(damage)
	if err := lua.LoadString(b.state, source); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	return b.run()
}

// LoadScriptBrain loads a Lua file that defines decide
func LoadScriptBrain(path string, damage int) (*ScriptBrain, error) {
	b := newScriptState(damage)
	if err := lua.LoadFile(b.state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua %s: %w", path, err)
	}
	return b.run()
}

func newScriptState(damage int) *ScriptBrain {
	b := &ScriptBrain{state: lua.NewState(), damage: damage}
	openSandbox(b.state)
	b.registerWorld()
	return b
}

// sandboxLibraries excludes io, os, package and debug
var sandboxLibraries = []lua.RegistryFunction{
	{Name: "_G", Function: lua.BaseOpen},
	{Name: "string", Function: lua.StringOpen},
	{Name: "table", Function: lua.TableOpen},
	{Name: "math", Function: lua.MathOpen},
}

// openSandbox gives scripts pure computation only, no file or process access
func openSandbox(l *lua.State) {
	for _, lib := range sandboxLibraries {
		lua.Require(l, lib.Name, lib.Function, true)
		l.Pop(1)
	}
	for _, name := range []string{"dofile", "loadfile"} {
		l.PushNil()
		l.SetGlobal(name)
	}
}

func (b *ScriptBrain) run() (*ScriptBrain, error) {
	if err := b.state.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	b.state.Global("decide")
	defer b.state.Pop(1)
	if b.state.TypeOf(-1) != lua.TypeFunction {
		return nil, fmt.Errorf("script must define a decide function")
	}
	return b, nil
}

func (b *ScriptBrain) registerWorld() {
	b.state.NewTable()
	lua.SetFunctions(b.state, []lua.RegistryFunction{
		{Name: "position", Function: b.luaPosition},
		{Name: "health", Function: b.luaHealth},
		{Name: "blocked", Function: b.luaBlocked},
		{Name: "actors", Function: b.luaActors},
	}, 0)
	b.state.SetGlobal("world")
}

// Decide implements turn.Brain
// Script errors are logged and count as no decision
func (b *ScriptBrain) Decide(self core.Entity, group turn.Group, v *engine.View) action.Action {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view = v
	defer func() { b.view = nil }()

	l := b.state
	l.Global("decide")
	l.PushInteger(int(self))
	l.PushString(group.String())
	if err := l.ProtectedCall(2, 1, 0); err != nil {
		l.Pop(1)
		logging.NewEvent(logging.Get().Warn()).
			Add(logging.Entity(self)).
			Add(logging.ErrorField(err)).
			Msg("script decide failed")
		return nil
	}
	defer l.Pop(1)

	if l.TypeOf(-1) != lua.TypeTable {
		return nil
	}
	return b.decode(self, resultFields(l, -1), v)
}

func (b *ScriptBrain) decode(self core.Entity, f map[string]any, v *engine.View) action.Action {
	kind, _ := f["kind"].(string)
	switch kind {
	case "move":
		name, _ := f["dir"].(string)
		d, ok := core.ParseDirection(name)
		if !ok {
			return nil
		}
		return action.ToDecisionIfEligible(action.NewMove(self, d), v)
	case "attack":
		target, ok := f["target"].(int)
		if !ok || target <= 0 {
			return nil
		}
		damage := b.damage
		if n, ok := f["damage"].(int); ok && n > 0 {
			damage = n
		}
		return action.ToDecisionIfEligible(action.NewDamage(damage, core.Entity(target)), v)
	case "print":
		return action.ToDecision(action.NewPrintEntity(self))
	}
	return nil
}

// resultFields reads the string-keyed scalar fields of the table at index
func resultFields(l *lua.State, index int) map[string]any {
	out := map[string]any{}
	index = l.AbsIndex(index)
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) == lua.TypeString {
			key, _ := l.ToString(-2)
			switch l.TypeOf(-1) {
			case lua.TypeString:
				s, _ := l.ToString(-1)
				out[key] = s
			case lua.TypeNumber:
				n, _ := l.ToInteger(-1)
				out[key] = n
			case lua.TypeBoolean:
				out[key] = l.ToBoolean(-1)
			}
		}
		l.Pop(1)
	}
	return out
}

func (b *ScriptBrain) luaPosition(l *lua.State) int {
	e := core.Entity(lua.CheckInteger(l, 1))
	if b.view == nil {
		l.PushNil()
		return 1
	}
	pos, ok := engine.Read[component.PositionComponent](b.view, e)
	if !ok {
		l.PushNil()
		return 1
	}
	l.PushInteger(pos.X)
	l.PushInteger(pos.Y)
	return 2
}

func (b *ScriptBrain) luaHealth(l *lua.State) int {
	e := core.Entity(lua.CheckInteger(l, 1))
	if b.view == nil {
		l.PushNil()
		return 1
	}
	h, ok := engine.Read[component.HealthComponent](b.view, e)
	if !ok {
		l.PushNil()
		return 1
	}
	l.PushInteger(h.Current)
	l.PushInteger(h.Maximum)
	return 2
}

func (b *ScriptBrain) luaBlocked(l *lua.State) int {
	p := core.Point{X: lua.CheckInteger(l, 1), Y: lua.CheckInteger(l, 2)}
	l.PushBoolean(b.view != nil && action.Blocked(b.view, p))
	return 1
}

func (b *ScriptBrain) luaActors(l *lua.State) int {
	l.NewTable()
	if b.view == nil {
		return 1
	}
	actors := engine.ViewStore[turn.ActorComponent](b.view)
	positions := engine.ViewStore[component.PositionComponent](b.view)
	for i, e := range b.view.Query().With(actors).With(positions).Sorted().Execute() {
		actor, _ := actors.Get(e)
		pos, _ := positions.Get(e)
		l.NewTable()
		l.PushInteger(int(e))
		l.SetField(-2, "entity")
		l.PushString(actor.Group().String())
		l.SetField(-2, "group")
		l.PushInteger(pos.X)
		l.SetField(-2, "x")
		l.PushInteger(pos.Y)
		l.SetField(-2, "y")
		l.RawSetInt(-2, i+1)
	}
	return 1
}
