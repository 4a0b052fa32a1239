package spawn

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/brain"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/config"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/dungeon"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/input"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/turn"
)

// Session holds the long-lived entities of a game
type Session struct {
	Player      core.Entity
	Camera      core.Entity
	PlayerBrain *brain.PlayerBrain
	EnemyBrain  turn.Brain
}

// EnemyBrain builds the brain shared by spawned enemies
func EnemyBrain(cfg *config.Config) (turn.Brain, error) {
	switch cfg.Enemies.Brain {
	case config.BrainChase:
		return brain.NewChaseBrain(cfg.Enemies.Sight, cfg.Enemies.Damage), nil
	case config.BrainScript:
		b, err := brain.LoadScriptBrain(cfg.Enemies.Script, cfg.Enemies.Damage)
		if err != nil {
			return nil, fmt.Errorf("enemy script: %w", err)
		}
		return b, nil
	default:
		return brain.PrintBrain, nil
	}
}

// Bootstrap registers the session resources, spawns the player and camera,
// and queues the first floor on the action stack
// The world must already carry an action stack
func Bootstrap(w *engine.World, cfg *config.Config) (*Session, error) {
	if _, ok := engine.GetResource[*engine.TimeResource](w.Resources); !ok {
		engine.AddResource(w.Resources, &engine.TimeResource{})
	}
	if _, ok := engine.GetResource[*input.State](w.Resources); !ok {
		engine.AddResource(w.Resources, &input.State{})
	}

	pb, err := brain.NewPlayerBrain(
		brain.WithBufferDelay(cfg.Player.MoveBufferDelay),
		brain.WithAttackDamage(cfg.Player.AttackDamage),
	)
	if err != nil {
		return nil, err
	}
	eb, err := EnemyBrain(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{PlayerBrain: pb, EnemyBrain: eb}
	s.Player = Player(w, 0, 0, pb)
	s.Camera = Camera(w, parameter.CameraWidth, parameter.CameraHeight)

	count := cfg.Enemies.Count
	engine.AddResource(w.Resources, &action.FloorResource{
		Config: cfg.DungeonConfig(),
		Populate: func(w *engine.World, layout dungeon.Layout) {
			Place(w, s.Player, core.Point{})
			for _, p := range EnemyCells(layout, count) {
				SkeletonScout(w, p.X, p.Y, eb)
			}
			Follow(w, s.Camera, s.Player)
		},
	})

	action.Push(w, action.NewRegenerateFloor())
	return s, nil
}

// EnemyCells picks up to n free floor cells for enemies
// Centers of the outer rooms come first, then the starting room around the origin
func EnemyCells(layout dungeon.Layout, n int) []core.Point {
	if n <= 0 {
		return nil
	}

	taken := map[core.Point]bool{{}: true}
	floors := make(map[core.Point]bool, len(layout.Floors))
	for _, p := range layout.Floors {
		floors[p] = true
	}

	var cells []core.Point
	add := func(p core.Point) bool {
		if floors[p] && !taken[p] {
			taken[p] = true
			cells = append(cells, p)
		}
		return len(cells) >= n
	}

	for i, r := range layout.Rooms {
		if i == 0 {
			continue
		}
		if add(r.Center) {
			return cells
		}
	}

	near := slices.Clone(layout.Floors)
	slices.SortStableFunc(near, func(a, b core.Point) int {
		return manhattan(a) - manhattan(b)
	})
	for _, p := range near {
		if add(p) {
			break
		}
	}
	return cells
}

// Alive reports whether the player still has health
func (s *Session) Alive(w *engine.World) bool {
	return engine.GetStore[component.HealthComponent](w).Has(s.Player)
}

func manhattan(p core.Point) int {
	return max(p.X, -p.X) + max(p.Y, -p.Y)
}
