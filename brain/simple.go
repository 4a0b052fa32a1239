package brain

import (
	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/turn"
)

// PrintBrain always decides to log that the entity is acting
var PrintBrain = turn.BrainFunc(func(self core.Entity, _ turn.Group, _ *engine.View) action.Action {
	return action.ToDecision(action.NewPrintEntity(self))
})

// ChaseBrain walks toward the nearest actor of a hostile group and strikes when adjacent
type ChaseBrain struct {
	// Sight is the Manhattan range at which prey is noticed, 0 means unlimited
	Sight  int
	Damage int
	Prey   turn.Group
}

func NewChaseBrain(sight, damage int) *ChaseBrain {
	return &ChaseBrain{Sight: sight, Damage: damage, Prey: turn.GroupPlayer}
}

func (b *ChaseBrain) Decide(self core.Entity, _ turn.Group, v *engine.View) action.Action {
	pos, ok := engine.Read[component.PositionComponent](v, self)
	if !ok {
		return nil
	}
	target, tpos, ok := b.nearest(pos.Point, v)
	if !ok {
		return nil
	}

	gap := tpos.Sub(pos.Point)
	if manhattan(gap) == 1 {
		if _, ok := engine.Read[component.HealthComponent](v, target); ok {
			return action.ToDecisionIfEligible(action.NewDamage(b.Damage, target), v)
		}
		return nil
	}

	dist := manhattan(gap)
	for _, d := range core.Directions {
		next := pos.Add(d.Offset())
		if manhattan(tpos.Sub(next)) >= dist {
			continue
		}
		if a := action.ToDecisionIfEligible(action.NewMove(self, d), v); a != nil {
			return a
		}
	}
	return nil
}

// nearest picks the closest prey by Manhattan distance, ties by entity order
func (b *ChaseBrain) nearest(from core.Point, v *engine.View) (core.Entity, core.Point, bool) {
	actors := engine.ViewStore[turn.ActorComponent](v)
	positions := engine.ViewStore[component.PositionComponent](v)
	candidates := v.Query().With(actors).With(positions).Sorted().Execute()

	var (
		best     core.Entity
		bestPos  core.Point
		bestDist = -1
	)
	for _, e := range candidates {
		actor, _ := actors.Get(e)
		if actor.Group() != b.Prey {
			continue
		}
		p, _ := positions.Get(e)
		d := manhattan(p.Sub(from))
		if b.Sight > 0 && d > b.Sight {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestPos, bestDist = e, p.Point, d
		}
	}
	return best, bestPos, bestDist >= 0
}

func manhattan(p core.Point) int {
	return abs(p.X) + abs(p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
