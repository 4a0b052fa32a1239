package action

import (
	"time"

	"github.com/lixenwraith/gridcrawl/component"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestWorld returns a world with a stack on a mock clock and a frame delta
func newTestWorld(dt time.Duration) (*engine.World, *Stack, *engine.MockTimeProvider) {
	w := engine.NewWorld()
	clock := engine.NewMockTimeProvider(epoch)
	stack := NewStack(clock, 8*time.Millisecond)
	engine.AddResource(w.Resources, stack)
	engine.AddResource(w.Resources, &engine.TimeResource{Now: epoch, DeltaTime: dt})
	return w, stack, clock
}

func addCamera(w *engine.World) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, component.NewCamera(480, 480))
	engine.With(eb, component.TransformComponent{})
	return eb.Build()
}

// scripted records its name on each attempt, pushes follow-ups once, and
// returns statuses in order, Finished once they run out
type scripted struct {
	name     string
	log      *[]string
	push     []Action
	statuses []Status
	calls    int
	advance  func()
}

func (s *scripted) CanAttempt(*engine.View) bool { return true }

func (s *scripted) Attempt(w *engine.World) Status {
	*s.log = append(*s.log, s.name)
	if s.calls == 0 {
		for _, a := range s.push {
			Push(w, a)
		}
	}
	if s.advance != nil {
		s.advance()
	}
	st := Finished
	if s.calls < len(s.statuses) {
		st = s.statuses[s.calls]
	}
	s.calls++
	return st
}

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(s core.SoundType) { p.played = append(p.played, s) }
