package turn

import (
	"sync/atomic"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/lixenwraith/gridcrawl/action"
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/logging"
	"github.com/lixenwraith/gridcrawl/parameter"
	"github.com/lixenwraith/gridcrawl/status"
)

// Scheduler owns the turn cycle for one session
// All methods run on the simulation goroutine
type Scheduler struct {
	world    *engine.World
	stack    *action.Stack
	active   Group
	attempts int
	uniform  bool

	clock  engine.Clock
	budget time.Duration

	logger *bolt.Logger
	reg    *status.Registry

	last action.DrainReport

	// Cached metric pointers
	ticks       *atomic.Int64
	advances    *atomic.Int64
	admitted    *atomic.Int64
	forfeits    *atomic.Int64
	pending     *atomic.Int64
	finished    *atomic.Int64
	unfinished  *atomic.Int64
	pauses      *atomic.Int64
	drainMs     *status.AtomicFloat
	activeGroup *status.AtomicString
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithAttempts sets the decision passes per engine run for non-exempt actors
func WithAttempts(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// WithUniformAttempts applies the retry cap to every actor, ignoring exemptions
func WithUniformAttempts(uniform bool) Option {
	return func(s *Scheduler) { s.uniform = uniform }
}

func WithLogger(l *bolt.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithStatus publishes scheduler metrics to reg
func WithStatus(reg *status.Registry) Option {
	return func(s *Scheduler) { s.reg = reg }
}

// WithInitialGroup sets the active group before the first rotation
func WithInitialGroup(g Group) Option {
	return func(s *Scheduler) { s.active = g }
}

// WithStack uses an existing stack instead of building one
func WithStack(st *action.Stack) Option {
	return func(s *Scheduler) { s.stack = st }
}

// WithClock sets the drain budget clock for a stack built by the scheduler
func WithClock(c engine.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithBudget sets the drain budget for a stack built by the scheduler
func WithBudget(d time.Duration) Option {
	return func(s *Scheduler) { s.budget = d }
}

// NewScheduler creates a scheduler and registers its stack as a world resource
func NewScheduler(w *engine.World, opts ...Option) *Scheduler {
	s := &Scheduler{
		world:    w,
		active:   GroupPlayer,
		attempts: parameter.DecisionAttempts,
		budget:   parameter.DrainBudget,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.stack == nil {
		s.stack = action.NewStack(s.clock, s.budget)
	}
	if s.logger == nil {
		s.logger = logging.Get()
	}
	if s.reg == nil {
		s.reg = status.NewRegistry()
	}

	s.ticks = s.reg.Ints.Get(status.KeyTicks)
	s.advances = s.reg.Ints.Get(status.KeyGroupAdvances)
	s.admitted = s.reg.Ints.Get(status.KeyAdmitted)
	s.forfeits = s.reg.Ints.Get(status.KeyForfeits)
	s.pending = s.reg.Ints.Get(status.KeyPending)
	s.finished = s.reg.Ints.Get(status.KeyFinished)
	s.unfinished = s.reg.Ints.Get(status.KeyUnfinished)
	s.pauses = s.reg.Ints.Get(status.KeyBudgetPauses)
	s.drainMs = s.reg.Floats.Get(status.KeyLastDrainMs)
	s.activeGroup = s.reg.Strings.Get(status.KeyActiveGroup)
	s.activeGroup.Store(s.active.String())

	engine.AddResource(w.Resources, s.stack)
	return s
}

func (s *Scheduler) ActiveGroup() Group { return s.active }

func (s *Scheduler) Stack() *action.Stack { return s.stack }

func (s *Scheduler) Status() *status.Registry { return s.reg }

// LastDrain returns the report of the most recent drain
func (s *Scheduler) LastDrain() action.DrainReport { return s.last }

// Tick runs one simulation frame: rotation, then decision and drain
func (s *Scheduler) Tick() {
	s.ticks.Add(1)
	s.AdvanceTurnGroups()
	s.RunDecisionAndDrain()
}

// AdvanceTurnGroups moves to the next group once no actor in the active group is ready,
// then readies every actor of the new group
func (s *Scheduler) AdvanceTurnGroups() {
	actors := engine.GetStore[ActorComponent](s.world)
	for _, e := range actors.All() {
		if a, ok := actors.Get(e); ok && a.group == s.active && a.ready {
			return
		}
	}

	prev := s.active
	s.active = s.active.Next()

	readied := 0
	for _, e := range actors.All() {
		actors.Update(e, func(a *ActorComponent) {
			if a.group == s.active {
				a.ready = true
				readied++
			}
		})
	}

	s.advances.Add(1)
	s.activeGroup.Store(s.active.String())
	logging.NewEvent(s.logger.Debug()).
		Add(logging.FromGroup(prev.String())).
		Add(logging.Group(s.active.String())).
		Add(logging.Int("readied", readied)).
		Msg("turn group advanced")
}

// RunDecisionAndDrain admits at most one new action when the stack is empty, then drains
func (s *Scheduler) RunDecisionAndDrain() {
	s.Decide()

	r := s.stack.DrainStep(s.world)
	s.last = r
	s.finished.Add(int64(r.Finished))
	if r.Unfinished {
		s.unfinished.Add(1)
	}
	if r.Paused {
		s.pauses.Add(1)
		logging.NewEvent(s.logger.Debug()).
			Add(logging.Pending(s.stack.Len())).
			Add(logging.DurationUs(r.Elapsed)).
			Msg("drain paused by budget")
	}
	s.pending.Store(int64(s.stack.Len()))
	s.drainMs.Set(float64(r.Elapsed.Microseconds()) / 1000)
}

// Decide runs the decision engine and reports whether an action was admitted
// It does nothing while the stack holds work
func (s *Scheduler) Decide() bool {
	if !s.stack.IsEmpty() {
		return false
	}

	actors := engine.GetStore[ActorComponent](s.world)
	var candidates []core.Entity
	for _, e := range s.world.Query().With(actors).Sorted().Execute() {
		if a, ok := actors.Get(e); ok && a.group == s.active && a.ready {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	for attempt := 1; attempt <= s.attempts; attempt++ {
		for _, e := range candidates {
			// The brain is taken out of the store while it runs so it can keep state
			actor, ok := actors.Take(e)
			if !ok {
				continue
			}
			unlimited := actor.unlimited && !s.uniform

			decision := actor.brain.Decide(e, actor.group, engine.NewView(s.world))
			last := attempt == s.attempts && !unlimited
			if decision != nil || last {
				actor.ready = false
			}
			actors.Set(e, actor)

			if decision != nil {
				s.stack.Push(decision)
				s.admitted.Add(1)
				logging.NewEvent(s.logger.Debug()).
					Add(logging.Entity(e)).
					Add(logging.Group(actor.group.String())).
					Add(logging.Attempt(attempt)).
					Add(logging.Action(action.Kind(decision))).
					Msg("action admitted")
				return true
			}
			if unlimited {
				return false
			}
			if last {
				s.forfeits.Add(1)
				logging.NewEvent(s.logger.Debug()).
					Add(logging.Entity(e)).
					Add(logging.Group(actor.group.String())).
					Msg("actor forfeited turn")
			}
		}
	}
	return false
}
