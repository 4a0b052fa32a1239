package action

import (
	"slices"
	"time"

	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// Stack is the LIFO of pending actions
// Access is single-threaded, owned by whichever tick phase is running
type Stack struct {
	tasks  []Action
	clock  engine.Clock
	budget time.Duration
}

// DrainReport summarizes one DrainStep call
type DrainReport struct {
	Ran        int           // Attempt calls made
	Finished   int           // actions removed
	Unfinished bool          // stopped on an unfinished action
	Paused     bool          // stopped by the time budget with work left
	Elapsed    time.Duration // wall time spent
}

// NewStack creates an empty stack, nil clock uses system time and budget <= 0 the default
func NewStack(clock engine.Clock, budget time.Duration) *Stack {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	if budget <= 0 {
		budget = parameter.DrainBudget
	}
	return &Stack{clock: clock, budget: budget}
}

// Push appends to the top
func (s *Stack) Push(a Action) {
	if a == nil {
		panic("action: nil action pushed")
	}
	s.tasks = append(s.tasks, a)
}

func (s *Stack) IsEmpty() bool { return len(s.tasks) == 0 }

func (s *Stack) Len() int { return len(s.tasks) }

func (s *Stack) Budget() time.Duration { return s.budget }

// DrainStep pops and attempts actions until the stack is empty, an action is
// unfinished, or the budget has elapsed after a finished action
// An unfinished action goes back to the index it was popped from, below any
// follow-ups it pushed, so those run first on the next drain
func (s *Stack) DrainStep(w *engine.World) DrainReport {
	var r DrainReport
	start := s.clock.Now()

	for len(s.tasks) > 0 {
		idx := len(s.tasks) - 1
		a := s.tasks[idx]
		s.tasks[idx] = nil
		s.tasks = s.tasks[:idx]

		status := a.Attempt(w)
		r.Ran++

		if status == Unfinished {
			s.tasks = slices.Insert(s.tasks, idx, a)
			r.Unfinished = true
			break
		}
		r.Finished++

		if s.clock.Now().Sub(start) >= s.budget {
			r.Paused = len(s.tasks) > 0
			break
		}
	}

	r.Elapsed = s.clock.Now().Sub(start)
	return r
}
