// Package action defines schedulable units of work and the stack that drains them.
//
// Decision logic only sees an engine.View. Mutation happens in Attempt, which
// receives the full World and may push follow-up actions that run before any
// older queued action resumes.
package action

import (
	"fmt"

	"github.com/lixenwraith/gridcrawl/engine"
)

// Status is the outcome of one Attempt call
type Status uint8

const (
	// Finished removes the action from the stack
	Finished Status = iota
	// Unfinished puts the action back where it was popped from and ends the drain
	Unfinished
)

func (s Status) String() string {
	if s == Unfinished {
		return "unfinished"
	}
	return "finished"
}

// Action is one unit of schedulable work
type Action interface {
	// CanAttempt reports whether the action is eligible against the current state
	// Must not mutate anything reachable from the view
	CanAttempt(v *engine.View) bool

	// Attempt performs the effect and reports whether it needs another step
	// Progress between steps lives on the action itself
	Attempt(w *engine.World) Status
}

// ToDecision commits to an action unconditionally
func ToDecision(a Action) Action {
	return a
}

// ToDecisionIfEligible returns the action when CanAttempt holds, nil otherwise
func ToDecisionIfEligible(a Action, v *engine.View) Action {
	if a.CanAttempt(v) {
		return a
	}
	return nil
}

// Push queues a follow-up on the world's stack so it runs before older actions
// Panics if the world has no stack resource
func Push(w *engine.World, a Action) {
	engine.MustGetResource[*Stack](w.Resources).Push(a)
}

// Kind is the short name used in logs
func Kind(a Action) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", a)
}

// followUpOnly panics for actions that are only ever pushed by other actions
func followUpOnly(name string) bool {
	panic(name + " is a follow-up action and is never offered as a decision")
}
