package input

import (
	"sync"
	"time"
)

// State is the per-frame input snapshot registered as a world resource
// Brains read it through the view as a value copy
type State struct {
	held [IntentCount]bool
	just [IntentCount]bool
}

// Pressed reports whether the intent's key is currently held
func (s State) Pressed(i Intent) bool {
	return i < IntentCount && s.held[i]
}

// JustPressed reports a fresh press since the previous snapshot
func (s State) JustPressed(i Intent) bool {
	return i < IntentCount && s.just[i]
}

// AnyMovePressed reports whether any movement key is held
func (s State) AnyMovePressed() bool {
	for _, i := range MoveIntents {
		if s.held[i] {
			return true
		}
	}
	return false
}

// With returns a copy with the intent held and, if fresh, just pressed
func (s State) With(i Intent, fresh bool) State {
	if i < IntentCount {
		s.held[i] = true
		s.just[i] = s.just[i] || fresh
	}
	return s
}

// Keyboard turns key events into held and just-pressed state
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held while events keep arriving within the hold window
type Keyboard struct {
	mu      sync.Mutex
	hold    time.Duration
	last    [IntentCount]time.Time
	pending [IntentCount]bool
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{hold: hold}
}

// Press records a key event at now
// Only a press after a quiet gap longer than the hold window is fresh
func (k *Keyboard) Press(i Intent, now time.Time) {
	if i == IntentNone || i >= IntentCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.last[i].IsZero() || now.Sub(k.last[i]) > k.hold {
		k.pending[i] = true
	}
	k.last[i] = now
}

// Release forgets the key, for hosts that do report releases
func (k *Keyboard) Release(i Intent) {
	if i >= IntentCount {
		return
	}
	k.mu.Lock()
	k.last[i] = time.Time{}
	k.mu.Unlock()
}

// Snapshot returns the state at now and clears just-pressed flags
func (k *Keyboard) Snapshot(now time.Time) State {
	k.mu.Lock()
	defer k.mu.Unlock()

	var s State
	for i := range k.last {
		s.just[i] = k.pending[i]
		s.held[i] = k.pending[i] || (!k.last[i].IsZero() && now.Sub(k.last[i]) <= k.hold)
		k.pending[i] = false
	}
	return s
}
