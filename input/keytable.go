package input

import "github.com/gdamore/tcell/v2"

// Bindings maps physical keys to intents
type Bindings struct {
	// Printable keys
	Runes map[rune]Intent

	// Special keys (Ctrl+*, arrows)
	Keys map[tcell.Key]Intent
}

// DefaultBindings returns WASD plus arrows for movement, 1 to aim, > to descend
func DefaultBindings() *Bindings {
	return &Bindings{
		Runes: map[rune]Intent{
			'w': IntentMoveUp,
			'a': IntentMoveLeft,
			's': IntentMoveDown,
			'd': IntentMoveRight,
			'1': IntentToggleAttack,
			'>': IntentDescend,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
		Keys: map[tcell.Key]Intent{
			tcell.KeyUp:    IntentMoveUp,
			tcell.KeyDown:  IntentMoveDown,
			tcell.KeyLeft:  IntentMoveLeft,
			tcell.KeyRight: IntentMoveRight,
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyCtrlQ: IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent, IntentNone if unbound
func (b *Bindings) Lookup(ev *tcell.EventKey) Intent {
	return b.Resolve(ev.Key(), ev.Rune())
}

// Resolve maps a key code and rune, the rune only matters for tcell.KeyRune
func (b *Bindings) Resolve(k tcell.Key, r rune) Intent {
	if k == tcell.KeyRune {
		return b.Runes[r]
	}
	return b.Keys[k]
}

// Clone returns a deep copy with independent maps
func (b *Bindings) Clone() *Bindings {
	c := &Bindings{
		Runes: make(map[rune]Intent, len(b.Runes)),
		Keys:  make(map[tcell.Key]Intent, len(b.Keys)),
	}
	for k, v := range b.Runes {
		c.Runes[k] = v
	}
	for k, v := range b.Keys {
		c.Keys[k] = v
	}
	return c
}
