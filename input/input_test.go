package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestKeyboardFreshPressIsJustPressed(t *testing.T) {
	k := NewKeyboard(100 * time.Millisecond)
	k.Press(IntentToggleAttack, t0)

	s := k.Snapshot(t0)
	if !s.JustPressed(IntentToggleAttack) || !s.Pressed(IntentToggleAttack) {
		t.Fatalf("Expected fresh press to be held and just pressed")
	}

	s = k.Snapshot(t0.Add(10 * time.Millisecond))
	if s.JustPressed(IntentToggleAttack) {
		t.Errorf("Expected just-pressed cleared by previous snapshot")
	}
	if !s.Pressed(IntentToggleAttack) {
		t.Errorf("Expected still held inside the hold window")
	}
}

func TestKeyboardRepeatsAreHeldNotFresh(t *testing.T) {
	k := NewKeyboard(100 * time.Millisecond)
	k.Press(IntentMoveUp, t0)
	k.Snapshot(t0)

	k.Press(IntentMoveUp, t0.Add(50*time.Millisecond))
	s := k.Snapshot(t0.Add(60 * time.Millisecond))
	if s.JustPressed(IntentMoveUp) {
		t.Errorf("Expected repeat inside hold window not to be fresh")
	}
	if !s.Pressed(IntentMoveUp) || !s.AnyMovePressed() {
		t.Errorf("Expected repeat to keep the key held")
	}
}

func TestKeyboardHoldExpires(t *testing.T) {
	k := NewKeyboard(100 * time.Millisecond)
	k.Press(IntentMoveLeft, t0)
	k.Snapshot(t0)

	s := k.Snapshot(t0.Add(150 * time.Millisecond))
	if s.Pressed(IntentMoveLeft) || s.AnyMovePressed() {
		t.Errorf("Expected key released after hold window")
	}

	k.Press(IntentMoveLeft, t0.Add(300*time.Millisecond))
	s = k.Snapshot(t0.Add(300 * time.Millisecond))
	if !s.JustPressed(IntentMoveLeft) {
		t.Errorf("Expected press after a quiet gap to be fresh")
	}
}

func TestKeyboardRelease(t *testing.T) {
	k := NewKeyboard(time.Second)
	k.Press(IntentMoveDown, t0)
	k.Snapshot(t0)
	k.Release(IntentMoveDown)
	if k.Snapshot(t0.Add(time.Millisecond)).Pressed(IntentMoveDown) {
		t.Errorf("Expected release to clear held state")
	}
}

func TestKeyboardIgnoresNone(t *testing.T) {
	k := NewKeyboard(time.Second)
	k.Press(IntentNone, t0)
	k.Press(IntentCount, t0)
	if k.Snapshot(t0).Pressed(IntentNone) {
		t.Errorf("Expected IntentNone never held")
	}
}

func TestStateWith(t *testing.T) {
	s := State{}.With(IntentMoveRight, false)
	if !s.Pressed(IntentMoveRight) || s.JustPressed(IntentMoveRight) {
		t.Errorf("Expected held without fresh flag")
	}
	s = s.With(IntentDescend, true)
	if !s.JustPressed(IntentDescend) {
		t.Errorf("Expected fresh flag set")
	}
}

func TestParseIntent(t *testing.T) {
	for i := IntentNone; i < IntentCount; i++ {
		got, ok := ParseIntent(i.String())
		if !ok || got != i {
			t.Errorf("ParseIntent(%q) = %v, %v", i.String(), got, ok)
		}
	}
	if _, ok := ParseIntent(" Move_Up "); !ok {
		t.Errorf("Expected case and space insensitive lookup")
	}
	if IsIntentName("fly") {
		t.Errorf("Expected unknown intent rejected")
	}
}

func TestBindingsLookup(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Intent
	}{
		{"rune w", tcell.KeyRune, 'w', IntentMoveUp},
		{"arrow left", tcell.KeyLeft, 0, IntentMoveLeft},
		{"ctrl c", tcell.KeyCtrlC, 0, IntentQuit},
		{"unbound", tcell.KeyRune, 'z', IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Resolve(tt.key, tt.r); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadBindings(t *testing.T) {
	base := DefaultBindings()
	b, err := LoadBindings(base, map[string]string{
		"k":     "move_up",
		"w":     "none",
		"space": "toggle_attack",
		"Enter": "descend",
	})
	if err != nil {
		t.Fatalf("LoadBindings: %v", err)
	}

	if b.Runes['k'] != IntentMoveUp {
		t.Errorf("Expected k bound to move_up")
	}
	if _, ok := b.Runes['w']; ok {
		t.Errorf("Expected w unbound")
	}
	if b.Runes[' '] != IntentToggleAttack {
		t.Errorf("Expected space alias bound")
	}
	if b.Keys[tcell.KeyEnter] != IntentDescend {
		t.Errorf("Expected enter bound")
	}
	if base.Runes['w'] != IntentMoveUp {
		t.Errorf("Expected base bindings untouched")
	}
}

func TestLoadBindingsErrors(t *testing.T) {
	tests := []struct {
		name   string
		keymap map[string]string
	}{
		{"unknown intent", map[string]string{"x": "teleport"}},
		{"bad key", map[string]string{"xyz": "move_up"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBindings(DefaultBindings(), tt.keymap); err == nil {
				t.Errorf("Expected error")
			}
		})
	}
}
