package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in config
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
}

// LoadBindings applies a key name → intent name map on top of base
// "none" unbinds the key. Returns error on unknown key or intent names
func LoadBindings(base *Bindings, keymap map[string]string) (*Bindings, error) {
	result := base.Clone()

	for keyStr, intentName := range keymap {
		intent, ok := ParseIntent(intentName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown intent: %q", keyStr, intentName)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			if intent == IntentNone {
				delete(result.Keys, k)
			} else {
				result.Keys[k] = intent
			}
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		if intent == IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = intent
		}
	}

	return result, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}
