package input

import "strings"

// intentRegistry maps canonical intent names to intents
// Used by the keymap loader to resolve config strings
var intentRegistry = buildIntentRegistry()

func buildIntentRegistry() map[string]Intent {
	m := make(map[string]Intent, IntentCount)
	for i := IntentNone; i < IntentCount; i++ {
		m[intentNames[i]] = i
	}
	return m
}

// ParseIntent resolves a name, "none" is the unbind sentinel
func ParseIntent(name string) (Intent, bool) {
	i, ok := intentRegistry[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// IsIntentName reports whether name resolves to an intent
func IsIntentName(name string) bool {
	_, ok := ParseIntent(name)
	return ok
}
