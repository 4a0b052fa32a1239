package input

// Intent is a semantic game input, decoupled from the physical key
type Intent uint8

const (
	IntentNone Intent = iota

	// Movement, also used as attack directions while aiming
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight

	// Gameplay
	IntentToggleAttack // enter or leave aim mode
	IntentDescend      // regenerate the floor

	// System-level intents, consumed by the host
	IntentQuit
	IntentToggleMute

	IntentCount
)

var intentNames = [IntentCount]string{
	IntentNone:         "none",
	IntentMoveUp:       "move_up",
	IntentMoveDown:     "move_down",
	IntentMoveLeft:     "move_left",
	IntentMoveRight:    "move_right",
	IntentToggleAttack: "toggle_attack",
	IntentDescend:      "descend",
	IntentQuit:         "quit",
	IntentToggleMute:   "toggle_mute",
}

func (i Intent) String() string {
	if i < IntentCount {
		return intentNames[i]
	}
	return "unknown"
}

// MoveIntents lists movement intents in key-check order, matching core.Directions
var MoveIntents = [4]Intent{IntentMoveUp, IntentMoveLeft, IntentMoveDown, IntentMoveRight}
