package action

import (
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/engine"
	"github.com/lixenwraith/gridcrawl/logging"
)

// PrintEntityAction logs that an entity took its turn
type PrintEntityAction struct {
	Entity core.Entity
}

func NewPrintEntity(e core.Entity) *PrintEntityAction {
	return &PrintEntityAction{Entity: e}
}

func (a *PrintEntityAction) String() string { return "print_entity" }

func (a *PrintEntityAction) CanAttempt(*engine.View) bool { return true }

func (a *PrintEntityAction) Attempt(*engine.World) Status {
	logging.NewEvent(logging.Get().Info()).
		Add(logging.Entity(a.Entity)).
		Msg("entity is acting")
	return Finished
}

// SoundPlayer is the audio sink registered as a world resource
type SoundPlayer interface {
	Play(sound core.SoundType)
}

// PlaySoundAction fires a sound cue through the registered player
type PlaySoundAction struct {
	Sound core.SoundType
}

func NewPlaySound(s core.SoundType) *PlaySoundAction {
	return &PlaySoundAction{Sound: s}
}

func (a *PlaySoundAction) String() string { return "play_sound " + a.Sound.String() }

// CanAttempt is unreachable, cues are only pushed by other actions
func (a *PlaySoundAction) CanAttempt(*engine.View) bool {
	return followUpOnly("PlaySoundAction")
}

// Attempt is a no-op when no player is registered
func (a *PlaySoundAction) Attempt(w *engine.World) Status {
	if p, ok := engine.GetResource[SoundPlayer](w.Resources); ok && p != nil {
		p.Play(a.Sound)
	}
	return Finished
}
