package audio

import (
	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// Config holds audio parameters
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultConfig returns audio muted at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		MasterVolume: 1.0,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundHit:    1.0,
			core.SoundDeath:  1.0,
			core.SoundStep:   0.5,
			core.SoundStairs: 0.8,
		},
	}
}

// effectVolume is the per-cue gain, 1 when unset
func (c Config) effectVolume(st core.SoundType) float64 {
	if v, ok := c.EffectVolumes[st]; ok {
		return v
	}
	return 1.0
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}
