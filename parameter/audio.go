package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CueDuration is the length of each synthesized sound cue
	CueDuration = 80 * time.Millisecond

	// CueVolume is the peak amplitude of a cue
	CueVolume = 0.3
)
