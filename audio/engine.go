// Package audio synthesizes short sound cues and plays them through the speaker.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// Output is the device side of the player
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput forwards to the beep speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }
func (speakerOutput) Close()                  { speaker.Close() }

// Player mixes cues into a single speaker stream
// A player whose device fails to open stays running in silent mode
type Player struct {
	config Config
	cache  *soundCache
	mixer  *beep.Mixer
	out    Output

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64

	mu sync.RWMutex // Protects config
}

// NewPlayer creates a player on the system speaker
func NewPlayer(cfg Config) *Player {
	return NewPlayerWithOutput(cfg, speakerOutput{})
}

// NewPlayerWithOutput creates a player on a custom output
func NewPlayerWithOutput(cfg Config, out Output) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	cfg.MasterVolume = clampVolume(cfg.MasterVolume)
	p := &Player{
		config: cfg,
		cache:  newSoundCache(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		out:    out,
	}
	p.muted.Store(!cfg.Enabled)
	p.cache.preload()
	return p
}

// Start opens the device and attaches the mixer
// Device failure is reported and leaves the player silent
func (p *Player) Start() error {
	if p.running.Load() {
		return fmt.Errorf("audio player already running")
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := p.out.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		p.silentMode.Store(true)
		p.running.Store(true)
		return fmt.Errorf("open audio device: %w", err)
	}

	p.out.Play(p.mixer)
	p.running.Store(true)
	return nil
}

// Stop clears pending cues and closes the device
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	if p.silentMode.Load() {
		return
	}
	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.out.Close()
}

// Play queues a cue, dropped when muted, stopped or silent
func (p *Player) Play(st core.SoundType) {
	if !p.IsEnabled() {
		p.dropped.Add(1)
		return
	}
	buf := p.cache.get(st)
	if buf == nil {
		p.dropped.Add(1)
		return
	}

	p.mu.RLock()
	gain := parameter.CueVolume * p.config.MasterVolume * p.config.effectVolume(st)
	p.mu.RUnlock()

	p.out.Lock()
	p.mixer.Add(&bufferStreamer{buf: buf, gain: gain})
	p.out.Unlock()
	p.played.Add(1)
}

// ToggleMute flips mute, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsEnabled returns true if running, unmuted and the device is open
func (p *Player) IsEnabled() bool {
	return p.running.Load() && !p.muted.Load() && !p.silentMode.Load()
}

func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	p.config.MasterVolume = clampVolume(vol)
	p.mu.Unlock()
}

// Stats returns played and dropped cue counts
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}

// bufferStreamer plays a mono buffer on both channels
type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := s.buf[s.pos] * s.gain
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

// Silent discards every cue
type Silent struct{}

func (Silent) Play(core.SoundType) {}
