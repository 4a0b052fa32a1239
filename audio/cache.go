package audio

import (
	"sync"

	"github.com/lixenwraith/gridcrawl/core"
)

// soundCache stores pre-generated unity-gain float buffers
type soundCache struct {
	mu    sync.RWMutex
	rate  int
	store [core.SoundTypeCount]floatBuffer
	ready [core.SoundTypeCount]bool
}

func newSoundCache(rate int) *soundCache {
	return &soundCache{rate: rate}
}

// get returns cached buffer or generates on demand
func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready[st] {
		return c.store[st]
	}

	buf := generateSound(st, c.rate)
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload generates the combat cues at init
func (c *soundCache) preload() {
	c.get(core.SoundHit)
	c.get(core.SoundDeath)
}
