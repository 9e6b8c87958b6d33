package audio

import (
	"sync"

	"github.com/lixenwraith/pacific-fighter/core"
)

// soundCache stores pre-generated unity-gain cue buffers
type soundCache struct {
	mu    sync.RWMutex
	store [core.SoundTypeCount]floatBuffer
	ready [core.SoundTypeCount]bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cached buffer or generates it on demand
func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st < 0 || int(st) >= core.SoundTypeCount {
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

	buf := generateSound(st)
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload generates the cues that fire every few frames
func (c *soundCache) preload() {
	c.get(core.SoundGun)
	c.get(core.SoundExplosion)
}
