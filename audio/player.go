// Package audio renders sound cues and the engine drone through beep
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pacific-fighter/core"
)

// maxVoices bounds concurrent cues so gunfire cannot flood the mixer
const maxVoices = 24

// Player is the beep-backed AudioPlayer
// Every method is safe before Initialize and after Cleanup; cues are then dropped
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       *soundCache
	drone       *engineDrone
	droneCtrl   *beep.Ctrl
	droneVolume *effects.Volume
	muted       bool
	initialized bool
}

func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		cache: newSoundCache(),
		drone: &engineDrone{freq: enginePitch(1)},
	}
}

// Initialize opens the speaker and starts the silent engine drone
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	p.cache.preload()
	p.droneCtrl = &beep.Ctrl{Streamer: p.drone, Paused: true}
	p.droneVolume = &effects.Volume{Streamer: p.droneCtrl, Base: 2, Volume: -3.5, Silent: p.muted}
	p.mixer.Add(p.droneVolume)

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops every voice and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.droneCtrl = nil
	p.droneVolume = nil
	p.initialized = false
}

// Play queues a cue; false when dropped
func (p *Player) Play(st core.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	buf := p.cache.get(st)
	if buf == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		return false
	}
	p.mixer.Add(newBufferStreamer(buf, cueGain[st]))
	return true
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.initialized {
		speaker.Lock()
		p.droneVolume.Silent = p.muted
		speaker.Unlock()
	}
	return p.muted
}

func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetEngineState retunes the drone; it stops while landed and when the pilot is down
func (p *Player) SetEngineState(healthFraction float64, landing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	freq := enginePitch(healthFraction)
	off := landing || healthFraction <= 0
	if !p.initialized {
		p.drone.freq = freq
		return
	}

	speaker.Lock()
	p.drone.freq = freq
	p.droneCtrl.Paused = off
	speaker.Unlock()
}
