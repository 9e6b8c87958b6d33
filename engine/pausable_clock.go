package engine

import (
	"sync"
	"time"
)

// PausableClock is the single logical time source of a session
// Game time only advances through Tick or Advance and stands still while paused,
// so timers stored as absolute game time never fire a backlog on resume
type PausableClock struct {
	mu sync.Mutex

	provider TimeProvider
	lastReal time.Time
	gameTime time.Duration
	maxDelta time.Duration

	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock reading wall time from provider
// Deltas above maxDelta are clamped; zero disables the cap
func NewPausableClock(provider TimeProvider, maxDelta time.Duration) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		lastReal: provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick advances game time by the wall time elapsed since the previous tick
// Returns the applied delta, zero while paused
func (pc *PausableClock) Tick() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	elapsed := now.Sub(pc.lastReal)
	pc.lastReal = now
	if pc.paused {
		return 0
	}
	return pc.advanceLocked(elapsed)
}

// Advance moves game time by d regardless of wall time, used by fixed-step drivers
func (pc *PausableClock) Advance(d time.Duration) time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return 0
	}
	return pc.advanceLocked(d)
}

func (pc *PausableClock) advanceLocked(d time.Duration) time.Duration {
	if d < 0 {
		d = 0
	}
	if pc.maxDelta > 0 && d > pc.maxDelta {
		d = pc.maxDelta
	}
	pc.gameTime += d
	return d
}

// Now returns current game time since session start
func (pc *PausableClock) Now() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.gameTime
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement from where it stopped
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	now := pc.provider.Now()
	pc.totalPausedTime += now.Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.lastReal = now
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative wall time spent paused
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// Reset rewinds game time to zero, keeping pause state
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.gameTime = 0
	pc.lastReal = pc.provider.Now()
}
