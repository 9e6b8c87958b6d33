package engine

import "github.com/lixenwraith/pacific-fighter/core"

// EffectSink receives fire-and-forget visual requests
type EffectSink interface {
	SpawnEffect(kind core.EffectKind, x, y float64, p core.EffectParams)
}

// AudioPlayer receives fire-and-forget sound cues
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// EngineListener is an optional AudioPlayer extension that tracks the
// player's engine note from health and landing state
type EngineListener interface {
	SetEngineState(healthFraction float64, landing bool)
}

// HUDSink receives the HUD state once per tick
type HUDSink interface {
	UpdateHUD(core.HUDState)
}

// KeyValueStore persists small string values across sessions
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Persistence keys
const (
	KeyBestScore    = "best_score"
	KeyMuted        = "muted"
	KeyTutorialSeen = "tutorial_seen"
)

// Sinks groups the presentation collaborators
type Sinks struct {
	Effects EffectSink
	Audio   AudioPlayer
	HUD     HUDSink
	Store   KeyValueStore
}

// WithDefaults replaces missing collaborators with no-ops
func (s Sinks) WithDefaults() Sinks {
	if s.Effects == nil {
		s.Effects = NopEffects{}
	}
	if s.Audio == nil {
		s.Audio = &NopAudio{}
	}
	if s.HUD == nil {
		s.HUD = NopHUD{}
	}
	if s.Store == nil {
		s.Store = NewMemoryStore()
	}
	return s
}

type NopEffects struct{}

func (NopEffects) SpawnEffect(core.EffectKind, float64, float64, core.EffectParams) {}

type NopAudio struct {
	muted bool
}

func (a *NopAudio) Play(core.SoundType) bool { return false }
func (a *NopAudio) IsMuted() bool            { return a.muted }

func (a *NopAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

type NopHUD struct{}

func (NopHUD) UpdateHUD(core.HUDState) {}

// MemoryStore is an in-process KeyValueStore
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}
