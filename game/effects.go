package game

import (
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
)

// Effect is one transient visual in world pixels
type Effect struct {
	Kind  core.EffectKind
	X, Y  float64
	Scale float64
	Age   time.Duration
	Life  time.Duration
}

// Progress is the elapsed fraction of the effect's life in [0,1]
func (e Effect) Progress() float64 {
	if e.Life <= 0 {
		return 1
	}
	p := float64(e.Age) / float64(e.Life)
	if p > 1 {
		return 1
	}
	return p
}

var effectLife = map[core.EffectKind]time.Duration{
	core.EffectExplosion:    400 * time.Millisecond,
	core.EffectExplosionBig: 900 * time.Millisecond,
	core.EffectSpark:        120 * time.Millisecond,
	core.EffectSmoke:        700 * time.Millisecond,
	core.EffectSplash:       450 * time.Millisecond,
	core.EffectFlakBurst:    350 * time.Millisecond,
	core.EffectMuzzleFlash:  60 * time.Millisecond,
	core.EffectRecoil:       60 * time.Millisecond,
}

// maxEffects bounds the buffer; the oldest entries are dropped first
const maxEffects = 256

// Effects is an EffectSink that keeps short-lived visuals for the hosts
// It is driven from the host goroutine only
type Effects struct {
	items []Effect
}

func NewEffects() *Effects {
	return &Effects{items: make([]Effect, 0, 64)}
}

func (f *Effects) SpawnEffect(kind core.EffectKind, x, y float64, p core.EffectParams) {
	life, ok := effectLife[kind]
	if !ok {
		return
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	if len(f.items) >= maxEffects {
		copy(f.items, f.items[1:])
		f.items = f.items[:len(f.items)-1]
	}
	f.items = append(f.items, Effect{Kind: kind, X: x, Y: y, Scale: scale, Life: life})
}

// Advance ages every effect and drops the expired ones
func (f *Effects) Advance(dt time.Duration) {
	live := f.items[:0]
	for _, e := range f.items {
		e.Age += dt
		if e.Age < e.Life {
			live = append(live, e)
		}
	}
	f.items = live
}

// Active returns the live effects, oldest first; the slice is reused by Advance
func (f *Effects) Active() []Effect {
	return f.items
}

// Clear drops every effect, used on restart
func (f *Effects) Clear() {
	f.items = f.items[:0]
}
