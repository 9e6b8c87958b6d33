package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known counter keys
const (
	KeyTicks        = "engine.ticks"
	KeySpawnFighter = "spawn.fighter"
	KeySpawnBomber  = "spawn.bomber"
	KeySpawnDropped = "spawn.dropped"
	KeySpawnBoat    = "spawn.boat"
	KeySpawnShip    = "spawn.battleship"
	KeyKills        = "combat.kills"
	KeyProjectiles  = "combat.projectiles"
	KeyPhaseChanges = "segment.changes"
	KeyTickMillis   = "engine.tick_ms"
)

// Registry collects telemetry written by systems and read by debug overlays
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Summary renders all metrics as a single sorted line
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		fmt.Fprintf(&b, "%s=%.2f ", key, v.Get())
	})
	return strings.TrimSpace(b.String())
}
