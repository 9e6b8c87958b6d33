package system

import (
	"math"
	"time"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

// SpawnSystem is the difficulty director: fighter and bomber waves plus island turret fire
type SpawnSystem struct {
	world *engine.World

	nextFighterAt time.Duration
	nextBomberAt  time.Duration
	fighterArmed  bool
	bomberArmed   bool

	enabled bool
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.fighterArmed = false
	s.bomberArmed = false
	s.nextFighterAt = 0
	s.nextBomberAt = 0
	s.enabled = true
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return constant.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *SpawnSystem) Update() {
	if !s.enabled || s.world.Resources.Game.GameOver {
		return
	}
	now := s.world.Resources.Time.Now
	game := s.world.Resources.Game
	d := game.Difficulty()

	if !s.fighterArmed {
		s.nextFighterAt = now + parameter.FighterFirstSpawn
		s.fighterArmed = true
	}
	// Expired timer waits through LAUNCH and fires on the first tick after it
	if game.Segment != core.SegmentLaunch && now >= s.nextFighterAt {
		s.spawnFighter(d)
		s.nextFighterAt = now + FighterInterval(d, countKind(s.world, core.KindBomber) > 0)
	}

	if game.Segment == core.SegmentOcean || game.Segment == core.SegmentCarrierReturn {
		if !s.bomberArmed {
			s.nextBomberAt = now + parameter.BomberFirstSpawn
			s.bomberArmed = true
		}
		if now >= s.nextBomberAt {
			if countKind(s.world, core.KindBomber) < parameter.MaxBombers {
				s.spawnBomber(d)
			}
			s.nextBomberAt = now + BomberInterval(d)
		}
	}

	s.updateTurrets(now)
}

// bomberLanes returns the Y of every live bomber
func (s *SpawnSystem) bomberLanes() []float64 {
	var lanes []float64
	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		c, ok := s.world.Components.Combat.GetComponent(e)
		if !ok || c.Kind != core.KindBomber {
			continue
		}
		if k, ok := s.world.Components.Kinetic.GetComponent(e); ok {
			lanes = append(lanes, k.Y)
		}
	}
	return lanes
}

func (s *SpawnSystem) spawnFighter(d int) {
	w := s.world
	cfg := w.Resources.Config
	r := w.Resources.Rand

	top := parameter.FighterBandTop
	bottom := cfg.Screen.Height - parameter.FighterBandBottomInset
	y, ok := PickLane(r, top, bottom, s.bomberLanes(), parameter.BomberLaneClearance)
	if !ok {
		w.Resources.Status.Ints.Get(status.KeySpawnDropped).Add(1)
		return
	}

	ace := r.Chance(AceChance(d))
	hp := FighterHP(d, ace)
	now := w.Resources.Time.Now

	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{
		X:  cfg.Screen.Width + parameter.FighterSpawnOffsetX,
		Y:  y,
		VX: -FighterSpeed(d),
		W:  parameter.FighterWidth,
		H:  parameter.FighterHeight,
	})
	w.Components.Combat.SetComponent(e, component.CombatComponent{Kind: core.KindFighter, HitPoints: hp, MaxHitPoints: hp})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{
		SpawnY:     y,
		Ace:        ace,
		ShotEvery:  FighterShotEvery(d, ace),
		NextShotAt: now + parameter.FighterFirstShot + jitter(r, parameter.FighterFirstShotSpread),
	})
	w.Resources.Status.Ints.Get(status.KeySpawnFighter).Add(1)
}

func (s *SpawnSystem) spawnBomber(d int) {
	w := s.world
	cfg := w.Resources.Config
	r := w.Resources.Rand

	top := parameter.BomberBandTop
	bottom := cfg.OceanLineY() - parameter.BomberBandBottom
	y, ok := PickLane(r, top, bottom, s.bomberLanes(), parameter.BomberLaneClearance)
	if !ok {
		w.Resources.Status.Ints.Get(status.KeySpawnDropped).Add(1)
		return
	}
	hp := BomberHP(d)
	shotEvery := BomberShotEvery(d)
	now := w.Resources.Time.Now

	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{
		X:  cfg.Screen.Width + parameter.BomberSpawnOffsetX,
		Y:  y,
		VX: -BomberSpeed(d),
		W:  parameter.BomberWidth,
		H:  parameter.BomberHeight,
	})
	w.Components.Combat.SetComponent(e, component.CombatComponent{Kind: core.KindBomber, HitPoints: hp, MaxHitPoints: hp})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{
		SpawnY:     y,
		ShotEvery:  shotEvery,
		NextShotAt: now + shotEvery/2 + jitter(r, shotEvery/2),
	})
	w.Resources.Status.Ints.Get(status.KeySpawnBomber).Add(1)
}

// updateTurrets runs the per-turret fire timers and Bernoulli trials
func (s *SpawnSystem) updateTurrets(now time.Duration) {
	w := s.world
	r := w.Resources.Rand
	width := w.Resources.Config.Screen.Width

	for _, e := range w.Components.Ground.GetAllEntities() {
		c, ok := w.Components.Combat.GetComponent(e)
		if !ok || c.Kind != core.KindTurret {
			continue
		}
		g, ok := w.Components.Ground.GetComponent(e)
		if !ok {
			continue
		}
		if g.NextFireAt == 0 {
			g.NextFireAt = now + parameter.TurretLateArm + jitter(r, parameter.TurretLateArmSpread)
			w.Components.Ground.SetComponent(e, g)
			continue
		}
		if now < g.NextFireAt {
			continue
		}
		g.NextFireAt = now + g.FireEvery
		w.Components.Ground.SetComponent(e, g)

		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok || k.X > width {
			continue
		}
		if !r.Chance(g.FireChance) {
			continue
		}
		fireFlak(w, k.X+k.W*parameter.TurretBarrelX, k.Y-k.H*parameter.TurretBarrelY)
		emitEffect(w, core.EffectRecoil, k.X, k.Y, core.EffectParams{Target: e})
	}
}

// PickLane samples a Y in [top, bottom] outside every blocked lane +/- clearance
// Free space above and below each lane is weighted by its length; no free space returns false
func PickLane(r *vmath.FastRand, top, bottom float64, blocked []float64, clearance float64) (float64, bool) {
	if bottom <= top {
		return 0, false
	}
	type span struct{ lo, hi float64 }
	free := []span{{top, bottom}}

	for _, b := range blocked {
		lo, hi := b-clearance, b+clearance
		next := free[:0:0]
		for _, f := range free {
			if hi <= f.lo || lo >= f.hi {
				next = append(next, f)
				continue
			}
			if lo > f.lo {
				next = append(next, span{f.lo, lo})
			}
			if hi < f.hi {
				next = append(next, span{hi, f.hi})
			}
		}
		free = next
	}

	total := 0.0
	for _, f := range free {
		total += f.hi - f.lo
	}
	if total <= 0 {
		return 0, false
	}

	u := r.Float64() * total
	for _, f := range free {
		length := f.hi - f.lo
		if u < length {
			return f.lo + u, true
		}
		u -= length
	}
	last := free[len(free)-1]
	return math.Nextafter(last.hi, last.lo), true
}
