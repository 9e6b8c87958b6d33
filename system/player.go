package system

import (
	"log"
	"math"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

// PlayerSystem applies intents to the aircraft: movement, set-piece solidity,
// sea-skimming damage and the carrier landing sequence
type PlayerSystem struct {
	world   *engine.World
	enabled bool
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

// Init creates a fresh player, replacing any previous one
func (s *PlayerSystem) Init() {
	w := s.world
	if old := w.Resources.Game.Player; old != 0 {
		w.DestroyEntity(old)
	}
	cfg := w.Resources.Config
	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{
		X: cfg.Player.StartX,
		Y: cfg.Screen.Height * cfg.Player.StartYFactor,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	})
	w.Components.Pilot.SetComponent(e, component.PilotComponent{
		Health:    cfg.Player.MaxHealth,
		MaxHealth: cfg.Player.MaxHealth,
		Bombs:     cfg.Player.MaxBombs,
		MaxBombs:  cfg.Player.MaxBombs,
	})
	w.Resources.Game.Player = e
	s.enabled = true
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return constant.PriorityPlayer }

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}
	w := s.world
	e := w.Resources.Game.Player
	pilot, ok := w.Components.Pilot.GetComponent(e)
	if !ok || pilot.Dead {
		return
	}
	k, ok := w.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	if pilot.Landing {
		s.updateLanding(e, pilot, k)
		return
	}

	cfg := w.Resources.Config.Player
	dt := w.Resources.Time.Seconds()
	intent := w.Resources.Input.Intent

	// Horizontal position eases toward a nudged anchor
	nudge := 0.0
	if intent.Left {
		nudge--
	}
	if intent.Right {
		nudge++
	}
	k.X = vmath.Lerp(k.X, cfg.StartX+nudge*cfg.XNudge, math.Min(1, cfg.XSmooth*dt))

	switch {
	case intent.Up && !intent.Down:
		k.VY = -cfg.YSpeed
	case intent.Down && !intent.Up:
		k.VY = cfg.YSpeed
	case intent.HasPointer:
		k.VY = vmath.Clamp((intent.PointerY-k.Y)*cfg.PointerGain, -cfg.YSpeed, cfg.YSpeed)
	default:
		k.VY = 0
	}
	k.Y += k.VY * dt
	approachVY := k.VY

	s.restOnSetPieces(&k)

	ocean := w.Resources.Config.OceanLineY()
	k.Y = vmath.Clamp(k.Y, cfg.MinY, ocean)
	w.Components.Kinetic.SetComponent(e, k)

	if k.Box().Bottom() > ocean {
		DamagePlayer(w, cfg.WaterDamage*dt)
		if p, ok := w.Components.Pilot.GetComponent(e); ok && p.Dead {
			return
		}
	}

	s.checkLanding(e, k, approachVY)
}

// restOnSetPieces keeps the aircraft above the island mass and carrier deck
func (s *PlayerSystem) restOnSetPieces(k *component.KineticComponent) {
	stage := s.world.Resources.Stage
	for _, piece := range []core.Entity{stage.Island, stage.Carrier} {
		if piece == 0 {
			continue
		}
		body, ok := s.world.Components.Kinetic.GetComponent(piece)
		if !ok {
			continue
		}
		if k.Box().Overlaps(body.Box()) {
			k.Y = body.Box().Top() - k.H/2
			if k.VY > 0 {
				k.VY = 0
			}
		}
	}
}

// checkLanding starts the repair sequence on a slow touchdown inside the landing zone
// Speed is judged before the deck stops the aircraft
func (s *PlayerSystem) checkLanding(e core.Entity, k component.KineticComponent, vy float64) {
	w := s.world
	if w.Resources.Game.Segment != core.SegmentCarrierReturn {
		return
	}
	zone, ok := s.landingZone()
	if !ok || !k.Box().Overlaps(zone) {
		return
	}
	if math.Abs(vy) >= w.Resources.Config.Player.LandingMaxVY {
		return
	}

	pilot, _ := w.Components.Pilot.GetComponent(e)
	pilot.Landing = true
	pilot.LandingEndsAt = w.Resources.Time.Now + w.Resources.Config.Player.RepairDelay
	w.Components.Pilot.SetComponent(e, pilot)

	k.X, k.Y = zone.X, zone.Y
	k.VY = 0
	w.Components.Kinetic.SetComponent(e, k)
	emitSound(w, core.SoundLanding)
	log.Printf("player: landed at %v", w.Resources.Time.Now)
}

func (s *PlayerSystem) landingZone() (vmath.Box, bool) {
	carrier := s.world.Resources.Stage.Carrier
	if carrier == 0 {
		return vmath.Box{}, false
	}
	body, ok := s.world.Components.Kinetic.GetComponent(carrier)
	if !ok {
		return vmath.Box{}, false
	}
	piece, ok := s.world.Components.SetPiece.GetComponent(carrier)
	if !ok {
		return vmath.Box{}, false
	}
	return piece.Zone(body)
}

// updateLanding keeps the aircraft on deck, then repairs, rearms and requests a relaunch
func (s *PlayerSystem) updateLanding(e core.Entity, pilot component.PilotComponent, k component.KineticComponent) {
	w := s.world
	if zone, ok := s.landingZone(); ok {
		k.X, k.Y = zone.X, zone.Y
		k.VY = 0
		w.Components.Kinetic.SetComponent(e, k)
	}
	if w.Resources.Time.Now < pilot.LandingEndsAt {
		return
	}

	pilot.Health = pilot.MaxHealth
	pilot.Bombs = pilot.MaxBombs
	pilot.Landing = false
	w.Components.Pilot.SetComponent(e, pilot)
	w.PushEvent(event.EventLandingComplete, nil)
}
