package system

import (
	"log"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/parameter"
)

// CarrierSystem owns the carrier deck and its landing zone
// A launch carrier exists during LAUNCH, a return carrier during CARRIER_RETURN
type CarrierSystem struct {
	world   *engine.World
	enabled bool
}

func NewCarrierSystem(world *engine.World) engine.System {
	s := &CarrierSystem{world: world}
	s.Init()
	return s
}

func (s *CarrierSystem) Init() {
	s.destroy()
	s.enabled = true
}

func (s *CarrierSystem) Name() string { return "carrier" }

func (s *CarrierSystem) Priority() int { return constant.PriorityCarrier }

func (s *CarrierSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSegmentEnter,
		event.EventGameReset,
	}
}

func (s *CarrierSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if !s.enabled {
		return
	}
	p, ok := ev.Payload.(*event.SegmentPayload)
	if !ok {
		return
	}
	switch p.To {
	case core.SegmentLaunch:
		s.createLaunch()
	case core.SegmentCarrierReturn:
		s.createReturn()
	default:
		s.destroy()
	}
}

func (s *CarrierSystem) Update() {
	if !s.enabled {
		return
	}
	stage := s.world.Resources.Stage
	if stage.Carrier == 0 {
		return
	}
	dx := s.world.Resources.Config.WorldSpeed * s.world.Resources.Time.Seconds()
	k, ok := scrollLeft(s.world, stage.Carrier, dx)
	if !ok || k.X < parameter.CarrierDespawnX {
		s.destroy()
		return
	}
	stage.GroundY = k.Y - parameter.DeckGroundLift
}

func (s *CarrierSystem) createLaunch() {
	cfg := s.world.Resources.Config
	x := cfg.Screen.Width * parameter.LaunchDeckXFactor
	deck := s.create(x, parameter.LaunchDeckWidth, parameter.LaunchZoneOffset, parameter.LaunchZoneWidth)

	// Player starts parked on deck
	player := s.world.Resources.Game.Player
	if pk, ok := s.world.Components.Kinetic.GetComponent(player); ok {
		pk.X = deck.X - parameter.PlayerDeckOffsetX
		pk.Y = deck.Y - parameter.PlayerDeckOffsetY
		pk.VX, pk.VY = 0, 0
		s.world.Components.Kinetic.SetComponent(player, pk)
	}
}

func (s *CarrierSystem) createReturn() {
	cfg := s.world.Resources.Config
	x := cfg.Screen.Width + parameter.ReturnDeckOffset
	s.create(x, parameter.ReturnDeckWidth, parameter.ReturnZoneOffset, parameter.ReturnZoneWidth)
}

// create replaces any existing carrier with a new deck centered at x
func (s *CarrierSystem) create(x, width, zoneOffset, zoneWidth float64) component.KineticComponent {
	s.destroy()

	cfg := s.world.Resources.Config
	deck := component.KineticComponent{
		X: x,
		Y: cfg.OceanLineY() - parameter.DeckLift,
		W: width,
		H: parameter.DeckHeight,
	}
	e := s.world.CreateEntity()
	s.world.Components.Kinetic.SetComponent(e, deck)
	s.world.Components.SetPiece.SetComponent(e, component.SetPieceComponent{
		Kind:    core.KindCarrier,
		HasZone: true,
		ZoneDX:  zoneOffset,
		ZoneDY:  -parameter.ZoneLift,
		ZoneW:   zoneWidth,
		ZoneH:   parameter.ZoneHeight,
	})

	stage := s.world.Resources.Stage
	stage.Carrier = e
	stage.GroundY = deck.Y - parameter.DeckGroundLift
	log.Printf("carrier: deck at x=%.0f", x)
	return deck
}

func (s *CarrierSystem) destroy() {
	stage := s.world.Resources.Stage
	if stage.Carrier == 0 {
		return
	}
	s.world.DestroyEntity(stage.Carrier)
	stage.Carrier = 0
	stage.GroundY = s.world.Resources.Config.OceanLineY() + parameter.OceanGroundDrop
}
