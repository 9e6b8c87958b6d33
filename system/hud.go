package system

import (
	"log"

	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
)

// Help lines shown while a phase is active
var segmentHelp = map[core.Segment]string{
	core.SegmentLaunch:        "LAUNCH: climb off the deck",
	core.SegmentOcean:         "OCEAN: fighters inbound",
	core.SegmentIsland:        "ISLAND: bomb the primary target",
	core.SegmentCarrierReturn: "CARRIER_RETURN: touch down slowly to repair and rearm",
}

const (
	tutorialHelp = "UP/DOWN climb and dive, SPACE fires, B drops a bomb, P pauses, M mutes"
	gameOverHelp = "GAME OVER: press R to restart"
	pausedHelp   = "PAUSED: press P to resume"
	landingHelp  = "LANDED: repairing and rearming"
)

// HUDSystem publishes the HUD state once per tick and owns the help line
// The controls tutorial shows during the first launch until the ocean is reached
type HUDSystem struct {
	world        *engine.World
	sink         engine.HUDSink
	tutorialSeen bool
	enabled      bool
}

func NewHUDSystem(world *engine.World) engine.System {
	s := &HUDSystem{
		world: world,
		sink:  world.Resources.Sinks.HUD,
	}
	s.Init()
	return s
}

func (s *HUDSystem) Init() {
	_, seen := s.world.Resources.Sinks.Store.Get(engine.KeyTutorialSeen)
	s.tutorialSeen = seen
	s.enabled = true
}

func (s *HUDSystem) Name() string { return "hud" }

func (s *HUDSystem) Priority() int { return constant.PriorityHUD }

func (s *HUDSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSegmentEnter,
	}
}

func (s *HUDSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventSegmentEnter:
		p, ok := ev.Payload.(*event.SegmentPayload)
		if ok && p.To == core.SegmentOcean && !s.tutorialSeen {
			s.tutorialSeen = true
			if err := s.world.Resources.Sinks.Store.Set(engine.KeyTutorialSeen, "1"); err != nil {
				log.Printf("hud: failed to save tutorial flag: %v", err)
			}
		}
	}
}

func (s *HUDSystem) Update() {
	if !s.enabled {
		return
	}
	s.Publish()
}

// Publish pushes the current state to the sink; the session also calls it while paused
func (s *HUDSystem) Publish() {
	w := s.world
	game := w.Resources.Game
	game.Help = s.helpLine()

	state := core.HUDState{
		Score:     game.Score,
		BestScore: max(game.BestScore, game.Score),
		Segment:   game.Segment,
		Paused:    game.Paused,
		GameOver:  game.GameOver,
		Help:      game.Help,
	}
	if pilot, ok := w.Components.Pilot.GetComponent(game.Player); ok {
		state.HP = pilot.HealthPoints()
		state.MaxHP = int(pilot.MaxHealth)
		state.Bombs = pilot.Bombs
		state.Landing = pilot.Landing
	}
	if s.sink != nil {
		s.sink.UpdateHUD(state)
	}
}

func (s *HUDSystem) helpLine() string {
	w := s.world
	game := w.Resources.Game
	switch {
	case game.GameOver:
		return gameOverHelp
	case game.Paused:
		return pausedHelp
	}
	if pilot, ok := w.Components.Pilot.GetComponent(game.Player); ok && pilot.Landing {
		return landingHelp
	}
	if !s.tutorialSeen && game.Segment == core.SegmentLaunch {
		return tutorialHelp
	}
	return segmentHelp[game.Segment]
}
