package system

import (
	"context"
	"errors"
	"log"

	"github.com/looplab/fsm"

	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
	"github.com/lixenwraith/pacific-fighter/status"
)

// FSM event names
const (
	segmentAdvance  = "advance"
	segmentRelaunch = "relaunch"
)

var (
	stateLaunch = core.SegmentLaunch.String()
	stateOcean  = core.SegmentOcean.String()
	stateIsland = core.SegmentIsland.String()
	stateReturn = core.SegmentCarrierReturn.String()
)

// SegmentSystem drives the mission phase cycle
// LAUNCH -> OCEAN -> ISLAND -> CARRIER_RETURN -> OCEAN ...; LAUNCH again only after a landing
type SegmentSystem struct {
	world   *engine.World
	machine *fsm.FSM
	started bool
	enabled bool
}

func NewSegmentSystem(world *engine.World) engine.System {
	s := &SegmentSystem{world: world}
	s.Init()
	return s
}

func (s *SegmentSystem) Init() {
	s.machine = fsm.NewFSM(
		stateLaunch,
		fsm.Events{
			{Name: segmentAdvance, Src: []string{stateLaunch}, Dst: stateOcean},
			{Name: segmentAdvance, Src: []string{stateOcean}, Dst: stateIsland},
			{Name: segmentAdvance, Src: []string{stateIsland}, Dst: stateReturn},
			{Name: segmentAdvance, Src: []string{stateReturn}, Dst: stateOcean},
			{Name: segmentRelaunch, Src: []string{stateReturn}, Dst: stateLaunch},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) { s.enter(e) },
		},
	)
	s.started = false
	s.enabled = true
}

func (s *SegmentSystem) Name() string { return "segment" }

func (s *SegmentSystem) Priority() int { return constant.PrioritySegment }

func (s *SegmentSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventLandingComplete,
	}
}

func (s *SegmentSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventLandingComplete:
		if s.enabled {
			s.fire(segmentRelaunch)
		}
	}
}

// Current returns the machine's phase
func (s *SegmentSystem) Current() core.Segment {
	seg, _ := core.ParseSegment(s.machine.Current())
	return seg
}

func (s *SegmentSystem) Update() {
	if !s.enabled {
		return
	}
	game := s.world.Resources.Game
	now := s.world.Resources.Time.Now

	if !s.started {
		s.started = true
		game.Segment = core.SegmentLaunch
		game.SegmentEndsAt = now + s.world.Resources.Config.Segment.Launch
		s.world.PushEvent(event.EventSegmentEnter, &event.SegmentPayload{
			From: core.SegmentLaunch, To: core.SegmentLaunch,
		})
		return
	}
	if game.GameOver || now < game.SegmentEndsAt {
		return
	}
	// Phase holds while the player is on deck for repairs
	if pilot, ok := s.world.Components.Pilot.GetComponent(game.Player); ok && pilot.Landing {
		return
	}
	s.fire(segmentAdvance)
}

func (s *SegmentSystem) fire(name string) {
	err := s.machine.Event(context.Background(), name)
	if err == nil {
		return
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}
	log.Printf("segment: %s from %s rejected: %v", name, s.machine.Current(), err)
}

// enter runs the entry actions of the destination phase
func (s *SegmentSystem) enter(e *fsm.Event) {
	from, _ := core.ParseSegment(e.Src)
	to, _ := core.ParseSegment(e.Dst)
	relaunch := e.Event == segmentRelaunch

	game := s.world.Resources.Game
	cfg := s.world.Resources.Config
	now := s.world.Resources.Time.Now

	game.Segment = to
	if relaunch {
		game.SegmentEndsAt = now + cfg.Segment.Relaunch
	} else {
		game.SegmentEndsAt = now + cfg.SegmentDuration(e.Dst)
	}
	if to == core.SegmentCarrierReturn {
		game.Cycles++
	}

	s.world.Resources.Status.Ints.Get(status.KeyPhaseChanges).Add(1)
	log.Printf("segment: %s -> %s at %v (difficulty %d)", from, to, now, game.Difficulty())

	s.world.PushEvent(event.EventSegmentEnter, &event.SegmentPayload{
		From: from, To: to, Relaunch: relaunch,
	})
}
