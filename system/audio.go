package system

import (
	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct player access
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer

	enabled bool
}

// NewAudioSystem creates an audio system bound to the world's audio sink
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world:  world,
		player: world.Resources.Sinks.Audio,
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return constant.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if !s.enabled || s.player == nil {
		return
	}
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.player.Play(p.Sound)
	}
}

// Update feeds engine telemetry to players that model an engine note
func (s *AudioSystem) Update() {
	if !s.enabled {
		return
	}
	listener, ok := s.player.(engine.EngineListener)
	if !ok {
		return
	}
	w := s.world
	pilot, ok := w.Components.Pilot.GetComponent(w.Resources.Game.Player)
	if !ok || pilot.Dead || w.Resources.Game.GameOver {
		listener.SetEngineState(0, false)
		return
	}
	frac := 0.0
	if pilot.MaxHealth > 0 {
		frac = pilot.Health / pilot.MaxHealth
	}
	listener.SetEngineState(frac, pilot.Landing)
}
