package system

import (
	"log"
	"strconv"

	"github.com/lixenwraith/pacific-fighter/constant"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/event"
)

// ScoreSystem awards distance points and settles the run on player death
// Kill awards are credited by ApplyDamage at the moment of destruction
type ScoreSystem struct {
	world   *engine.World
	enabled bool
}

func NewScoreSystem(world *engine.World) engine.System {
	s := &ScoreSystem{world: world}
	s.Init()
	return s
}

// Init restores the persisted best score
func (s *ScoreSystem) Init() {
	w := s.world
	if v, ok := w.Resources.Sinks.Store.Get(engine.KeyBestScore); ok {
		if best, err := strconv.Atoi(v); err == nil && best > w.Resources.Game.BestScore {
			w.Resources.Game.BestScore = best
		} else if err != nil {
			log.Printf("score: ignoring stored best score %q: %v", v, err)
		}
	}
	s.enabled = true
}

func (s *ScoreSystem) Name() string { return "score" }

func (s *ScoreSystem) Priority() int { return constant.PriorityScore }

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerDeath,
		event.EventGameReset,
	}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventPlayerDeath:
		s.gameOver()
	}
}

func (s *ScoreSystem) Update() {
	if !s.enabled {
		return
	}
	w := s.world
	game := w.Resources.Game
	if game.GameOver {
		return
	}
	if _, _, alive := playerPosition(w); !alive {
		return
	}
	game.AddDistance(w.Resources.Config.WorldSpeed, w.Resources.Time.Seconds())
}

// gameOver halts the run and persists a new best score
func (s *ScoreSystem) gameOver() {
	w := s.world
	game := w.Resources.Game
	if game.GameOver {
		return
	}
	game.GameOver = true
	emitSound(w, core.SoundGameOver)
	log.Printf("score: game over with %d points after %d cycles", game.Score, game.Cycles)

	if game.Score <= game.BestScore {
		return
	}
	game.BestScore = game.Score
	if err := w.Resources.Sinks.Store.Set(engine.KeyBestScore, strconv.Itoa(game.BestScore)); err != nil {
		log.Printf("score: failed to save best score: %v", err)
	}
}
