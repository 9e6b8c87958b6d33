package engine

import (
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/parameter"
	"github.com/lixenwraith/pacific-fighter/status"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

// Resources are world-global singletons shared by systems
type Resources struct {
	Time   *TimeResource
	Input  *InputResource
	Config *parameter.Tuning
	Game   *GameStateResource
	Stage  *StageResource
	Rand   *vmath.FastRand
	Status *status.Registry
	Sinks  Sinks
}

// TimeResource is the tick's view of the logical clock
type TimeResource struct {
	Now         time.Duration // game time since session start
	DeltaTime   time.Duration
	FrameNumber int64
}

// Update stamps a new tick
func (t *TimeResource) Update(now, dt time.Duration) {
	t.Now = now
	t.DeltaTime = dt
	t.FrameNumber++
}

// Seconds returns the tick delta in seconds
func (t *TimeResource) Seconds() float64 {
	return t.DeltaTime.Seconds()
}

// InputResource holds the intent for the current tick, written by the session
type InputResource struct {
	Intent core.Intent
}

// GameStateResource is session-owned progress: score, phase and difficulty inputs
type GameStateResource struct {
	Player core.Entity

	Segment       core.Segment
	SegmentEndsAt time.Duration
	Cycles        int

	Score     int
	BestScore int
	GameOver  bool
	Paused    bool
	Help      string

	distanceCarry float64
}

// Difficulty is completed cycles plus one level per score step
// Both inputs only grow, so difficulty never decreases within a session
func (g *GameStateResource) Difficulty() int {
	return g.Cycles + g.Score/parameter.DifficultyScoreStep
}

// AddScore awards points; negative awards are ignored
func (g *GameStateResource) AddScore(points int) {
	if points > 0 {
		g.Score += points
	}
}

// AddDistance awards floor(speed*dt*rate) points, carrying the fraction to the next call
func (g *GameStateResource) AddDistance(worldSpeed, dtSeconds float64) int {
	g.distanceCarry += worldSpeed * dtSeconds * parameter.DistanceScoreRate
	points := int(g.distanceCarry)
	g.distanceCarry -= float64(points)
	g.AddScore(points)
	return points
}

// Reset clears session progress keeping the persisted best score
func (g *GameStateResource) Reset() {
	best := g.BestScore
	*g = GameStateResource{BestScore: best}
}

// StageResource tracks the active set-piece and the ground proxy height
// Written only by the island and carrier systems
type StageResource struct {
	GroundY float64
	Island  core.Entity
	Carrier core.Entity
}

// OpenOcean reports that no solid set-piece is present
func (s *StageResource) OpenOcean() bool {
	return s.Island == 0 && s.Carrier == 0
}
