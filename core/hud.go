package core

// HUDState is pushed to the HUD collaborator once per tick
type HUDState struct {
	HP        int
	MaxHP     int
	Bombs     int
	Score     int
	BestScore int
	Segment   Segment
	Landing   bool
	Paused    bool
	GameOver  bool
	Help      string
}
