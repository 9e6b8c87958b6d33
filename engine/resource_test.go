package engine

import "testing"

func TestDifficultyCombinesCyclesAndScore(t *testing.T) {
	g := &GameStateResource{}
	if g.Difficulty() != 0 {
		t.Fatalf("Expected 0, got %d", g.Difficulty())
	}
	g.Cycles = 2
	g.AddScore(10400)
	if g.Difficulty() != 4 {
		t.Errorf("Expected 2 cycles + 2 score levels = 4, got %d", g.Difficulty())
	}
}

func TestAddScoreIgnoresNegative(t *testing.T) {
	g := &GameStateResource{}
	g.AddScore(50)
	g.AddScore(-20)
	if g.Score != 50 {
		t.Errorf("Expected 50, got %d", g.Score)
	}
}

func TestAddDistanceFloorsPerTick(t *testing.T) {
	g := &GameStateResource{}
	// 150 px/s * 0.5s * 0.12 = 9.0
	if got := g.AddDistance(150, 0.5); got != 9 {
		t.Errorf("Expected 9, got %d", got)
	}
}

func TestAddDistanceCarriesFraction(t *testing.T) {
	g := &GameStateResource{}
	// 150 * 1/60 * 0.12 = 0.3 per tick, so 60 ticks award 18
	total := 0
	for i := 0; i < 60; i++ {
		total += g.AddDistance(150, 1.0/60.0)
	}
	if total < 17 || total > 18 {
		t.Errorf("Expected about 18 points over a second, got %d", total)
	}
	if g.Score != total {
		t.Errorf("Expected score to match awarded total %d, got %d", total, g.Score)
	}
}

func TestResetKeepsBest(t *testing.T) {
	g := &GameStateResource{Score: 900, BestScore: 1200, Cycles: 3, GameOver: true}
	g.Reset()
	if g.Score != 0 || g.Cycles != 0 || g.GameOver {
		t.Error("Expected progress cleared")
	}
	if g.BestScore != 1200 {
		t.Errorf("Expected best score kept, got %d", g.BestScore)
	}
}
