package game

import (
	"fmt"

	"github.com/tomz197/starfall/internal/object"
)

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Score    int
	TimeLeft int // Whole seconds, rounded up
	GameOver bool
	Banner   string // Empty while the round runs
	Stats    Stats
	Shapes   []object.Shape // Player first, then falling objects
}

// Snapshot describes the current frame. Shapes are appended to buf to let
// callers reuse its backing array between frames.
func (w *World) Snapshot(buf []object.Shape) Snapshot {
	shapes := buf[:0]
	shapes = append(shapes, w.player.Shape(w.timeLeft, w.tuning.Pulse))
	for _, e := range w.falling {
		shapes = append(shapes, e.Shape(w.timeLeft, w.tuning.Pulse))
	}

	snap := Snapshot{
		Score:    w.score,
		TimeLeft: w.TimeLeftDisplay(),
		GameOver: w.GameOver(),
		Stats:    w.stats,
		Shapes:   shapes,
	}
	if snap.GameOver {
		snap.Banner = GameOverBanner(w.score)
	}
	return snap
}

// ScoreText is the HUD score label.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// TimeText is the HUD countdown label.
func TimeText(seconds int) string {
	return fmt.Sprintf("Time: %d", seconds)
}

// GameOverBanner is the message shown once the round ends.
func GameOverBanner(score int) string {
	return fmt.Sprintf("Game Over! Final Score: %d", score)
}

// StatsText summarizes the round for the game-over screen.
func StatsText(s Stats) string {
	return fmt.Sprintf("Stars caught: %d/%d   Bombs hit: %d/%d",
		s.StarsCaught, s.StarsSpawned, s.BombsHit, s.BombsSpawned)
}
