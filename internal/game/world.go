// Package game holds the round simulation: the world aggregate, the per-frame
// step, collision scoring and the round state machine. It performs no I/O.
package game

import (
	"math"

	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/object"
)

// RoundState is the phase of the current round.
type RoundState int

const (
	RoundRunning  RoundState = iota // Timer counting down, gameplay active
	RoundGameOver                   // Timer expired, waiting for restart
)

// String returns a human-readable name for the state.
func (s RoundState) String() string {
	switch s {
	case RoundRunning:
		return "running"
	case RoundGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// FrameInput is everything the host supplies for one frame.
type FrameInput struct {
	Delta   float64 // Seconds since the previous frame; callers clamp to >= 0
	Left    bool    // Level-triggered
	Right   bool    // Level-triggered
	Restart bool    // Edge-triggered, only honoured during game over
}

// Stats counts what happened during the current round.
type Stats struct {
	StarsSpawned int
	BombsSpawned int
	StarsCaught  int
	BombsHit     int
}

// World owns the player, the falling objects and the round clock. It is
// created once and reset between rounds, never recreated.
type World struct {
	tuning  config.Tuning
	screen  object.Screen
	spawner *object.FallingSpawner

	player  *object.Entity
	falling []*object.Entity

	score    int
	timeLeft float64
	state    RoundState
	stats    Stats
}

// NewWorld creates a world with a fresh running round. A nil rnd uses the
// global random source.
func NewWorld(tuning config.Tuning, rnd object.RandSource) *World {
	w := &World{
		tuning:  tuning,
		screen:  object.Screen{Width: tuning.ScreenWidth, Height: tuning.ScreenHeight},
		spawner: object.NewFallingSpawner(rnd),
	}
	w.player = object.NewPlayer(w.screen, &w.tuning)
	w.reset()
	return w
}

// reset starts a new round in place.
func (w *World) reset() {
	w.falling = w.falling[:0]
	w.score = 0
	w.timeLeft = w.tuning.RoundSeconds
	w.state = RoundRunning
	w.stats = Stats{}
	w.spawner.Reset()
	w.player.Reposition(w.screen, &w.tuning)
}

// SetScreen updates the playable area. Clamps and spawn ranges use the new
// size from the next frame on.
func (w *World) SetScreen(width, height float64) {
	w.screen = object.Screen{Width: width, Height: height}
}

// Screen returns the current playable area.
func (w *World) Screen() object.Screen {
	return w.screen
}

// Spawn adds a falling object to the active set. Implements object.Spawner.
func (w *World) Spawn(e *object.Entity) {
	switch e.Kind {
	case object.KindStar:
		w.stats.StarsSpawned++
	case object.KindBomb:
		w.stats.BombsSpawned++
	}
	w.falling = append(w.falling, e)
}

// Restart begins a new round if the current one is over. Returns false and
// changes nothing while a round is running.
func (w *World) Restart() bool {
	if w.state != RoundGameOver {
		return false
	}
	w.reset()
	return true
}

// Step advances the simulation by one frame: round clock, spawn timers,
// motion, then collisions. Nothing but a restart changes state during game
// over.
func (w *World) Step(in FrameInput) {
	if w.state == RoundGameOver {
		if in.Restart {
			w.Restart()
		}
		return
	}

	w.timeLeft -= in.Delta
	if w.timeLeft <= 0 {
		w.timeLeft = 0
		w.state = RoundGameOver
		return
	}

	ctx := object.UpdateContext{
		Delta:   in.Delta,
		Input:   object.Input{Left: in.Left, Right: in.Right},
		Screen:  w.screen,
		Tuning:  &w.tuning,
		Spawner: w,
	}

	w.spawner.Update(ctx)
	w.updateObjects(ctx)
	w.checkCollisions()
}

// updateObjects moves every entity and drops falling objects that left the
// screen.
func (w *World) updateObjects(ctx object.UpdateContext) {
	w.player.Update(ctx)

	kept := w.falling[:0] // reuse backing array
	for _, e := range w.falling {
		if !e.Update(ctx) {
			kept = append(kept, e)
		}
	}
	clear(w.falling[len(kept):])
	w.falling = kept
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// TimeLeft returns the remaining round time in seconds.
func (w *World) TimeLeft() float64 {
	return w.timeLeft
}

// TimeLeftDisplay returns the remaining time rounded up to whole seconds.
func (w *World) TimeLeftDisplay() int {
	return int(math.Ceil(w.timeLeft))
}

// State returns the round phase.
func (w *World) State() RoundState {
	return w.state
}

// GameOver reports whether the round has ended.
func (w *World) GameOver() bool {
	return w.state == RoundGameOver
}

// Stats returns the counters for the current round.
func (w *World) Stats() Stats {
	return w.stats
}

// Player returns the paddle entity.
func (w *World) Player() *object.Entity {
	return w.player
}

// Falling returns the active falling objects. The slice is owned by the
// world and only valid until the next Step.
func (w *World) Falling() []*object.Entity {
	return w.falling
}

// Tuning returns the gameplay constants in use.
func (w *World) Tuning() config.Tuning {
	return w.tuning
}
