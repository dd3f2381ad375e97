package object

import (
	"math"
	"math/rand"
	"time"
)

// RandSource yields uniform values in [0, 1).
type RandSource interface {
	Float64() float64
}

// globalRand draws from the shared math/rand source.
type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64()
}

// NewRand returns a source seeded with seed, or with the clock when seed is
// zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// FallingSpawner drops stars and bombs on two independent timers.
type FallingSpawner struct {
	rnd       RandSource
	starTimer float64
	bombTimer float64
}

// NewFallingSpawner creates a spawner. A nil rnd uses the global source.
func NewFallingSpawner(rnd RandSource) *FallingSpawner {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &FallingSpawner{rnd: rnd}
}

// Update advances both timers and spawns through ctx.Spawner when an
// interval elapses. Expired timers restart at zero; overshoot is dropped.
func (s *FallingSpawner) Update(ctx UpdateContext) {
	t := ctx.Tuning

	s.starTimer += ctx.Delta
	if s.starTimer >= t.Star.Interval {
		s.starTimer = 0
		ctx.Spawner.Spawn(NewStar(s.randomX(ctx.Screen, t.Star.Size), t))
	}

	s.bombTimer += ctx.Delta
	if s.bombTimer >= t.Bomb.Interval {
		s.bombTimer = 0
		ctx.Spawner.Spawn(NewBomb(s.randomX(ctx.Screen, t.Bomb.Size), t))
	}
}

// Reset zeroes both timers.
func (s *FallingSpawner) Reset() {
	s.starTimer = 0
	s.bombTimer = 0
}

// Timers returns the accumulated star and bomb timers in seconds.
func (s *FallingSpawner) Timers() (star, bomb float64) {
	return s.starTimer, s.bombTimer
}

// randomX picks a uniform x so the object fits horizontally on screen.
func (s *FallingSpawner) randomX(screen Screen, size float64) float64 {
	return s.rnd.Float64() * math.Max(0, screen.Width-size)
}
