package object

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/starfall/internal/config"
)

func TestSpawnerStarCadence(t *testing.T) {
	tuning := config.DefaultTuning()
	sink := &collector{}
	s := NewFallingSpawner(fixedRand(0.5))

	ctx := newContext(&tuning, 0.25)
	ctx.Spawner = sink

	// 0.25 * 5 = 1.25s: nothing yet.
	for i := 0; i < 5; i++ {
		s.Update(ctx)
	}
	assert.Empty(t, sink.spawned)

	// Crosses 1.5s once with 0.25s of overshoot.
	ctx.Delta = 0.5
	s.Update(ctx)

	require.Len(t, sink.spawned, 1)
	star := sink.spawned[0]
	assert.Equal(t, KindStar, star.Kind)
	assert.Equal(t, -30.0, star.Y)
	assert.Equal(t, 0.5*(tuning.ScreenWidth-tuning.Star.Size), star.X)

	starTimer, bombTimer := s.Timers()
	assert.Zero(t, starTimer, "overshoot is dropped, not carried forward")
	assert.InDelta(t, 1.75, bombTimer, 1e-9)
}

func TestSpawnerBombCadence(t *testing.T) {
	tuning := config.DefaultTuning()
	sink := &collector{}
	s := NewFallingSpawner(fixedRand(0))

	ctx := newContext(&tuning, 1.5)
	ctx.Spawner = sink

	s.Update(ctx) // star
	s.Update(ctx) // star + bomb

	require.Len(t, sink.spawned, 3)
	assert.Equal(t, KindStar, sink.spawned[0].Kind)
	assert.Equal(t, KindStar, sink.spawned[1].Kind)
	bomb := sink.spawned[2]
	assert.Equal(t, KindBomb, bomb.Kind)
	assert.Equal(t, -25.0, bomb.Y)
	assert.Equal(t, 0.0, bomb.X)
	assert.Equal(t, 25.0, bomb.Width)
}

func TestSpawnerXWithinScreen(t *testing.T) {
	tuning := config.DefaultTuning()
	sink := &collector{}
	s := NewFallingSpawner(rand.New(rand.NewSource(7)))

	ctx := newContext(&tuning, 3)
	ctx.Spawner = sink
	for i := 0; i < 200; i++ {
		s.Update(ctx)
	}

	require.Len(t, sink.spawned, 400)
	for _, e := range sink.spawned {
		assert.GreaterOrEqual(t, e.X, 0.0)
		assert.LessOrEqual(t, e.X, tuning.ScreenWidth-e.Width)
	}
}

func TestSpawnerNarrowScreenPinsToZero(t *testing.T) {
	tuning := config.DefaultTuning()
	sink := &collector{}
	s := NewFallingSpawner(fixedRand(0.9))

	ctx := newContext(&tuning, 1.5)
	ctx.Spawner = sink
	ctx.Screen = Screen{Width: 10, Height: 100}
	s.Update(ctx)

	require.Len(t, sink.spawned, 1)
	assert.Equal(t, 0.0, sink.spawned[0].X)
}

func TestSpawnerReset(t *testing.T) {
	tuning := config.DefaultTuning()
	s := NewFallingSpawner(nil)

	ctx := newContext(&tuning, 1)
	s.Update(ctx)
	s.Reset()

	star, bomb := s.Timers()
	assert.Zero(t, star)
	assert.Zero(t, bomb)
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.NotNil(t, NewRand(0))
}
