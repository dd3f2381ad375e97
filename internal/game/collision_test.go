package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/starfall/internal/object"
)

func TestStarOverlapByOnePixelScores(t *testing.T) {
	w := newTestWorld(t)
	w.Spawn(starAt(w, 1, 1))

	w.checkCollisions()

	assert.Equal(t, 10, w.Score())
	assert.Empty(t, w.Falling())
	assert.Equal(t, 1, w.Stats().StarsCaught)
}

func TestStarTouchingEdgeDoesNotScore(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"right edge", 0, 1},
		{"bottom edge", 1, 0},
		{"corner", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			star := starAt(w, tt.dx, tt.dy)
			w.Spawn(star)

			w.checkCollisions()

			assert.Equal(t, 0, w.Score())
			require.Len(t, w.Falling(), 1)
			assert.Same(t, star, w.Falling()[0])
		})
	}
}

func TestCollisionThroughStep(t *testing.T) {
	w := newTestWorld(t)
	// Zero delta keeps the star where it was placed.
	w.Spawn(starAt(w, 5, 5))

	w.Step(FrameInput{})

	assert.Equal(t, 10, w.Score())
	assert.Empty(t, w.Falling())
}

func TestMotionHappensBeforeCollision(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player().Bounds()

	// Ends just above the paddle; falls 10px into it this frame.
	star := object.NewStar(p.X, &w.tuning)
	star.Y = p.Y - star.Height - 5
	w.Spawn(star)

	w.Step(FrameInput{Delta: 0.1})

	assert.Equal(t, 10, w.Score())
}

func TestBombScoreFlooredAtZero(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player().Bounds()
	w.score = 30

	for i := 0; i < 3; i++ {
		b := object.NewBomb(p.X, &w.tuning)
		b.Y = p.Y
		w.Spawn(b)
	}

	w.checkCollisions()

	assert.Equal(t, 0, w.Score())
	assert.Empty(t, w.Falling())
	assert.Equal(t, 3, w.Stats().BombsHit)
}

func TestScoreNeverNegative(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player().Bounds()

	for round := 0; round < 10; round++ {
		b := object.NewBomb(p.X, &w.tuning)
		b.Y = p.Y
		w.Spawn(b)
		w.checkCollisions()
		require.GreaterOrEqual(t, w.Score(), 0)
	}
	assert.Equal(t, 0, w.Score())
}

func TestAllSimultaneousHitsApply(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player().Bounds()

	for i := 0; i < 4; i++ {
		s := object.NewStar(p.X+float64(i), &w.tuning)
		s.Y = p.Y
		w.Spawn(s)
	}
	b := object.NewBomb(p.X, &w.tuning)
	b.Y = p.Y
	w.Spawn(b)

	far := object.NewStar(0, &w.tuning)
	w.Spawn(far)

	w.checkCollisions()

	// 40 from the stars, then 20 off for the bomb.
	assert.Equal(t, 20, w.Score())
	require.Len(t, w.Falling(), 1)
	assert.Same(t, far, w.Falling()[0])
}

func TestStarsScoreBeforeBombsRegardlessOfSpawnOrder(t *testing.T) {
	tests := []struct {
		name      string
		bombFirst bool
	}{
		{"star spawned first", false},
		{"bomb spawned first", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.score = 10
			p := w.Player().Bounds()

			star := object.NewStar(p.X, &w.tuning)
			star.Y = p.Y
			bomb := object.NewBomb(p.X, &w.tuning)
			bomb.Y = p.Y
			if tt.bombFirst {
				w.Spawn(bomb)
				w.Spawn(star)
			} else {
				w.Spawn(star)
				w.Spawn(bomb)
			}

			w.checkCollisions()

			// 10 + 10 = 20, then max(0, 20-20).
			assert.Equal(t, 0, w.Score())
			assert.Empty(t, w.Falling())
			assert.Equal(t, Stats{StarsSpawned: 1, BombsSpawned: 1, StarsCaught: 1, BombsHit: 1}, w.Stats())
		})
	}
}
