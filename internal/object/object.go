// Package object defines the game entities and how they move each frame.
package object

import (
	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/physics"
)

// Kind discriminates the entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindStar
	KindBomb
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindStar:
		return "star"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Input is the level-triggered movement state sampled once per frame.
type Input struct {
	Left  bool
	Right bool
}

// Screen is the playable area in logical pixels.
type Screen struct {
	Width  float64
	Height float64
}

// Spawner accepts newly created entities. Implementations add them to the
// active set immediately, within the same update pass.
type Spawner interface {
	Spawn(e *Entity)
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta   float64 // Seconds since the previous frame, never negative
	Input   Input
	Screen  Screen
	Tuning  *config.Tuning
	Spawner Spawner
}

// Entity is a positioned, sized game object. Position is the top-left corner
// of its bounding box.
type Entity struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
	Angle         float64 // Star rotation in radians, cosmetic only
}

// NewPlayer creates the paddle centered horizontally near the bottom of screen.
func NewPlayer(screen Screen, t *config.Tuning) *Entity {
	p := &Entity{
		Kind:   KindPlayer,
		Width:  t.Player.Width,
		Height: t.Player.Height,
	}
	p.Reposition(screen, t)
	return p
}

// Reposition moves the paddle back to its starting spot for screen.
func (e *Entity) Reposition(screen Screen, t *config.Tuning) {
	e.X = physics.Clamp((screen.Width-e.Width)/2, 0, screen.Width-e.Width)
	e.Y = screen.Height - t.Player.BottomOffset
}

// NewStar creates a star whose bounding box starts at (x, SpawnY).
func NewStar(x float64, t *config.Tuning) *Entity {
	return &Entity{
		Kind:   KindStar,
		X:      x,
		Y:      t.Star.SpawnY,
		Width:  t.Star.Size,
		Height: t.Star.Size,
	}
}

// NewBomb creates a bomb whose bounding box starts at (x, SpawnY).
func NewBomb(x float64, t *config.Tuning) *Entity {
	return &Entity{
		Kind:   KindBomb,
		X:      x,
		Y:      t.Bomb.SpawnY,
		Width:  t.Bomb.Size,
		Height: t.Bomb.Size,
	}
}

// Bounds returns the axis-aligned collision box.
func (e *Entity) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Update advances the entity by ctx.Delta. Returns true if the entity left the
// visible vertical range and should be removed.
func (e *Entity) Update(ctx UpdateContext) (remove bool) {
	dt := ctx.Delta

	switch e.Kind {
	case KindPlayer:
		e.updatePlayer(ctx)
		return false
	case KindStar:
		e.Y += ctx.Tuning.Star.Speed * dt
		e.Angle += ctx.Tuning.Star.Spin * dt
	case KindBomb:
		e.Y += ctx.Tuning.Bomb.Speed * dt
	}

	return e.Y > ctx.Screen.Height+ctx.Tuning.Spawn.DespawnMargin
}

// updatePlayer applies horizontal movement, clamped to the screen.
func (e *Entity) updatePlayer(ctx UpdateContext) {
	step := ctx.Tuning.Player.Speed * ctx.Delta
	if ctx.Input.Left {
		e.X -= step
	}
	if ctx.Input.Right {
		e.X += step
	}
	e.X = physics.Clamp(e.X, 0, ctx.Screen.Width-e.Width)
}
