package object

import (
	"math"

	"github.com/tomz197/starfall/internal/config"
)

// Shape describes how to draw an entity. It carries no behavior; the
// renderer decides what a star or a bomb looks like.
type Shape struct {
	Kind          Kind
	X, Y          float64 // Top-left of the bounding box
	Width, Height float64
	Angle         float64 // Star rotation
	Scale         float64 // Bomb pulse; 1 for everything else
}

// PulseScale returns the bomb pulse factor for the given remaining round time.
// The phase follows the round clock, so it only advances while the round runs.
func PulseScale(gameTime float64, p config.PulseTuning) float64 {
	return math.Sin(gameTime*p.Frequency)*p.Amplitude + 1.0
}

// Shape returns the drawable description of the entity at gameTime.
func (e *Entity) Shape(gameTime float64, p config.PulseTuning) Shape {
	s := Shape{
		Kind:   e.Kind,
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		Scale:  1,
	}
	switch e.Kind {
	case KindStar:
		s.Angle = e.Angle
	case KindBomb:
		s.Scale = PulseScale(gameTime, p)
	}
	return s
}

// Center returns the center of the shape's bounding box.
func (s Shape) Center() (float64, float64) {
	return s.X + s.Width/2, s.Y + s.Height/2
}
