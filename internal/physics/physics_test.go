package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, Width: 50, Height: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"one pixel overlap both axes", Rect{X: 149, Y: 119, Width: 30, Height: 30}, true},
		{"contained", Rect{X: 110, Y: 105, Width: 5, Height: 5}, true},
		{"touching right edge", Rect{X: 150, Y: 100, Width: 30, Height: 30}, false},
		{"touching bottom edge", Rect{X: 100, Y: 120, Width: 30, Height: 30}, false},
		{"touching corner", Rect{X: 150, Y: 120, Width: 30, Height: 30}, false},
		{"far away", Rect{X: 500, Y: 500, Width: 30, Height: 30}, false},
		{"above with overlap in x only", Rect{X: 110, Y: 40, Width: 30, Height: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "overlap must be symmetric")
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 350))
	assert.Equal(t, 350.0, Clamp(400, 0, 350))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 350))
	// Inverted range pins to the lower bound.
	assert.Equal(t, 0.0, Clamp(10, 0, -20))
}
