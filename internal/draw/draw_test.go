package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRectScales(t *testing.T) {
	// 80x20 terminal -> 80x40 sub-pixels for an 800x400 logical area.
	c := NewScaledCanvas(80, 20, 800, 400)

	c.FillRect(100, 100, 50, 20)

	assert.True(t, c.IsSet(10, 10))
	assert.True(t, c.IsSet(14, 11))
	assert.False(t, c.IsSet(15, 10))
	assert.False(t, c.IsSet(10, 12))
	assert.False(t, c.IsSet(9, 10))
}

func TestFillRectClipsOutsideCanvas(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	assert.NotPanics(t, func() {
		c.FillRect(-5, -5, 100, 100)
	})
	assert.True(t, c.IsSet(0, 0))
	assert.True(t, c.IsSet(9, 9))
}

func TestFillRectKeepsThinShapesVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 1000)

	c.FillRect(500, 500, 1, 1)

	assert.True(t, c.IsSet(5, 5))
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	c.SetFloat(0, 0) // top of column 0
	c.SetFloat(1, 1) // bottom of column 1
	c.SetFloat(2, 0)
	c.SetFloat(2, 1)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "\033[1;1H▀")
	assert.Contains(t, out, "\033[1;2H▄")
	assert.Contains(t, out, "\033[1;3H█")

	c.Clear()
	buf.Reset()
	require.NoError(t, c.Render(&buf))
	assert.Empty(t, buf.String())
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(4, 2)
	c.SetFloat(0, 0)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	assert.Equal(t, "\033[3;5H▀", buf.String())
}

func TestRenderBorderOnlyWithOffset(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var buf bytes.Buffer
	require.NoError(t, c.RenderBorder(&buf))
	assert.Empty(t, buf.String())

	c.SetOffset(1, 1)
	require.NoError(t, c.RenderBorder(&buf))
	assert.Contains(t, buf.String(), "┌────┐")
	assert.Contains(t, buf.String(), "└────┘")
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	square := []Point{{2, 2}, {10, 2}, {10, 10}, {2, 10}}

	c.DrawPolygon(square, true)

	assert.True(t, c.IsSet(6, 6), "interior filled")
	assert.True(t, c.IsSet(2, 2), "outline drawn")
	assert.False(t, c.IsSet(15, 15))
}

func TestStarPoints(t *testing.T) {
	pts := StarPoints(make([]Point, 10), 0, 0, 10, 4, 0)

	require.Len(t, pts, 10)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, -10, pts[0].Y, 1e-9, "first tip points up")
	for i, p := range pts {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		assert.InDelta(t, want, math.Hypot(p.X, p.Y), 1e-9)
	}
}

func TestCirclePoints(t *testing.T) {
	pts := CirclePoints(make([]Point, 12), 5, 5, 3)
	for _, p := range pts {
		assert.InDelta(t, 3, math.Hypot(p.X-5, p.Y-5), 1e-9)
	}
}

func TestHUDPlacesText(t *testing.T) {
	var out bytes.Buffer
	h := NewHUD(&out, 20, 2, 1)

	h.Text(3, 4, "hi")
	h.Centered(1, "abcd")
	h.Right(2, "xyz")
	h.Text(0, 0, "!")
	assert.Empty(t, out.String(), "nothing written before Flush")

	require.NoError(t, h.Flush())
	assert.Equal(t, "\033[5;5Hhi\033[2;11Habcd\033[3;19Hxyz\033[2;3H!", out.String())
}

func TestHUDPlaceMovesText(t *testing.T) {
	var out bytes.Buffer
	h := NewHUD(&out, 20, 0, 0)

	h.Place(10, 5, 3)
	h.Centered(1, "ab")
	require.NoError(t, h.Flush())

	assert.Equal(t, "\033[4;10Hab", out.String())
}

func TestHUDLargeFlush(t *testing.T) {
	var out bytes.Buffer
	h := NewHUD(&out, 80, 0, 0)
	big := strings.Repeat("x", 5*maxChunkSize+7)

	_, err := h.Write([]byte(big))
	require.NoError(t, err)
	require.NoError(t, h.Flush())

	assert.Equal(t, big, out.String())
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(80, 20, 800, 400)
	col, row := c.LogicalToTerminal(400, 200)
	assert.Equal(t, 41, col)
	assert.Equal(t, 11, row)
}
