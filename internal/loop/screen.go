package loop

import (
	"fmt"

	"github.com/tomz197/starfall/internal/draw"
	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/object"
)

// Polygon resolution for bombs.
const bombVertices = 16

// drawFrame clears the screen, draws all entities, then the UI overlay.
func (c *Client) drawFrame() error {
	hud := c.hud
	draw.ClearScreen(hud)
	c.canvas.Clear()

	snap := c.world.Snapshot(c.shapes)
	c.shapes = snap.Shapes

	for _, s := range snap.Shapes {
		drawShape(c.canvas, s)
	}

	if err := c.canvas.Render(hud); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(hud); err != nil {
		return err
	}

	c.drawUI(snap)
	return hud.Flush()
}

// drawShape draws one entity. Stars are rotated five-point outlines filled in,
// bombs are circles scaled by their pulse, the paddle is a solid block.
func drawShape(canvas *draw.Canvas, s object.Shape) {
	cx, cy := s.Center()
	switch s.Kind {
	case object.KindPlayer:
		canvas.FillRect(s.X, s.Y, s.Width, s.Height)
	case object.KindStar:
		outer := s.Width / 2
		points := draw.StarPoints(canvas.BorrowPoints(10), cx, cy, outer, outer*0.45, s.Angle)
		canvas.DrawPolygon(points, true)
	case object.KindBomb:
		radius := s.Width / 2 * s.Scale
		points := draw.CirclePoints(canvas.BorrowPoints(bombVertices), cx, cy, radius)
		canvas.DrawPolygon(points, true)
	}
}

// drawUI draws the HUD and any centered message.
func (c *Client) drawUI(snap game.Snapshot) {
	hud := c.hud
	height := c.canvas.TerminalHeight()
	centerY := height / 2

	hud.Text(2, 1, game.ScoreText(snap.Score))
	hud.Right(1, game.TimeText(snap.TimeLeft))

	switch {
	case c.shutdownTimer > 0:
		hud.Centered(centerY-1, "SERVER SHUTTING DOWN")
		hud.Centered(centerY+1, fmt.Sprintf("Final score: %d - disconnecting in %.0fs", snap.Score, c.shutdownTimer))
	case snap.GameOver:
		hud.Centered(centerY-2, snap.Banner)
		hud.Centered(centerY, game.StatsText(snap.Stats))
		hud.Centered(centerY+2, "Press R to play again, Q to quit")
	}

	if c.isInactive {
		hud.Centered(height, "Inactive - press any key to stay connected")
	}
}
