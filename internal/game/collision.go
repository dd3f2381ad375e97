package game

import (
	"github.com/tomz197/starfall/internal/object"
	"github.com/tomz197/starfall/internal/physics"
)

// checkCollisions tests the paddle against every falling object. All star
// hits are scored before any bomb hit, so the result does not depend on spawn
// order. Bombs floor the score at zero. Hit objects leave the active set.
func (w *World) checkCollisions() {
	paddle := w.player.Bounds()

	w.removeHits(paddle, object.KindStar, func() {
		w.score += w.tuning.Score.Star
		w.stats.StarsCaught++
	})
	w.removeHits(paddle, object.KindBomb, func() {
		w.score = max(0, w.score-w.tuning.Score.Bomb)
		w.stats.BombsHit++
	})
}

// removeHits drops every falling object of kind overlapping paddle, calling
// onHit once per removal.
func (w *World) removeHits(paddle physics.Rect, kind object.Kind, onHit func()) {
	kept := w.falling[:0]
	for _, e := range w.falling {
		if e.Kind != kind || !paddle.Intersects(e.Bounds()) {
			kept = append(kept, e)
			continue
		}
		onHit()
	}
	clear(w.falling[len(kept):])
	w.falling = kept
}
