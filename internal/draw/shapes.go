package draw

import "math"

// StarPoints fills points with a five-pointed star centered at (cx, cy).
// points must have room for 10 vertices; outer is the tip radius and inner
// the radius of the notches between tips.
func StarPoints(points []Point, cx, cy, outer, inner, angle float64) []Point {
	const tips = 5
	points = points[:2*tips]
	for i := range points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		// Start pointing up.
		a := angle - math.Pi/2 + float64(i)*math.Pi/tips
		points[i] = Point{
			X: cx + math.Cos(a)*r,
			Y: cy + math.Sin(a)*r,
		}
	}
	return points
}

// CirclePoints fills points with a regular polygon approximating a circle.
func CirclePoints(points []Point, cx, cy, radius float64) []Point {
	n := len(points)
	for i := range points {
		a := float64(i) * 2 * math.Pi / float64(n)
		points[i] = Point{
			X: cx + math.Cos(a)*radius,
			Y: cy + math.Sin(a)*radius,
		}
	}
	return points
}
