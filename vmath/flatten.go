package vmath

import "math"

// ArcSegmentsPerCircle controls arc flattening resolution
const ArcSegmentsPerCircle = 32

// Point is a 2D coordinate in board space
type Point struct {
	X, Y float64
}

// FlattenArc approximates an arc around (cx, cy) with line vertices
// Angles are radians, zero along +X, growing clockwise in screen space (y down)
// counterClockwise walks from start to end in decreasing angle order
// The first and last vertices lie exactly on start and end
func FlattenArc(cx, cy, r, start, end float64, counterClockwise bool) []Point {
	sweep := end - start
	if counterClockwise {
		sweep = start - end
	}
	// Normalize sweep to (0, 2π]; full circles come in as 2π and stay there
	if sweep <= 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}

	steps := int(math.Ceil(sweep / (2 * math.Pi) * ArcSegmentsPerCircle))
	if steps < 1 {
		steps = 1
	}

	step := sweep / float64(steps)
	if counterClockwise {
		step = -step
	}

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + step*float64(i)
		points = append(points, Point{
			X: cx + r*math.Cos(a),
			Y: cy + r*math.Sin(a),
		})
	}
	return points
}
