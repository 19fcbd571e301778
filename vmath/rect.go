package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ContainsOpen reports whether (px, py) lies strictly inside the rectangle
// Points on any edge are outside
func (r Rect) ContainsOpen(px, py float64) bool {
	return px > r.X &&
		px < r.X+r.Width &&
		py > r.Y &&
		py < r.Y+r.Height
}

// Overlaps reports whether two rectangles share interior area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height &&
		o.Y < r.Y+r.Height
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }
