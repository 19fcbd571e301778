package vmath

// Shape is the positional state shared by every entity on the board
// X/Y are board coordinates, DX/DY the per-tick deltas
type Shape struct {
	X, Y   float64
	DX, DY float64
}

// NextX returns the x coordinate after one tick of motion
func (s *Shape) NextX() float64 {
	return s.X + s.DX
}

// NextY returns the y coordinate after one tick of motion
func (s *Shape) NextY() float64 {
	return s.Y + s.DY
}

// Advance applies one tick of motion
func (s *Shape) Advance() {
	s.X += s.DX
	s.Y += s.DY
}

// InvertDX reverses horizontal motion
func (s *Shape) InvertDX() {
	s.DX = -s.DX
}

// InvertDY reverses vertical motion
func (s *Shape) InvertDY() {
	s.DY = -s.DY
}
