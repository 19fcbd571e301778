package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Surface is the drawing contract the simulation renders into
// Coordinates are board units; implementations scale to their own resolution
// Paths follow the canvas model: BeginPath, MoveTo/LineTo/Arc, ClosePath, Fill
type Surface interface {
	// ClearRect resets the region to the background
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends an arc around (x, y); angles in radians, zero along +X, y down
	Arc(x, y, r, startAngle, endAngle float64, counterClockwise bool)
	ClosePath()
	// Fill paints the interior of the current path with the fill color
	Fill()

	FillColor() colorful.Color
	SetFillColor(c colorful.Color)
}

// Drawable is implemented by entities that paint themselves onto a Surface
type Drawable interface {
	Draw(g Surface)
}
