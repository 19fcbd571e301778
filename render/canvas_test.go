package render

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var testRed = colorful.Color{R: 1}

func fillRect(c *Canvas, x, y, w, h float64) {
	c.BeginPath()
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
	c.Fill()
}

func countFilled(c *Canvas, col colorful.Color) int {
	w, h := c.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.At(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(100, 100, 100, 100)
	c.SetFillColor(testRed)
	fillRect(c, 10, 10, 10, 10)

	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{19, 19, true},
		{15, 15, true},
		{9, 15, false},
		{20, 15, false},
		{15, 9, false},
		{15, 20, false},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y) == testRed; got != tt.want {
			t.Errorf("pixel (%d,%d) filled = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if n := countFilled(c, testRed); n != 100 {
		t.Errorf("filled %d pixels, want 100", n)
	}
}

func TestCanvasScalesBoardToPixels(t *testing.T) {
	// 640x480 board on a 64x48 grid: one pixel per 10 board units
	c := NewCanvas(640, 480, 64, 48)
	c.SetFillColor(testRed)
	fillRect(c, 100, 200, 50, 10)

	if c.At(10, 20) != testRed || c.At(14, 20) != testRed {
		t.Error("scaled rect should cover pixels 10..14 on row 20")
	}
	if c.At(9, 20) == testRed || c.At(15, 20) == testRed {
		t.Error("scaled rect leaked outside its columns")
	}
}

func TestCanvasThinShapeStaysVisible(t *testing.T) {
	// Paddle-like 8 unit tall bar on a grid of 10 units per pixel
	c := NewCanvas(640, 480, 64, 48)
	c.SetFillColor(testRed)
	fillRect(c, 290, 468, 60, 8)

	if n := countFilled(c, testRed); n == 0 {
		t.Fatal("sub-pixel tall shape vanished")
	}
}

func TestCanvasCoverageThreshold(t *testing.T) {
	c := NewCanvas(100, 100, 100, 100)
	c.SetFillColor(testRed)

	// Row 10 is a tenth covered on the left, half covered on the right
	fillRect(c, 0, 0, 10, 10.1)
	fillRect(c, 20, 0, 10, 10.5)

	if c.At(5, 9) != testRed || c.At(25, 9) != testRed {
		t.Error("fully covered row not filled")
	}
	if c.At(5, 10) == testRed {
		t.Error("pixel below coverage threshold was filled")
	}
	if c.At(25, 10) != testRed {
		t.Error("half covered pixel not filled")
	}
	if c.At(25, 11) == testRed {
		t.Error("uncovered row filled")
	}
}

func TestCanvasFillKeepsEarlierPixels(t *testing.T) {
	c := NewCanvas(100, 100, 100, 100)
	c.SetFillColor(testRed)
	fillRect(c, 0, 0, 10, 10)

	blue := colorful.Color{B: 1}
	c.SetFillColor(blue)
	fillRect(c, 50, 50, 10, 10)

	if c.At(5, 5) != testRed {
		t.Error("second fill erased the first shape")
	}
	if c.At(55, 55) != blue {
		t.Error("second shape not filled")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(100, 100, 100, 100)
	c.SetFillColor(testRed)
	c.BeginPath()
	c.Arc(50, 50, 10, 0, math.Pi*2, true)
	c.ClosePath()
	c.Fill()

	if c.At(50, 50) != testRed {
		t.Error("circle center not filled")
	}
	if c.At(50, 35) == testRed || c.At(65, 50) == testRed {
		t.Error("circle overflowed its radius")
	}
	area := countFilled(c, testRed)
	if area < 300 || area > 420 {
		t.Errorf("circle area = %d pixels, want about %d", area, 314)
	}
}

func TestCanvasClearRect(t *testing.T) {
	c := NewCanvas(100, 100, 100, 100)
	c.SetFillColor(testRed)
	fillRect(c, 0, 0, 100, 100)

	c.ClearRect(0, 0, 50, 100)

	if c.At(10, 10) != RgbBackground {
		t.Error("cleared pixel not background")
	}
	if c.At(60, 10) != testRed {
		t.Error("pixel outside clear rect was reset")
	}
}

func TestCanvasFillWithoutPath(t *testing.T) {
	c := NewCanvas(10, 10, 10, 10)
	c.BeginPath()
	c.Fill()
	if n := countFilled(c, c.FillColor()); n != 0 {
		t.Errorf("empty path filled %d pixels", n)
	}
}

func TestCanvasBeginPathResets(t *testing.T) {
	c := NewCanvas(100, 100, 100, 100)
	c.SetFillColor(testRed)
	fillRect(c, 0, 0, 10, 10)

	blue := colorful.Color{B: 1}
	c.SetFillColor(blue)
	fillRect(c, 50, 50, 10, 10)

	if c.At(5, 5) != testRed {
		t.Error("second fill repainted the first path")
	}
	if c.At(55, 55) != blue {
		t.Error("second path not filled")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(640, 480, 10, 10)
	c.Resize(0, -3)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, want 1x1 floor", w, h)
	}
	if c.At(5, 5) != RgbBackground {
		t.Error("out of range At should return background")
	}
}
