package render

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// OpKind identifies a recorded Surface call
type OpKind uint8

const (
	OpClearRect OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath
	OpFill
	OpSetFillColor
)

var opNames = [...]string{
	OpClearRect:    "clear",
	OpBeginPath:    "begin",
	OpMoveTo:       "move",
	OpLineTo:       "line",
	OpArc:          "arc",
	OpClosePath:    "close",
	OpFill:         "fill",
	OpSetFillColor: "color",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", k)
}

// Op is one recorded call with its numeric arguments
type Op struct {
	Kind  OpKind
	Args  []float64
	Color colorful.Color
}

// Recorder is a Surface that records calls instead of drawing
// Used by tests to assert draw order and geometry
type Recorder struct {
	Ops  []Op
	fill colorful.Color
}

// NewRecorder creates an empty recorder with a white fill color
func NewRecorder() *Recorder {
	return &Recorder{fill: colorful.Color{R: 1, G: 1, B: 1}}
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClearRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) BeginPath() {
	r.Ops = append(r.Ops, Op{Kind: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineTo, Args: []float64{x, y}})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	ccw := 0.0
	if counterClockwise {
		ccw = 1
	}
	r.Ops = append(r.Ops, Op{Kind: OpArc, Args: []float64{x, y, radius, startAngle, endAngle, ccw}})
}

func (r *Recorder) ClosePath() {
	r.Ops = append(r.Ops, Op{Kind: OpClosePath})
}

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: r.fill})
}

func (r *Recorder) FillColor() colorful.Color {
	return r.fill
}

func (r *Recorder) SetFillColor(c colorful.Color) {
	r.fill = c
	r.Ops = append(r.Ops, Op{Kind: OpSetFillColor, Color: c})
}

// Reset drops recorded calls, keeping the fill color
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many calls of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds renders the call sequence as space separated names, handy in test failures
func (r *Recorder) Kinds() string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Kind.String()
	}
	return strings.Join(names, " ")
}
