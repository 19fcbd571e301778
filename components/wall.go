package components

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/constants"
	"github.com/lixenwraith/vi-breakout/render"
	"github.com/lixenwraith/vi-breakout/vmath"
)

// ErrEmptyWall is returned when a layout produces no blocks
var ErrEmptyWall = errors.New("wall layout produces no blocks")

// Wall is the ordered collection of remaining blocks
// It only ever shrinks between rebuilds
type Wall struct {
	blocks []*Block
	cfg    *config.Config
	layout []*Block // explicit layout for walls not built from cfg
}

// NewWall builds the full grid for cfg
func NewWall(cfg *config.Config) (*Wall, error) {
	w := &Wall{cfg: cfg}
	if err := w.Rebuild(); err != nil {
		return nil, err
	}
	return w, nil
}

// NewWallFromBlocks wraps an explicit block list, used for custom layouts
// Rebuild on such a wall restores the same blocks
func NewWallFromBlocks(blocks ...*Block) *Wall {
	w := &Wall{layout: blocks}
	w.blocks = append(w.blocks, blocks...)
	return w
}

// Rebuild restores the full grid, row-major from the top-left block
func (w *Wall) Rebuild() error {
	if w.cfg == nil {
		w.blocks = append(w.blocks[:0:0], w.layout...)
		return nil
	}

	rows := w.cfg.Blocks.Rows
	cols := w.cfg.BlockCols()
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %d rows x %d cols", ErrEmptyWall, rows, cols)
	}

	bw, bh := w.cfg.Blocks.Width, w.cfg.Blocks.Height
	spacing := w.cfg.Blocks.Spacing
	offset := w.cfg.ColOffset()

	blocks := make([]*Block, 0, rows*cols)
	for row := 0; row < rows; row++ {
		color := RowColor(row)
		for col := 0; col < cols; col++ {
			blocks = append(blocks, &Block{
				Shape: vmath.Shape{
					X: float64(col)*(bw+spacing) + offset,
					Y: float64(row) * (bh + spacing),
				},
				Width:  bw,
				Height: bh,
				Color:  color,
				Row:    row,
				Col:    col,
			})
		}
	}
	w.blocks = blocks
	return nil
}

// RowColor returns the fill color for a wall row
// Every row shares the hue, saturation drops per row so rows stay distinct
func RowColor(row int) colorful.Color {
	sat := constants.BlockSaturationTop - float64(row)*constants.BlockSaturationStep
	if sat < 0 {
		sat = 0
	}
	return colorful.Hsl(constants.BlockHue, sat, constants.BlockLightness)
}

// Len returns the number of remaining blocks
func (w *Wall) Len() int {
	return len(w.blocks)
}

// Empty reports whether every block is gone
func (w *Wall) Empty() bool {
	return len(w.blocks) == 0
}

// Blocks returns the remaining blocks in build order
// The slice is owned by the wall and must not be modified
func (w *Wall) Blocks() []*Block {
	return w.blocks
}

// Sweep removes every block the ball's pending motion collides with
// Removed blocks are returned in wall order; the remaining order is preserved
func (w *Wall) Sweep(ball *Ball) []*Block {
	var removed []*Block
	kept := w.blocks[:0]
	for _, b := range w.blocks {
		if b.Collide(ball) {
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}
	clear(w.blocks[len(kept):])
	w.blocks = kept
	return removed
}

// Draw paints every remaining block
func (w *Wall) Draw(g render.Surface) {
	for _, b := range w.blocks {
		b.Draw(g)
	}
}
