package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	FrameNumber int64
	IsPaused    bool
	Debug       bool

	// Screen dimensions in cells
	ScreenWidth  int
	ScreenHeight int

	// Arena units per cell
	CellWidth  float64
	CellHeight float64
}

// ArenaToScreen maps an arena point (origin at center, y up) to a cell (origin top-left, y down)
func (rc RenderContext) ArenaToScreen(p vmath.Vec2) (int, int) {
	x := int(math.Floor(p.X/rc.CellWidth + float64(rc.ScreenWidth)/2))
	y := int(math.Floor(float64(rc.ScreenHeight)/2 - p.Y/rc.CellHeight))
	return x, y
}

// ArenaRect returns the inclusive cell rectangle covered by a box of the given full size
// Boxes thinner than a cell still cover one cell
func (rc RenderContext) ArenaRect(center, size vmath.Vec2) (x0, y0, x1, y1 int) {
	halfW := float64(rc.ScreenWidth) / 2
	halfH := float64(rc.ScreenHeight) / 2

	left := (center.X-size.X/2)/rc.CellWidth + halfW
	right := (center.X+size.X/2)/rc.CellWidth + halfW
	top := halfH - (center.Y+size.Y/2)/rc.CellHeight
	bottom := halfH - (center.Y-size.Y/2)/rc.CellHeight

	x0 = int(math.Floor(left))
	x1 = max(int(math.Ceil(right))-1, x0)
	y0 = int(math.Floor(top))
	y1 = max(int(math.Ceil(bottom))-1, y0)
	return x0, y0, x1, y1
}

// LabelCell maps a label's top/left offset to a cell
func (rc RenderContext) LabelCell(top, left int) (int, int) {
	return int(float64(left) / rc.CellWidth), int(float64(top) / rc.CellHeight)
}
