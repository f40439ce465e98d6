package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/hitnbreak/geometry"
)

const (
	blockRune = '█'
	ballRune  = '●'
	aimRune   = '·'
)

// cellCanvas maps arena coordinates onto the terminal grid.
type cellCanvas struct {
	screen tcell.Screen
	scaleX float64
	scaleY float64
	cols   int
	rows   int
}

func newCellCanvas(screen tcell.Screen, arena geometry.Vector) *cellCanvas {
	cols, rows := screen.Size()
	return &cellCanvas{
		screen: screen,
		scaleX: float64(cols) / arena.X,
		scaleY: float64(rows) / arena.Y,
		cols:   cols,
		rows:   rows,
	}
}

func (c *cellCanvas) FillRect(r geometry.Rect, clr color.Color) {
	x0 := int(math.Floor(r.X * c.scaleX))
	y0 := int(math.Floor(r.Y * c.scaleY))
	x1 := max(int(math.Ceil(r.Right()*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*c.scaleY)), y0+1)

	style := foreground(clr)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, blockRune, style)
		}
	}
}

// FillCircle marks the single cell under the center; a ball is smaller than
// a cell at any sensible terminal size.
func (c *cellCanvas) FillCircle(center geometry.Vector, radius float64, clr color.Color) {
	x, y := c.cell(center)
	c.set(x, y, ballRune, foreground(clr))
}

func (c *cellCanvas) Line(from, to geometry.Vector, clr color.Color) {
	x0, y0 := c.cell(from)
	x1, y1 := c.cell(to)
	steps := max(abs(x1-x0), abs(y1-y0))

	style := foreground(clr)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(x1-x0)*t))
		y := y0 + int(math.Round(float64(y1-y0)*t))
		c.set(x, y, aimRune, style)
	}
}

func (c *cellCanvas) cell(p geometry.Vector) (int, int) {
	return int(math.Floor(p.X * c.scaleX)), int(math.Floor(p.Y * c.scaleY))
}

// set ignores cells outside the screen; the paddle may leave the arena.
func (c *cellCanvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

func foreground(clr color.Color) tcell.Style {
	r, g, b, _ := clr.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
