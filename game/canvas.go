package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/hitnbreak/geometry"
)

const lineWidth = 1

// screenCanvas draws the world onto an ebiten frame.
type screenCanvas struct {
	screen *ebiten.Image
}

func (s screenCanvas) FillRect(r geometry.Rect, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s screenCanvas) FillCircle(center geometry.Vector, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.screen, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (s screenCanvas) Line(from, to geometry.Vector, c color.Color) {
	vector.StrokeLine(s.screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), lineWidth, c, true)
}
