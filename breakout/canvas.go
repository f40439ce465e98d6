package breakout

import (
	"image/color"

	"github.com/meghashyamc/hitnbreak/geometry"
)

// Canvas receives the draw calls of one frame. Each frontend provides one.
type Canvas interface {
	FillRect(r geometry.Rect, c color.Color)
	FillCircle(center geometry.Vector, radius float64, c color.Color)
	Line(from, to geometry.Vector, c color.Color)
}
