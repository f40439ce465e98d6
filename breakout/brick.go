package breakout

import (
	"image/color"

	"github.com/meghashyamc/hitnbreak/geometry"
)

type Brick struct {
	position geometry.Vector
	size     geometry.Vector
	color    color.RGBA
}

func NewBrick(position, size geometry.Vector, c color.RGBA) Brick {
	return Brick{
		position: position,
		size:     size,
		color:    c,
	}
}

func (b Brick) Position() geometry.Vector {
	return b.position
}

func (b Brick) Color() color.RGBA {
	return b.color
}

func (b Brick) Bounds() geometry.Rect {
	return geometry.NewRect(b.position.X, b.position.Y, b.size.X, b.size.Y)
}

func (b Brick) Draw(c Canvas) {
	c.FillRect(b.Bounds(), b.color)
}
