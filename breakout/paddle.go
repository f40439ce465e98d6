package breakout

import (
	"image/color"

	"github.com/meghashyamc/hitnbreak/geometry"
)

type Paddle struct {
	position geometry.Vector // top-left corner
	size     geometry.Vector
	speed    float64
	color    color.RGBA
}

// NewPaddle places the paddle horizontally centred on center.X with its top
// edge at center.Y.
func NewPaddle(center geometry.Vector, s Settings) *Paddle {
	return &Paddle{
		position: geometry.Vector{X: center.X - s.PaddleWidth/2, Y: center.Y},
		size:     geometry.Vector{X: s.PaddleWidth, Y: s.PaddleHeight},
		speed:    s.PaddleSpeed,
		color:    White,
	}
}

// Update moves the paddle one step. Holding both keys cancels out, and the
// paddle is not kept inside the arena.
func (p *Paddle) Update(left, right bool) {
	p.position.X += (axis(right) - axis(left)) * p.speed
}

func (p *Paddle) Position() geometry.Vector {
	return p.position
}

func (p *Paddle) Bounds() geometry.Rect {
	return geometry.NewRect(p.position.X, p.position.Y, p.size.X, p.size.Y)
}

func (p *Paddle) Draw(c Canvas) {
	c.FillRect(p.Bounds(), p.color)
}

func axis(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}
