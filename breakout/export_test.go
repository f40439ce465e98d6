package breakout

import "github.com/meghashyamc/hitnbreak/geometry"

// NewLaunchedBall builds a ball already in flight at an exact position.
func NewLaunchedBall(position, force geometry.Vector, s Settings) *Ball {
	b := NewBall(position, s)
	b.position = position
	b.state = &Launched{Force: force}
	return b
}
