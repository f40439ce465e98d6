package breakout

import (
	"math/rand/v2"

	"github.com/meghashyamc/hitnbreak/geometry"
)

// BrickField owns every brick of the session. Bricks are stored by value in
// construction order; removal only flips the slot's liveness flag.
type BrickField struct {
	bricks    []Brick
	live      []bool
	liveCount int
}

// NewBrickField lays out (rows+1) x (columns+1) bricks. The outer loop walks
// columns and the inner loop rows, so a "row" index runs along x. No brick
// gets the same color as the one built right before it. Negative extents are
// treated as zero, which still yields a single brick.
func NewBrickField(rows, columns int, brickSize geometry.Vector, rng *rand.Rand) *BrickField {
	rows = max(rows, 0)
	columns = max(columns, 0)

	total := (rows + 1) * (columns + 1)
	f := &BrickField{
		bricks: make([]Brick, 0, total),
		live:   make([]bool, 0, total),
	}

	colors := newColorPicker(rng)
	for j := 0; j <= columns; j++ {
		for i := 0; i <= rows; i++ {
			position := geometry.Vector{
				X: float64(i) * brickSize.X,
				Y: float64(j) * brickSize.Y,
			}
			f.bricks = append(f.bricks, NewBrick(position, brickSize, colors.next()))
			f.live = append(f.live, true)
		}
	}
	f.liveCount = total

	return f
}

func (f *BrickField) Len() int {
	return len(f.bricks)
}

func (f *BrickField) Brick(i int) Brick {
	return f.bricks[i]
}

func (f *BrickField) Live(i int) bool {
	return f.live[i]
}

func (f *BrickField) LiveCount() int {
	return f.liveCount
}

func (f *BrickField) Cleared() bool {
	return f.liveCount == 0
}

// Collide removes every live brick the ball touches this frame, and bounces
// the ball once per removed brick. Two hits in one frame can flip the same
// axis twice. Returns how many bricks were removed.
func (f *BrickField) Collide(ball *Ball) int {
	removed := 0
	for i := range f.bricks {
		if !f.live[i] {
			continue
		}

		rect := f.bricks[i].Bounds()
		if !geometry.CircleIntersectsRect(ball.Position(), ball.Radius(), rect) {
			continue
		}

		ball.Collide(rect)
		f.live[i] = false
		f.liveCount--
		removed++
	}
	return removed
}

func (f *BrickField) Draw(c Canvas) {
	for i, brick := range f.bricks {
		if f.live[i] {
			brick.Draw(c)
		}
	}
}
