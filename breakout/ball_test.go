package breakout_test

import (
	"testing"

	"github.com/meghashyamc/hitnbreak/breakout"
	"github.com/meghashyamc/hitnbreak/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAimingBall() *breakout.Ball {
	return breakout.NewBall(geometry.Vector{X: 400, Y: 460}, breakout.DefaultSettings())
}

func TestNewBallIsAiming(t *testing.T) {
	b := newAimingBall()

	assert.False(t, b.IsPlaying())
	assert.Equal(t, geometry.Vector{X: 397.5, Y: 460}, b.Position())
	assert.Equal(t, geometry.Vector{}, b.Force())

	angle, ok := b.AimAngle()
	require.True(t, ok)
	assert.Equal(t, 400.0, angle)

	target, ok := b.AimTarget()
	require.True(t, ok)
	assert.Equal(t, 450.0, target)
}

func TestAimingBallDoesNotMove(t *testing.T) {
	b := newAimingBall()
	before := b.Position()

	for range 10 {
		assert.False(t, b.Update())
	}

	assert.Equal(t, before, b.Position())
}

func TestAimSweepStaysInRangeAndReversesAtTarget(t *testing.T) {
	b := newAimingBall()
	canvas := &recordingCanvas{}
	anchor := b.Anchor()

	lastDirection := 0.0
	reversals := 0
	for i := range 200 {
		angleBefore, _ := b.AimAngle()
		targetBefore, _ := b.AimTarget()

		b.Draw(canvas)

		angleAfter, _ := b.AimAngle()
		targetAfter, _ := b.AimTarget()

		assert.GreaterOrEqual(t, angleAfter, anchor-50, "frame %d", i)
		assert.LessOrEqual(t, angleAfter, anchor+50, "frame %d", i)

		direction := angleAfter - angleBefore
		assert.Equal(t, 1.0, direction*direction, "frame %d moved by %v", i, direction)

		// the target only flips on the frame the sweep lands on it
		assert.Equal(t, angleAfter == targetBefore, targetAfter != targetBefore, "frame %d", i)

		if lastDirection != 0 && direction != lastDirection {
			assert.Equal(t, angleBefore, targetAtTurn(anchor, direction), "frame %d reversed away from a target", i)
			reversals++
		}
		lastDirection = direction
	}

	// 50 up, 100 down, 50 up: two turnarounds in 200 frames
	assert.Equal(t, 2, reversals)
}

// targetAtTurn is where the sweep must be when it starts moving in direction.
func targetAtTurn(anchor, direction float64) float64 {
	if direction < 0 {
		return anchor + 50
	}
	return anchor - 50
}

func TestAimingDrawIncludesIndicator(t *testing.T) {
	b := newAimingBall()
	canvas := &recordingCanvas{}

	b.Draw(canvas)

	require.Len(t, canvas.calls, 2)
	line := canvas.calls[0]
	assert.Equal(t, "line", line.kind)
	assert.Equal(t, b.Position(), line.from)
	assert.Equal(t, geometry.Vector{X: 400, Y: 370}, line.to)
	assert.Equal(t, "circle", canvas.calls[1].kind)
	assert.Equal(t, 5.0, canvas.calls[1].radius)

	b.Shoot()
	canvas.reset()
	b.Draw(canvas)

	assert.Equal(t, 0, canvas.count("line"))
	assert.Equal(t, 1, canvas.count("circle"))
}

func TestShootLaunchesOnce(t *testing.T) {
	b := newAimingBall()
	canvas := &recordingCanvas{}
	for range 10 {
		b.Draw(canvas)
	}
	angle, _ := b.AimAngle()
	require.Equal(t, 410.0, angle)

	require.True(t, b.Shoot())
	assert.True(t, b.IsPlaying())
	assert.Equal(t, geometry.Vector{X: 397.5 - 410, Y: 90}, b.Force())

	_, aiming := b.AimAngle()
	assert.False(t, aiming)

	force := b.Force()
	assert.False(t, b.Shoot())
	assert.True(t, b.IsPlaying())
	assert.Equal(t, force, b.Force())
}

func TestLaunchedBallMovesTowardAim(t *testing.T) {
	b := newAimingBall()
	b.Shoot()
	start := b.Position()

	assert.False(t, b.Update())

	assert.InDelta(t, start.X+2.5/17, b.Position().X, 1e-9)
	assert.InDelta(t, start.Y-90.0/17, b.Position().Y, 1e-9)
}

func TestUpdateReflectsOffWalls(t *testing.T) {
	s := breakout.DefaultSettings()

	tests := []struct {
		name      string
		position  geometry.Vector
		force     geometry.Vector
		wantForce geometry.Vector
		wantPos   geometry.Vector
	}{
		{
			name:      "left wall",
			position:  geometry.Vector{X: 2, Y: 300},
			force:     geometry.Vector{X: 34, Y: 0},
			wantForce: geometry.Vector{X: -34, Y: 0},
			wantPos:   geometry.Vector{X: 4, Y: 300},
		},
		{
			name:      "right wall",
			position:  geometry.Vector{X: 799, Y: 300},
			force:     geometry.Vector{X: -34, Y: 0},
			wantForce: geometry.Vector{X: 34, Y: 0},
			wantPos:   geometry.Vector{X: 797, Y: 300},
		},
		{
			name:      "ceiling",
			position:  geometry.Vector{X: 400, Y: 1},
			force:     geometry.Vector{X: 0, Y: 17},
			wantForce: geometry.Vector{X: 0, Y: -17},
			wantPos:   geometry.Vector{X: 400, Y: 2},
		},
		{
			name:      "floor",
			position:  geometry.Vector{X: 400, Y: 599},
			force:     geometry.Vector{X: 0, Y: -34},
			wantForce: geometry.Vector{X: 0, Y: 34},
			wantPos:   geometry.Vector{X: 400, Y: 597},
		},
		{
			name:      "open space",
			position:  geometry.Vector{X: 400, Y: 300},
			force:     geometry.Vector{X: 34, Y: -17},
			wantForce: geometry.Vector{X: 34, Y: -17},
			wantPos:   geometry.Vector{X: 398, Y: 301},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := breakout.NewLaunchedBall(tt.position, tt.force, s)

			bounced := b.Update()

			assert.Equal(t, tt.wantForce != tt.force, bounced)
			assert.Equal(t, tt.wantForce, b.Force())
			assert.Equal(t, tt.wantPos, b.Position())
		})
	}
}

func TestCollideFlipsOneAxis(t *testing.T) {
	s := breakout.DefaultSettings()
	box := geometry.NewRect(100, 100, 40, 15)

	tests := []struct {
		name      string
		position  geometry.Vector
		wantForce geometry.Vector
	}{
		// x offset 20 > y offset 2: treated as a top/bottom hit
		{"from above", geometry.Vector{X: 120, Y: 102}, geometry.Vector{X: 3, Y: -4}},
		// x offset -3 <= y offset 7: treated as a side hit
		{"from the left", geometry.Vector{X: 97, Y: 107}, geometry.Vector{X: -3, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := breakout.NewLaunchedBall(tt.position, geometry.Vector{X: 3, Y: 4}, s)

			assert.True(t, b.Collide(box))
			assert.Equal(t, tt.wantForce, b.Force())
		})
	}
}

func TestCollideMissLeavesForce(t *testing.T) {
	b := breakout.NewLaunchedBall(geometry.Vector{X: 10, Y: 10}, geometry.Vector{X: 3, Y: 4}, breakout.DefaultSettings())

	assert.False(t, b.Collide(geometry.NewRect(100, 100, 40, 15)))
	assert.Equal(t, geometry.Vector{X: 3, Y: 4}, b.Force())
}
