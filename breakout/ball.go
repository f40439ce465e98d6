package breakout

import (
	"image/color"

	"github.com/meghashyamc/hitnbreak/geometry"
)

// ballState is either *Aiming or *Launched. A ball starts aiming and, once
// shot, stays launched for the rest of the session.
type ballState interface {
	isBallState()
}

// Aiming tracks the sweeping aim indicator as whole-unit offsets from the
// ball's anchor x.
type Aiming struct {
	Offset int
	Target int
}

type Launched struct {
	Force geometry.Vector
}

func (*Aiming) isBallState()   {}
func (*Launched) isBallState() {}

// sweep moves the indicator one unit toward its target and turns it around
// once the target is reached.
func (a *Aiming) sweep(spread int) {
	if a.Target-a.Offset >= 0 {
		a.Offset++
	} else {
		a.Offset--
	}

	if a.Offset == a.Target {
		if a.Target > 0 {
			a.Target = -spread
		} else {
			a.Target = spread
		}
	}
}

type Ball struct {
	position  geometry.Vector
	radius    float64
	color     color.RGBA
	anchor    float64
	spread    int
	aimLength float64
	damping   float64
	arena     geometry.Vector
	state     ballState
}

// NewBall creates an aiming ball. The circle sits half a radius left of
// start.X, while the aim sweep stays centred on start.X.
func NewBall(start geometry.Vector, s Settings) *Ball {
	return &Ball{
		position:  geometry.Vector{X: start.X - s.BallRadius/2, Y: start.Y},
		radius:    s.BallRadius,
		color:     White,
		anchor:    start.X,
		spread:    s.AimSpread,
		aimLength: s.AimLength,
		damping:   s.BallDamping,
		arena:     geometry.Vector{X: s.ArenaWidth, Y: s.ArenaHeight},
		state:     &Aiming{Offset: 0, Target: s.AimSpread},
	}
}

func (b *Ball) Position() geometry.Vector {
	return b.position
}

func (b *Ball) Radius() float64 {
	return b.radius
}

func (b *Ball) Anchor() float64 {
	return b.anchor
}

// Force is the per-tick velocity before damping. It is zero while aiming.
func (b *Ball) Force() geometry.Vector {
	if launched, ok := b.state.(*Launched); ok {
		return launched.Force
	}
	return geometry.Vector{}
}

// AimAngle returns the x coordinate of the aim indicator's tip.
func (b *Ball) AimAngle() (float64, bool) {
	aim, ok := b.state.(*Aiming)
	if !ok {
		return 0, false
	}
	return b.anchor + float64(aim.Offset), true
}

func (b *Ball) AimTarget() (float64, bool) {
	aim, ok := b.state.(*Aiming)
	if !ok {
		return 0, false
	}
	return b.anchor + float64(aim.Target), true
}

func (b *Ball) IsPlaying() bool {
	_, ok := b.state.(*Launched)
	return ok
}

// Shoot launches the ball toward the current aim tip. It only works once;
// later calls leave the ball untouched and return false.
func (b *Ball) Shoot() bool {
	aim, ok := b.state.(*Aiming)
	if !ok {
		return false
	}

	tip := b.aimTip(aim)
	b.state = &Launched{Force: b.position.Sub(tip)}
	return true
}

// Update advances a launched ball by its damped force. A wall hit flips the
// matching force component and the step already computed for this tick, so
// the ball turns back within the same frame. Reports whether a wall was hit.
func (b *Ball) Update() bool {
	launched, ok := b.state.(*Launched)
	if !ok {
		return false
	}

	step := launched.Force.Scale(1 / b.damping)
	bounced := false

	if x := b.position.X - step.X; x <= 0 || x >= b.arena.X {
		launched.Force.X = -launched.Force.X
		step.X = -step.X
		bounced = true
	}

	if y := b.position.Y - step.Y; y <= 0 || y >= b.arena.Y {
		launched.Force.Y = -launched.Force.Y
		step.Y = -step.Y
		bounced = true
	}

	b.position = b.position.Sub(step)
	return bounced
}

// Collide bounces the ball off r if they overlap. The axis is picked by
// comparing the ball's offset from the box origin on each axis, which is not
// a true surface normal and can pick the wrong axis on corner hits.
func (b *Ball) Collide(r geometry.Rect) bool {
	if !geometry.CircleIntersectsRect(b.position, b.radius, r) {
		return false
	}

	if launched, ok := b.state.(*Launched); ok {
		if b.position.X-r.X > b.position.Y-r.Y {
			launched.Force.Y = -launched.Force.Y
		} else {
			launched.Force.X = -launched.Force.X
		}
	}
	return true
}

// Draw renders the ball and, while aiming, the indicator line. Each aiming
// frame also advances the sweep by one unit.
func (b *Ball) Draw(c Canvas) {
	b.DrawStill(c)

	if aim, ok := b.state.(*Aiming); ok {
		aim.sweep(b.spread)
	}
}

// DrawStill renders the same picture as Draw but leaves the aim sweep where
// it is.
func (b *Ball) DrawStill(c Canvas) {
	if aim, ok := b.state.(*Aiming); ok {
		c.Line(b.position, b.aimTip(aim), Red)
	}

	c.FillCircle(b.position, b.radius, b.color)
}

func (b *Ball) aimTip(aim *Aiming) geometry.Vector {
	origin := geometry.Vector{X: b.anchor, Y: b.position.Y}
	return origin.Add(geometry.Vector{X: float64(aim.Offset), Y: -b.aimLength})
}
