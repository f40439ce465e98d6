package breakout

import (
	"fmt"
	"math/rand/v2"

	"github.com/meghashyamc/hitnbreak/geometry"
	"github.com/meghashyamc/hitnbreak/logger"
)

// Input is the player's key state sampled once per frame.
type Input struct {
	Left   bool
	Right  bool
	Launch bool
	Quit   bool
}

// World holds the whole session: one paddle, one ball and the brick field.
// It is driven by a single loop and is not safe for concurrent use.
type World struct {
	settings Settings
	paddle   *Paddle
	ball     *Ball
	field    *BrickField
	frame    uint64
	cleared  bool
	logger   logger.Logger
}

func NewWorld(s Settings, log logger.Logger) (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	seed := s.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	w := &World{
		settings: s,
		paddle:   NewPaddle(geometry.Vector{X: s.ArenaWidth / 2, Y: s.ArenaHeight / 1.2}, s),
		ball:     NewBall(geometry.Vector{X: s.ArenaWidth / 2, Y: s.ArenaHeight / 1.3}, s),
		field:    NewBrickField(s.FieldRows, s.FieldColumns, s.BrickSize(), rng),
		logger:   log,
	}

	w.logger.Debug("world created",
		"arena", geometry.Vector{X: s.ArenaWidth, Y: s.ArenaHeight},
		"bricks", w.field.Len(),
		"brickSize", s.BrickSize(),
		"seed", seed,
	)
	return w, nil
}

// Step runs one frame of simulation: paddle, ball movement, launch, then
// paddle and brick collisions.
func (w *World) Step(in Input) {
	w.frame++

	w.paddle.Update(in.Left, in.Right)

	if w.ball.Update() {
		w.logger.Debug("ball bounced off wall", "frame", w.frame, "position", w.ball.Position(), "force", w.ball.Force())
	}

	if in.Launch && !w.ball.IsPlaying() && w.ball.Shoot() {
		w.logger.Debug("ball launched", "frame", w.frame, "force", w.ball.Force())
	}

	if w.ball.Collide(w.paddle.Bounds()) {
		w.logger.Debug("ball hit paddle", "frame", w.frame, "force", w.ball.Force())
	}

	if removed := w.field.Collide(w.ball); removed > 0 {
		w.logger.Debug("bricks destroyed", "frame", w.frame, "removed", removed, "remaining", w.field.LiveCount())
	}

	if !w.cleared && w.field.Cleared() {
		w.cleared = true
		w.logger.Info("all bricks destroyed", "frame", w.frame)
	}
}

// Draw issues the frame's draw calls. Drawing an aiming ball advances its
// aim sweep, so call it exactly once per frame.
func (w *World) Draw(c Canvas) {
	w.paddle.Draw(c)
	w.ball.Draw(c)
	w.field.Draw(c)
}

// DrawStill redraws the current frame without advancing the aim sweep, for
// frontends that present more often than they step.
func (w *World) DrawStill(c Canvas) {
	w.paddle.Draw(c)
	w.ball.DrawStill(c)
	w.field.Draw(c)
}

func (w *World) Settings() Settings {
	return w.settings
}

func (w *World) Paddle() *Paddle {
	return w.paddle
}

func (w *World) Ball() *Ball {
	return w.ball
}

func (w *World) Field() *BrickField {
	return w.field
}

func (w *World) Frame() uint64 {
	return w.frame
}
