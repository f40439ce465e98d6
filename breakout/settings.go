package breakout

import (
	"errors"
	"fmt"

	"github.com/meghashyamc/hitnbreak/geometry"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is fixed for the whole session. Build it once at startup and pass
// it by value.
type Settings struct {
	ArenaWidth  float64
	ArenaHeight float64
	Title       string
	FPS         int

	// BrickRows and BrickColumns divide the arena into the brick size.
	BrickRows    int
	BrickColumns int

	// FieldRows and FieldColumns are the grid extents handed to the brick
	// field, which lays out (FieldRows+1) x (FieldColumns+1) bricks.
	FieldRows    int
	FieldColumns int

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64

	BallRadius  float64
	BallDamping float64
	AimSpread   int
	AimLength   float64

	// Seed for the brick palette. Zero picks a random seed.
	Seed uint64
}

func DefaultSettings() Settings {
	return Settings{
		ArenaWidth:   800,
		ArenaHeight:  600,
		Title:        "Hit'n break",
		FPS:          60,
		BrickRows:    20,
		BrickColumns: 40,
		FieldRows:    20,
		FieldColumns: 5,
		PaddleWidth:  90,
		PaddleHeight: 15,
		PaddleSpeed:  3,
		BallRadius:   5,
		BallDamping:  17,
		AimSpread:    50,
		AimLength:    90,
	}
}

func (s Settings) BrickSize() geometry.Vector {
	return geometry.Vector{
		X: s.ArenaWidth / float64(s.BrickRows),
		Y: s.ArenaHeight / float64(s.BrickColumns),
	}
}

func (s Settings) Validate() error {
	switch {
	case s.ArenaWidth <= 0 || s.ArenaHeight <= 0:
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalidSettings, s.ArenaWidth, s.ArenaHeight)
	case s.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidSettings, s.FPS)
	case s.BrickRows <= 0 || s.BrickColumns <= 0:
		return fmt.Errorf("%w: brick divisors must be positive, got %dx%d", ErrInvalidSettings, s.BrickRows, s.BrickColumns)
	case s.FieldRows < 0 || s.FieldColumns < 0:
		return fmt.Errorf("%w: field grid must not be negative, got %dx%d", ErrInvalidSettings, s.FieldRows, s.FieldColumns)
	case s.PaddleWidth <= 0 || s.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidSettings)
	case s.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive, got %v", ErrInvalidSettings, s.PaddleSpeed)
	case s.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidSettings)
	case s.BallDamping <= 0:
		// a negative divisor would send the ball away from the aim line
		return fmt.Errorf("%w: ball damping must be positive, got %v", ErrInvalidSettings, s.BallDamping)
	case s.AimLength <= 0:
		return fmt.Errorf("%w: aim length must be positive, got %v", ErrInvalidSettings, s.AimLength)
	case s.AimSpread < 1:
		return fmt.Errorf("%w: aim spread must be at least 1, got %d", ErrInvalidSettings, s.AimSpread)
	}
	return nil
}
