package game

import (
	"image/color"
	"testing"

	"github.com/meghashyamc/hitnbreak/breakout"
	"github.com/meghashyamc/hitnbreak/config"
	"github.com/meghashyamc/hitnbreak/geometry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg, err := config.Load("test")
	require.NoError(t, err)

	g, err := NewGame(cfg)
	require.NoError(t, err)
	return g
}

func TestLayoutMatchesArena(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(1920, 1080)

	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestNewGameRejectsBadSettings(t *testing.T) {
	t.Setenv("AIM_SPREAD", "-3")
	cfg, err := config.Load("test")
	require.NoError(t, err)

	g, err := NewGame(cfg)

	assert.Nil(t, g)
	assert.ErrorIs(t, err, breakout.ErrInvalidSettings)
}

func TestHelpHiddenOnceBallIsLaunched(t *testing.T) {
	g := newTestGame(t)
	g.showHelp = true

	assert.True(t, g.helpVisible())

	g.world.Step(breakout.Input{Launch: true})

	assert.False(t, g.helpVisible())
}

func TestHelpDisabledByConfig(t *testing.T) {
	g := newTestGame(t)

	assert.False(t, g.helpVisible())
}

type nopCanvas struct{}

func (nopCanvas) FillRect(geometry.Rect, color.Color)               {}
func (nopCanvas) FillCircle(geometry.Vector, float64, color.Color) {}
func (nopCanvas) Line(geometry.Vector, geometry.Vector, color.Color) {}

func TestAimSweepAdvancesOncePerTick(t *testing.T) {
	g := newTestGame(t)
	ball := g.world.Ball()
	start, _ := ball.AimAngle()

	// draws with no tick in between leave the sweep alone
	for range 3 {
		g.render(nopCanvas{})
	}
	angle, _ := ball.AimAngle()
	assert.Equal(t, start, angle)

	for tick := 1; tick <= 5; tick++ {
		require.NoError(t, g.step(breakout.Input{}))
		for range 4 {
			g.render(nopCanvas{})
		}

		angle, _ := ball.AimAngle()
		assert.Equal(t, start+float64(tick), angle, "tick %d", tick)
	}
}

func TestStepReturnsTerminationOnQuit(t *testing.T) {
	g := newTestGame(t)

	err := g.step(breakout.Input{Quit: true})

	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, uint64(0), g.world.Frame())
	assert.False(t, g.stepped)
}
