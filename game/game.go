package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/meghashyamc/hitnbreak/assets"
	"github.com/meghashyamc/hitnbreak/breakout"
	"github.com/meghashyamc/hitnbreak/config"
	"github.com/meghashyamc/hitnbreak/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const helpText = "A/D or arrows: move   Enter: launch   Esc: quit"

var helpColor = color.RGBA{150, 150, 150, 255}

type Game struct {
	settings breakout.Settings
	world    *breakout.World
	showHelp bool
	stepped  bool // set by step, cleared by the first draw after it
	logger   logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.NewWithLevel(logger.ParseLevel(cfg.GetLogLevel()))

	settings := cfg.Settings()
	world, err := breakout.NewWorld(settings, log)
	if err != nil {
		log.Error("failed to create world", "err", err)
		return nil, err
	}

	g := &Game{
		settings: settings,
		world:    world,
		showHelp: cfg.GetShowHelp(),
		logger:   log,
	}

	g.logger.Info("game initialized", "width", settings.ArenaWidth, "height", settings.ArenaHeight, "fps", settings.FPS)
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		g.logger.Info("game closed by player", "frames", g.world.Frame())
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(int(g.settings.ArenaWidth), int(g.settings.ArenaHeight))
	ebiten.SetWindowTitle(g.settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(g.settings.FPS)
}

func (g *Game) Update() error {
	return g.step(readInput())
}

func (g *Game) step(in breakout.Input) error {
	if in.Quit {
		return ebiten.Termination
	}

	g.world.Step(in)
	g.stepped = true
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(breakout.Black)

	g.render(screenCanvas{screen: screen})

	if g.helpVisible() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, g.settings.ArenaHeight-24)
		op.ColorScale.ScaleWithColor(helpColor)
		text.Draw(screen, helpText, assets.HelpFont, op)
	}
}

// render advances the aim sweep at most once per tick. ebiten may call Draw
// more often than Update on high refresh rate displays.
func (g *Game) render(c breakout.Canvas) {
	if g.stepped {
		g.world.Draw(c)
		g.stepped = false
		return
	}
	g.world.DrawStill(c)
}

// the hint goes away once the ball is in play
func (g *Game) helpVisible() bool {
	return g.showHelp && !g.world.Ball().IsPlaying()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.settings.ArenaWidth), int(g.settings.ArenaHeight)
}
