package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/hitnbreak/breakout"
	"github.com/meghashyamc/hitnbreak/config"
	"github.com/meghashyamc/hitnbreak/geometry"
	"github.com/meghashyamc/hitnbreak/logger"
)

// App plays the game inside a terminal.
type App struct {
	screen   tcell.Screen
	settings breakout.Settings
	world    *breakout.World
	keys     *heldKeys
	logger   logger.Logger
}

func New(cfg *config.Config, log logger.Logger) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}

	hold := time.Duration(cfg.GetTerminalHoldMs()) * time.Millisecond
	app, err := NewWithScreen(screen, cfg.Settings(), hold, log)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// NewWithScreen uses an already initialized screen.
func NewWithScreen(screen tcell.Screen, settings breakout.Settings, hold time.Duration, log logger.Logger) (*App, error) {
	world, err := breakout.NewWorld(settings, log)
	if err != nil {
		return nil, err
	}

	return &App{
		screen:   screen,
		settings: settings,
		world:    world,
		keys:     newHeldKeys(hold),
		logger:   log,
	}, nil
}

// Run blocks until the player quits, then restores the terminal.
func (a *App) Run() error {
	defer a.screen.Fini()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.settings.FPS))
	defer ticker.Stop()

	a.logger.Info("terminal game started", "fps", a.settings.FPS)
	for {
		select {
		case ev := <-events:
			a.handleEvent(ev, time.Now())

		case now := <-ticker.C:
			if !a.tick(now) {
				a.logger.Info("terminal game closed by player", "frames", a.world.Frame())
				return nil
			}
		}
	}
}

func (a *App) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.keys.handle(ev, now)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// tick runs and draws one frame. It returns false once the player asked to
// quit.
func (a *App) tick(now time.Time) bool {
	in := a.keys.input(now)
	if in.Quit {
		return false
	}

	a.world.Step(in)
	a.draw()
	return true
}

func (a *App) draw() {
	a.screen.Clear()
	a.world.Draw(newCellCanvas(a.screen, geometry.Vector{X: a.settings.ArenaWidth, Y: a.settings.ArenaHeight}))
	a.screen.Show()
}
