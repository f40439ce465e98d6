// Package rlgame runs the game on raylib. It needs cgo and the raylib system
// libraries.
package rlgame

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/meghashyamc/hitnbreak/breakout"
	"github.com/meghashyamc/hitnbreak/config"
	"github.com/meghashyamc/hitnbreak/geometry"
	"github.com/meghashyamc/hitnbreak/logger"
)

type Game struct {
	settings breakout.Settings
	world    *breakout.World
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

	return &Game{
		settings: settings,
		world:    world,
		logger:   log,
	}, nil
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() {
	rl.InitWindow(int32(g.settings.ArenaWidth), int32(g.settings.ArenaHeight), g.settings.Title)
	rl.SetTargetFPS(int32(g.settings.FPS))
	defer rl.CloseWindow()

	g.logger.Info("starting raylib game")
	for !rl.WindowShouldClose() {
		g.world.Step(readInput())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		g.world.Draw(canvas{})
		rl.EndDrawing()
	}
	g.logger.Info("raylib game closed", "frames", g.world.Frame())
}

// WindowShouldClose already handles Escape.
func readInput() breakout.Input {
	return breakout.Input{
		Left:   rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:  rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Launch: rl.IsKeyDown(rl.KeyEnter),
	}
}

type canvas struct{}

func (canvas) FillRect(r geometry.Rect, c color.Color) {
	rl.DrawRectangleV(vec(r.Min()), vec(r.Size()), rlColor(c))
}

func (canvas) FillCircle(center geometry.Vector, radius float64, c color.Color) {
	rl.DrawCircleV(vec(center), float32(radius), rlColor(c))
}

func (canvas) Line(from, to geometry.Vector, c color.Color) {
	rl.DrawLineV(vec(from), vec(to), rlColor(c))
}

func vec(v geometry.Vector) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func rlColor(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
