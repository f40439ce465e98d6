package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/hitnbreak/breakout"
)

func readInput() breakout.Input {
	return breakout.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Launch: ebiten.IsKeyPressed(ebiten.KeyEnter),
		Quit:   ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}
