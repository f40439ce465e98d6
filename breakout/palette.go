package breakout

import (
	"image/color"
	"math/rand/v2"
)

var (
	White  = color.RGBA{255, 255, 255, 255}
	Red    = color.RGBA{230, 41, 55, 255}
	Blue   = color.RGBA{0, 121, 241, 255}
	Gray   = color.RGBA{130, 130, 130, 255}
	Green  = color.RGBA{0, 228, 48, 255}
	Yellow = color.RGBA{253, 249, 0, 255}
	Purple = color.RGBA{200, 122, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
)

// Palette holds the brick colors. Purple is listed but never drawn: only the
// first BrickColors entries are picked from.
var Palette = []color.RGBA{White, Red, Blue, Gray, Green, Yellow, Purple}

const BrickColors = 6

// colorPicker hands out palette indices that never repeat the previous pick.
type colorPicker struct {
	rng  *rand.Rand
	last int
}

func newColorPicker(rng *rand.Rand) *colorPicker {
	return &colorPicker{rng: rng, last: -1}
}

func (p *colorPicker) next() color.RGBA {
	idx := p.rng.IntN(BrickColors)
	for idx == p.last {
		idx = p.rng.IntN(BrickColors)
	}
	p.last = idx
	return Palette[idx]
}
