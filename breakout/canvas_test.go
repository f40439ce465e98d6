package breakout_test

import (
	"image/color"

	"github.com/meghashyamc/hitnbreak/geometry"
)

type drawCall struct {
	kind   string
	rect   geometry.Rect
	from   geometry.Vector
	to     geometry.Vector
	radius float64
	color  color.Color
}

type recordingCanvas struct {
	calls []drawCall
}

func (r *recordingCanvas) FillRect(rect geometry.Rect, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "rect", rect: rect, color: c})
}

func (r *recordingCanvas) FillCircle(center geometry.Vector, radius float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "circle", from: center, radius: radius, color: c})
}

func (r *recordingCanvas) Line(from, to geometry.Vector, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "line", from: from, to: to, color: c})
}

func (r *recordingCanvas) count(kind string) int {
	n := 0
	for _, call := range r.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}

func (r *recordingCanvas) reset() {
	r.calls = r.calls[:0]
}
