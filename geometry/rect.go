package geometry

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) Min() Vector {
	return Vector{X: r.X, Y: r.Y}
}

func (r Rect) Size() Vector {
	return Vector{X: r.Width, Y: r.Height}
}

// ClosestPoint clamps p into the box
func (r Rect) ClosestPoint(p Vector) Vector {
	return Vector{
		X: clamp(p.X, r.X, r.Right()),
		Y: clamp(p.Y, r.Y, r.Bottom()),
	}
}

// CircleIntersectsRect tests a circle against a box using the distance from
// the center to the nearest point of the box. Contact on the boundary counts.
func CircleIntersectsRect(center Vector, radius float64, r Rect) bool {
	return center.DistanceSquared(r.ClosestPoint(center)) <= radius*radius
}

func clamp(value, min, max float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
