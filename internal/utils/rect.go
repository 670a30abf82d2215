package utils

// Rect is an axis-aligned rectangle in arena pixels.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two rectangles share interior area. Rectangles
// that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Within reports whether r lies entirely inside bounds.
func (r Rect) Within(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y && r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// Outside reports whether r lies entirely outside bounds.
func (r Rect) Outside(bounds Rect) bool {
	return r.Bottom() < bounds.Y || r.Y > bounds.Bottom() || r.Right() < bounds.X || r.X > bounds.Right()
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CenteredAt returns a w×h rectangle centred on (cx, cy).
func CenteredAt(cx, cy, w, h float64) Rect {
	return NewRect(cx-w/2, cy-h/2, w, h)
}
