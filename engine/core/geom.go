package core

// Rect is an axis-aligned bounding box in world pixels (top-left origin)
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle, clamping negative sizes to zero
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the two rectangles share a positive-area region.
// Rectangles that only touch along an edge or a corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Penetration returns how far r reaches into o along each axis.
// Both values are positive only when the rectangles overlap.
func (r Rect) Penetration(o Rect) (dx, dy float64) {
	dx = min(r.Right(), o.Right()) - max(r.X, o.X)
	dy = min(r.Bottom(), o.Bottom()) - max(r.Y, o.Y)
	return dx, dy
}

// Contains returns true if the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Clamp restricts a value to be within [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
