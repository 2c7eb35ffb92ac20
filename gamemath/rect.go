package gamemath

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share interior area. Boxes that only touch
// along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
