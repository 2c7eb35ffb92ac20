package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	length := math.Hypot(v.X, v.Y)
	if length == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / length, Y: v.Y / length}
}

// Scale multiplies both components of v by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Edges records which arena walls a clamped position touches.
type Edges struct {
	Left, Right, Top, Bottom bool
}

// Horizontal reports whether a left or right wall was touched.
func (e Edges) Horizontal() bool { return e.Left || e.Right }

// Vertical reports whether a top or bottom wall was touched.
func (e Edges) Vertical() bool { return e.Top || e.Bottom }

// ClampToArena keeps a w×h box at (x, y) inside an arenaW×arenaH rectangle
// anchored at the origin and reports which walls the result lies on.
func ClampToArena(x, y, w, h, arenaW, arenaH float64) (float64, float64, Edges) {
	maxX := arenaW - w
	maxY := arenaH - h
	x = Clamp(x, 0, maxX)
	y = Clamp(y, 0, maxY)
	return x, y, Edges{
		Left:   x == 0,
		Right:  x == maxX,
		Top:    y == 0,
		Bottom: y == maxY,
	}
}

// CardinalDirections are the four axis-aligned unit vectors.
var CardinalDirections = []dmath.Vec2{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// OctalDirections are every non-zero combination of {-1,0,1}² normalized.
var OctalDirections = func() []dmath.Vec2 {
	dirs := make([]dmath.Vec2, 0, 8)
	for dx := -1.0; dx <= 1; dx++ {
		for dy := -1.0; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dirs = append(dirs, Normalize(dmath.Vec2{X: dx, Y: dy}))
		}
	}
	return dirs
}()
