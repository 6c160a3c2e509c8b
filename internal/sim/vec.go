package sim

import "math"

// Vec2 is a 2D point or direction in arena units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// DirTo returns the unit vector from v toward o. When the two points
// coincide it returns +X instead of dividing by zero.
func (v Vec2) DirTo(o Vec2) Vec2 {
	return o.Sub(v).NormOr(Vec2{X: 1})
}

// NormOr returns v scaled to unit length, or fallback when v has zero length.
func (v Vec2) NormOr(fallback Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return Vec2{v.X / l, v.Y / l}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
