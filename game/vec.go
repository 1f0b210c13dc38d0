package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the vector type used for every position and velocity.
type Vec2 = mgl64.Vec2

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return mgl64.Vec2{x, y}
}

// FromAngle returns the unit vector for an angle in radians. Angle 0 points right.
func FromAngle(angle float64) Vec2 {
	return mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector.
func NormalizeOrZero(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Lerp interpolates from a to b by t.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Distance returns |a-b|.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DistanceSq returns |a-b|^2.
func DistanceSq(a, b Vec2) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Perp returns v rotated a quarter turn counter-clockwise.
func Perp(v Vec2) Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// wrap maps x into [0, size) so leaving one edge re-enters the opposite one.
func wrap(x, size float64) float64 {
	r := math.Mod(x, size)
	if r < 0 {
		r += size
	}
	return r
}

// Bounds is the playfield rectangle sampled once per tick.
type Bounds struct {
	Width, Height float64
}

// BoundsOf samples a viewport.
func BoundsOf(v Viewport) Bounds {
	return Bounds{Width: v.Width(), Height: v.Height()}
}

// Within reports whether p lies inside the playfield grown by margin on every side.
func (b Bounds) Within(p Vec2, margin float64) bool {
	return p[0] > -margin && p[0] < b.Width+margin &&
		p[1] > -margin && p[1] < b.Height+margin
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Vec2 {
	return V(b.Width/2, b.Height/2)
}
