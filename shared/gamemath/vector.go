// Package gamemath holds the pure math used by the arena systems: vector
// helpers, the movement step and the camera viewport transform.
package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Add returns a + b.
func Add(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v * s.
func Scale(v math2.Vec2, s float64) math2.Vec2 {
	return math2.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func Length(v math2.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b math2.Vec2) float64 {
	return Length(Sub(a, b))
}

// IsZero reports whether both components of v are zero.
func IsZero(v math2.Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize(v math2.Vec2) math2.Vec2 {
	l := Length(v)
	if l == 0 {
		return math2.Vec2{}
	}
	return math2.Vec2{X: v.X / l, Y: v.Y / l}
}

// UnitFromAngle returns the unit vector at angle radians from the +X axis.
func UnitFromAngle(angle float64) math2.Vec2 {
	return math2.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// MoveStep advances pos along intent. The intent is normalized first, so a
// diagonal covers the same distance as a single axis.
func MoveStep(pos, intent math2.Vec2, speed, dt float64) math2.Vec2 {
	return Add(pos, Scale(Normalize(intent), speed*dt))
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
