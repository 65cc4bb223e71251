// Package geom holds the small amount of vector math the simulation needs.
package geom

import "math"

// Vec3 is a position or direction in world space. Y is up.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Zero is the origin
var Zero = Vec3{}

// Up is the world up axis
var Up = Vec3{Y: 1}

// V builds a vector
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Len returns the vector magnitude
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector, or Zero for a zero-length input
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// IsZero reports whether all components are zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Distance returns the euclidean distance between two points
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Lerp interpolates between a and b; t is clamped to [0, 1]
func Lerp(a, b Vec3, t float64) Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Scale(t))
}

// Clamp01 clamps a scalar to [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Direction returns the unit vector from a toward b
func Direction(from, to Vec3) Vec3 {
	return to.Sub(from).Normalize()
}
