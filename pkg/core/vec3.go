package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByNearZero is returned when a vector is divided or normalized
// by a value too small to produce a finite result.
var ErrDivisionByNearZero = errors.New("division by zero or near-zero value")

// Vec3 represents a 3D vector, used for points and colors as well
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector scaled by 1/scalar. It returns
// ErrDivisionByNearZero when the scalar is too small to divide by, so a
// degenerate divisor surfaces as an error instead of NaN components.
func (v Vec3) Divide(scalar float64) (Vec3, error) {
	if math.Abs(scalar) <= math.SmallestNonzeroFloat64 {
		return Vec3{}, ErrDivisionByNearZero
	}
	return v.Multiply(1.0 / scalar), nil
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction. It returns
// ErrDivisionByNearZero for vectors whose length is too small to normalize.
func (v Vec3) Normalize() (Vec3, error) {
	return v.Divide(v.Length())
}

// NearZero reports whether all components are very close to zero
func (v Vec3) NearZero() bool {
	const epsilon = 1e-8
	return math.Abs(v.X) < epsilon && math.Abs(v.Y) < epsilon && math.Abs(v.Z) < epsilon
}

// Component returns the component at index i (0 = X, 1 = Y, 2 = Z).
// Panics for any other index: an out-of-range component access is a bug at
// the call site, not a runtime condition.
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("vec3 component index out of range: %d", i))
	}
}

// Vec2 represents a 2D vector, used for sample points
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}
