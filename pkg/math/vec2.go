// Package math provides the Vec2 value type and its arithmetic.
package math

import (
	"fmt"
	"math"
)

// Number is any Go integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Vec2 is a 2D vector. Operations never modify the receiver.
type Vec2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New[T Number](x, y T) Vec2 {
	return Vec2{float64(x), float64(y)}
}

// FromValues builds a vector from dynamically typed coordinates.
func FromValues(x, y any) (Vec2, error) {
	fx, okX := scalar(x)
	fy, okY := scalar(y)
	if !okX || !okY {
		return Vec2{}, fmt.Errorf("%w: vector coordinates must be numbers, got %T and %T", ErrInvalidArgument, x, y)
	}
	return Vec2{fx, fy}, nil
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Scale returns s * v. Same as v.Scale(s).
func Scale(s float64, v Vec2) Vec2 {
	return v.Scale(s)
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Div returns v / s. It fails with ErrDivisionByZero when s is zero.
func (v Vec2) Div(s float64) (Vec2, error) {
	if s == 0 {
		return Vec2{}, fmt.Errorf("%w: cannot divide %v by zero", ErrDivisionByZero, v)
	}
	return Vec2{v.X / s, v.Y / s}, nil
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Normalize returns the unit vector pointing the same way as v.
// The zero vector has no direction and yields ErrDivisionByZero.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Length()
	if l == 0 {
		return Vec2{}, fmt.Errorf("%w: cannot normalize zero-length vector", ErrDivisionByZero)
	}
	return Vec2{v.X / l, v.Y / l}, nil
}

// AngleBetween returns the angle to other in radians, in [0, Pi].
//
// The cosine is clamped to [-1, 1] before Acos so rounding on nearly
// parallel vectors cannot leave its domain. A zero vector on either side
// is not rejected: the result is NaN.
func (v Vec2) AngleBetween(other Vec2) float64 {
	cos := v.Dot(other) / (v.Length() * other.Length())
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// Pow is not defined for vectors and always returns ErrUnsupported.
func (v Vec2) Pow(float64) (Vec2, error) {
	return Vec2{}, fmt.Errorf("%w: vector power operation", ErrUnsupported)
}

// Equal reports whether other is a vector with the same components.
// Values that are not vectors are never equal, and are not an error.
func (v Vec2) Equal(other any) bool {
	o, ok := vector(other)
	return ok && v == o
}

// String returns the compact form, e.g. "vector(3, 4)".
func (v Vec2) String() string {
	return fmt.Sprintf("vector(%v, %v)", v.X, v.Y)
}

// GoString returns the descriptive form used by %#v,
// e.g. "vector: (x = 3, y = 4)".
func (v Vec2) GoString() string {
	return fmt.Sprintf("vector: (x = %v, y = %v)", v.X, v.Y)
}
