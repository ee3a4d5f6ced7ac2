package math

import (
	"fmt"
	"strconv"
)

// ProductKind tells which field of a Product holds the result.
type ProductKind int

const (
	// ScaledVector is the result of multiplying by a number.
	ScaledVector ProductKind = iota
	// DotProduct is the result of multiplying by another vector.
	DotProduct
)

// Product is the result of Times: a vector when the operand was a
// number, a scalar when it was a vector.
type Product struct {
	Kind   ProductKind
	Vector Vec2
	Scalar float64
}

// String formats whichever side of the product is set.
func (p Product) String() string {
	if p.Kind == DotProduct {
		return strconv.FormatFloat(p.Scalar, 'g', -1, 64)
	}
	return p.Vector.String()
}

// The methods below take an operand of unknown type and fail with
// ErrInvalidArgument when it is not what the operation expects. A vector
// operand is a Vec2 or a non-nil *Vec2; a number is any Number type.

// Plus returns v + other.
func (v Vec2) Plus(other any) (Vec2, error) {
	o, ok := vector(other)
	if !ok {
		return Vec2{}, fmt.Errorf("%w: can only add two vectors, got %T", ErrInvalidArgument, other)
	}
	return v.Add(o), nil
}

// Minus returns v - other.
func (v Vec2) Minus(other any) (Vec2, error) {
	o, ok := vector(other)
	if !ok {
		return Vec2{}, fmt.Errorf("%w: can only subtract two vectors, got %T", ErrInvalidArgument, other)
	}
	return v.Sub(o), nil
}

// Times multiplies v by a number (scaling) or by a vector (dot product).
func (v Vec2) Times(other any) (Product, error) {
	if o, ok := vector(other); ok {
		return Product{Kind: DotProduct, Scalar: v.Dot(o)}, nil
	}
	if s, ok := scalar(other); ok {
		return Product{Kind: ScaledVector, Vector: v.Scale(s)}, nil
	}
	return Product{}, fmt.Errorf("%w: can only multiply a vector by a vector or a number, got %T", ErrInvalidArgument, other)
}

// TimesVector is the reversed form of Times, other * v.
func TimesVector(other any, v Vec2) (Product, error) {
	return v.Times(other)
}

// DividedBy returns v / other for a numeric other.
func (v Vec2) DividedBy(other any) (Vec2, error) {
	s, ok := scalar(other)
	if !ok {
		return Vec2{}, fmt.Errorf("%w: can only divide by a number, got %T", ErrInvalidArgument, other)
	}
	return v.Div(s)
}

// Power always fails, whatever the exponent.
func (v Vec2) Power(other any) (Vec2, error) {
	return Vec2{}, fmt.Errorf("%w: vector power operation (exponent %v)", ErrUnsupported, other)
}

// AngleTo returns the angle between v and other in radians.
func (v Vec2) AngleTo(other any) (float64, error) {
	o, ok := vector(other)
	if !ok {
		return 0, fmt.Errorf("%w: can only get the angle between two vectors, got %T", ErrInvalidArgument, other)
	}
	return v.AngleBetween(o), nil
}

func vector(x any) (Vec2, bool) {
	switch o := x.(type) {
	case Vec2:
		return o, true
	case *Vec2:
		if o != nil {
			return *o, true
		}
	}
	return Vec2{}, false
}

func scalar(x any) (float64, bool) {
	switch n := x.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uintptr:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
