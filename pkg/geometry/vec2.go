// Package geometry provides the 2D vector, interpolation and segment
// primitives consumed by the stroke-modeling pipeline. All operations are
// pure and safe for concurrent use.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite reports that an operation received a NaN or infinite
// coordinate. Errors returned by this package wrap it; test with errors.Is.
var ErrNonFinite = errors.New("non-finite input")

// Vec2 represents a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product (the determinant).
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Magnitude returns the length of the vector.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Magnitude()
}

// AbsoluteAngleTo returns the unsigned angle between v and other, in the
// range [0, π]. It returns an error wrapping ErrNonFinite if either vector
// has a NaN or infinite coordinate; past that check the result is always
// defined, since atan2(0, 0) is 0 rather than NaN.
func (v Vec2) AbsoluteAngleTo(other Vec2) (float64, error) {
	if !v.IsFinite() || !other.IsFinite() {
		return 0, fmt.Errorf("%w: this=%v; other=%v", ErrNonFinite, v, other)
	}
	dot := v.X*other.X + v.Y*other.Y
	det := v.X*other.Y - v.Y*other.X
	return math.Abs(math.Atan2(det, dot)), nil
}
