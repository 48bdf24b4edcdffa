package geometry

import "math"

const tau = 2 * math.Pi

// Float constrains the scalar interpolation helpers.
type Float interface {
	~float32 | ~float64
}

// Clamp01 saturates v into the range [0, 1].
func Clamp01[T Float](v T) T {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Normalize01 returns the ratio of the difference from start to value and
// the difference from start to end, clamped to [0, 1]. When start == end it
// returns 1 if value > start and 0 otherwise, so the degenerate range never
// divides by zero.
func Normalize01[T Float](start, end, value T) T {
	if start == end {
		if value > start {
			return 1
		}
		return 0
	}
	return Clamp01((value - start) / (end - start))
}

// Interp linearly interpolates between start and end. The interpolation
// amount is clamped to [0, 1] first, so the result never leaves the closed
// range between start and end.
func Interp[T Float](start, end, t T) T {
	return start + (end-start)*Clamp01(t)
}

// InterpVec2 is Interp for points. Vec2 cannot satisfy the numeric
// constraint, so the vector case gets a concrete overload.
func InterpVec2(start, end Vec2, t float64) Vec2 {
	return start.Add(end.Sub(start).Mul(Clamp01(t)))
}

// NormalizeAngle maps an angle in radians into [0, 2π). It uses a modulo
// rather than repeated subtraction, so the cost is constant regardless of
// the input's magnitude.
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, tau)
	if angle < 0 {
		angle += tau
	}
	return angle
}

// InterpAngle interpolates from the angle start to the angle end, traveling
// around the shorter arc (interpolating from π/4 to 7π/4 passes through 0,
// not through π). All angles are radians; the result is normalized into
// [0, 2π).
func InterpAngle(start, end, t float64) float64 {
	start = NormalizeAngle(start)
	end = NormalizeAngle(end)
	delta := end - start
	if delta < -math.Pi {
		end += tau
	} else if delta > math.Pi {
		end -= tau
	}
	return NormalizeAngle(Interp(start, end, t))
}
