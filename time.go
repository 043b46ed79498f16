package tween

import "math"

// Time is the constraint for time and duration types.
//
// Floating-point types usually count seconds, integer types usually count
// frames or samples. Named types such as
//
//	type Frame uint32
//
// satisfy Time as well, which is how a custom clock representation plugs in.
type Time interface {
	Number
}

// Percent returns current / duration as a float64.
//
// The result is not clamped: a current time past the duration yields a
// value greater than 1, which is what drives extrapolation. A zero duration
// is treated as already complete and yields 1.
func Percent[T Time](duration, current T) float64 {
	if duration == 0 {
		return 1
	}
	return float64(current) / float64(duration)
}

// TimeToFloat64 converts t to a float64.
func TimeToFloat64[T Time](t T) float64 { return float64(t) }

// TimeToFloat32 converts t to a float32.
func TimeToFloat32[T Time](t T) float32 { return float32(t) }

// AddTime returns a + b.
func AddTime[T Time](a, b T) T { return a + b }

// SubTime returns a - b. Note the order.
func SubTime[T Time](a, b T) T { return a - b }

// ScaleTime returns t * f, truncating toward zero for integer types.
func ScaleTime[T Time](t T, f float64) T { return T(float64(t) * f) }

// IsComplete reports whether current has reached duration.
func IsComplete[T Time](current, duration T) bool { return current >= duration }

// Wrap returns t modulo period, in [0, period) for a positive period.
//
// Integer types use integer remainder so that large frame counts keep full
// precision. Floating-point types use [math.Mod]. Callers must not pass a
// zero period.
func Wrap[T Time](t, period T) T {
	var r T
	if isFloat[T]() {
		r = T(math.Mod(float64(t), float64(period)))
	} else {
		// a - (a/b)*b is the truncated remainder for integer operands.
		r = t - (t/period)*period
	}
	if r < 0 {
		r += period
		// A tiny negative float remainder rounds up to period itself.
		if r >= period {
			r = 0
		}
	}
	return r
}

// addWrapped returns (a + b) modulo period for a and b in [0, period),
// without overflowing T.
func addWrapped[T Time](a, b, period T) T {
	if rest := period - b; a >= rest {
		return a - rest
	}
	return a + b
}

// isFloat reports whether T has a floating-point underlying type.
func isFloat[T Time]() bool {
	var one T = 1
	return one/2 != 0
}

// clampTime limits t to [0, duration].
func clampTime[T Time](t, duration T) T {
	if t < 0 {
		return 0
	}
	if t > duration {
		return duration
	}
	return t
}
