// Package testutil provides reusable test helper functions for tween tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	Float32Tolerance = 1e-5
	DefaultULPs      = 4
)

// AssertExact verifies bit-exact equality of two floats.
// Unlike assert.Equal it reports both values with full precision.
func AssertExact(t *testing.T, expected, actual float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.Float64bits(expected) == math.Float64bits(actual) {
		return true
	}
	return assert.Fail(t, "values not bit-identical",
		"expected %v (%#016x), got %v (%#016x)",
		expected, math.Float64bits(expected), actual, math.Float64bits(actual))
}

// AssertULP verifies that actual is within ulps units in the last place of expected.
func AssertULP(t *testing.T, expected, actual float64, ulps uint, msgAndArgs ...any) bool {
	t.Helper()
	if scalar.EqualWithinULP(expected, actual, ulps) {
		return true
	}
	return assert.Fail(t, "values differ by more than ulps",
		"expected %v, got %v (max %d ulps)", expected, actual, ulps)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertOvershoot verifies that at least one element exceeds limit.
func AssertOvershoot(t *testing.T, s []float64, limit float64, msgAndArgs ...any) bool {
	t.Helper()
	for _, v := range s {
		if v > limit {
			return true
		}
	}
	return assert.Fail(t, "no overshoot", "no element of %d samples exceeds %f", len(s), limit)
}
