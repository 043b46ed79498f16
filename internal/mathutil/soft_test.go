package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-tween/internal/testutil"
)

// TestSin_MatchesStd compares the software sine with math.Sin over several turns.
func TestSin_MatchesStd(t *testing.T) {
	for x := -40.0; x <= 40.0; x += 0.01 {
		assert.InDelta(t, math.Sin(x), Sin(x), 1e-14, "Sin(%v)", x)
	}
}

// TestCos_MatchesStd compares the software cosine with math.Cos over several turns.
func TestCos_MatchesStd(t *testing.T) {
	for x := -40.0; x <= 40.0; x += 0.01 {
		assert.InDelta(t, math.Cos(x), Cos(x), 1e-14, "Cos(%v)", x)
	}
}

// TestSin_SpecialValues tests the non-finite and signed-zero inputs.
func TestSin_SpecialValues(t *testing.T) {
	assert.Equal(t, 0.0, Sin(0))
	assert.True(t, math.Signbit(Sin(math.Copysign(0, -1))), "Sin(-0) should keep the sign")
	assert.True(t, math.IsNaN(Sin(math.NaN())))
	assert.True(t, math.IsNaN(Sin(math.Inf(1))))
	assert.True(t, math.IsNaN(Cos(math.Inf(-1))))
	assert.Equal(t, 1.0, Cos(0))
}

// TestSin_LargeArgument tests the fallback path above the reduction limit.
func TestSin_LargeArgument(t *testing.T) {
	x := float64(reduceThreshold) * 3
	assert.Equal(t, math.Sin(x), Sin(x))
	assert.Equal(t, -math.Sin(x), Sin(-x))
	assert.Equal(t, math.Cos(x), Cos(x))
}

// TestExp2_Integers tests that integer exponents are exact powers of two.
func TestExp2_Integers(t *testing.T) {
	for n := -1074; n <= 1023; n++ {
		require.Equal(t, math.Ldexp(1, n), Exp2(float64(n)), "Exp2(%d)", n)
	}
}

// TestExp2_MatchesStd compares fractional exponents with math.Exp2.
func TestExp2_MatchesStd(t *testing.T) {
	for x := -30.0; x <= 30.0; x += 0.037 {
		testutil.AssertRelativeError(t, math.Exp2(x), Exp2(x), 1e-15)
	}
}

// TestExp2_Limits tests overflow, underflow and NaN handling.
func TestExp2_Limits(t *testing.T) {
	assert.True(t, math.IsInf(Exp2(2000), 1))
	assert.Equal(t, 0.0, Exp2(-2000))
	assert.True(t, math.IsNaN(Exp2(math.NaN())))
}

// TestPow tests the base-2 fast path and general bases.
func TestPow(t *testing.T) {
	assert.Equal(t, Exp2(-3.5), Pow(2, -3.5))
	assert.Equal(t, 1.0, Pow(7, 0))
	testutil.AssertRelativeError(t, math.Pow(3, 1.7), Pow(3, 1.7), 1e-14)
	assert.Equal(t, math.Pow(-2, 3), Pow(-2, 3))
}

// TestBackends tests that both tables are populated and Active is one of them.
func TestBackends(t *testing.T) {
	for _, ops := range []*Ops{Std(), Soft()} {
		require.NotNil(t, ops.Pow)
		require.NotNil(t, ops.Exp2)
		require.NotNil(t, ops.Sin)
		require.NotNil(t, ops.Cos)
		require.NotNil(t, ops.Sqrt)
	}
	active := Active()
	assert.Contains(t, []string{"std", "soft"}, active.Name)
}

func BenchmarkSin_Soft(b *testing.B) {
	x := 1.2345
	for b.Loop() {
		_ = Sin(x)
	}
}

func BenchmarkSin_Std(b *testing.B) {
	x := 1.2345
	for b.Loop() {
		_ = math.Sin(x)
	}
}

func BenchmarkExp2_Soft(b *testing.B) {
	x := -3.21
	for b.Loop() {
		_ = Exp2(x)
	}
}
