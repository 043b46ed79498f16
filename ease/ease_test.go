package ease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-tween/internal/testutil"
)

var catalog = []struct {
	name      string
	fn        Func
	monotonic bool
}{
	{"Linear", Linear, true},
	{"QuadIn", QuadIn, true},
	{"QuadOut", QuadOut, true},
	{"QuadInOut", QuadInOut, true},
	{"CubicIn", CubicIn, true},
	{"CubicOut", CubicOut, true},
	{"CubicInOut", CubicInOut, true},
	{"QuartIn", QuartIn, true},
	{"QuartOut", QuartOut, true},
	{"QuartInOut", QuartInOut, true},
	{"QuintIn", QuintIn, true},
	{"QuintOut", QuintOut, true},
	{"QuintInOut", QuintInOut, true},
	{"SineIn", SineIn, true},
	{"SineOut", SineOut, true},
	{"SineInOut", SineInOut, true},
	{"ExpoIn", ExpoIn, true},
	{"ExpoOut", ExpoOut, true},
	{"ExpoInOut", ExpoInOut, true},
	{"CircIn", CircIn, true},
	{"CircOut", CircOut, true},
	{"CircInOut", CircInOut, true},
	{"BackIn", BackIn, false},
	{"BackOut", BackOut, false},
	{"BackInOut", BackInOut, false},
	{"BounceIn", BounceIn, false},
	{"BounceOut", BounceOut, false},
	{"BounceInOut", BounceInOut, false},
}

// TestCatalog_Endpoints tests that every function maps 0→0 and 1→1.
func TestCatalog_Endpoints(t *testing.T) {
	for _, tt := range catalog {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0.0, tt.fn(0), 1e-9, "f(0)")
			assert.InDelta(t, 1.0, tt.fn(1), 1e-9, "f(1)")
		})
	}
}

// TestCatalog_InOutMidpoint tests that the symmetric in-out curves pass through 0.5.
func TestCatalog_InOutMidpoint(t *testing.T) {
	for _, tt := range catalog {
		if len(tt.name) < 5 || tt.name[len(tt.name)-5:] != "InOut" {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0.5, tt.fn(0.5), 1e-9)
		})
	}
}

// TestCatalog_Monotonic tests that non-overshooting curves never decrease on [0, 1].
func TestCatalog_Monotonic(t *testing.T) {
	const steps = 200
	for _, tt := range catalog {
		if !tt.monotonic {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			samples := make([]float64, steps+1)
			for i := range samples {
				samples[i] = tt.fn(float64(i) / steps)
			}
			testutil.AssertNoNaNOrInf(t, samples)
			// Tiny rounding wobble is tolerated by comparing against a shifted copy.
			for i := 1; i < len(samples); i++ {
				assert.GreaterOrEqual(t, samples[i]+1e-12, samples[i-1], "%s at step %d", tt.name, i)
			}
		})
	}
}

// TestBack_Overshoot tests the characteristic pull-back and overshoot.
func TestBack_Overshoot(t *testing.T) {
	assert.Less(t, BackIn(0.2), 0.0, "BackIn should dip below zero")
	assert.Greater(t, BackOut(0.8), 1.0, "BackOut should overshoot one")
}

// TestBounce_StaysInUnitRange tests that bounces never leave [0, 1].
func TestBounce_StaysInUnitRange(t *testing.T) {
	samples := make([]float64, 0, 101)
	for i := 0; i <= 100; i++ {
		samples = append(samples, BounceOut(float64(i)/100))
	}
	testutil.AssertAllInRange(t, samples, 0, 1+1e-12)
}

// TestLinear_Extrapolates tests pass-through outside [0, 1].
func TestLinear_Extrapolates(t *testing.T) {
	assert.Equal(t, 1.5, Linear(1.5))
	assert.Equal(t, -0.25, Linear(-0.25))
	assert.InDelta(t, 2.25, QuadIn(1.5), 1e-12)
}

func BenchmarkBounceOut(b *testing.B) {
	for b.Loop() {
		_ = BounceOut(0.7)
	}
}
