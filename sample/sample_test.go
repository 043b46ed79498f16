package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/internal/testutil"
)

// TestPercents tests evenly spaced percents, including short buffers.
func TestPercents(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Percents(make([]float64, 5)))
	assert.Equal(t, []float64{0}, Percents(make([]float64, 1)))
	assert.Empty(t, Percents(nil))

	p := Percents(make([]float64, 7))
	testutil.AssertMonotonic(t, p)
	assert.Equal(t, 1.0, p[6])
}

// TestSample tests evaluation at evenly spaced integer positions.
func TestSample(t *testing.T) {
	got := Sample(make([]float64, 5), tween.NewLinear(0.0, 8.0, 4))
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, got)
}

// TestSample_Endpoints tests exact endpoints for every kind.
func TestSample_Endpoints(t *testing.T) {
	for _, k := range tween.Kinds() {
		s := Sample(make([]float64, 33), tween.New(k, 0.1, 0.7, 1.3))
		assert.Equal(t, 0.1, s[0], "%v", k)
		assert.Equal(t, 0.7, s[32], "%v", k)
		testutil.AssertNoNaNOrInf(t, s)
	}
}

// TestSample_Looper tests that non-finite tweens are not clamped.
func TestSample_Looper(t *testing.T) {
	got := Sample(make([]int, 5), tween.MustLoop(tween.NewLinear(0, 100, 4)))
	assert.Equal(t, []int{0, 25, 50, 75, 0}, got)
}

// TestSample_Short tests empty and single-element buffers.
func TestSample_Short(t *testing.T) {
	c := tween.NewLinear(3.0, 9.0, 2.0)
	assert.Empty(t, Sample(nil, c))
	assert.Equal(t, []float64{3}, Sample(make([]float64, 1), c))
}

// TestSteps tests fixed-step sampling past the end.
func TestSteps(t *testing.T) {
	got := Steps(make([]int, 5), tween.NewLinear(0, 100, 10), 3)
	assert.Equal(t, []int{30, 60, 90, 100, 100}, got)
}

// TestLinearBatch tests the SIMD linear path against the curve.
func TestLinearBatch(t *testing.T) {
	percents := Percents(make([]float64, 9))
	dst := make([]float64, 16)

	got := LinearBatch(dst, percents, 10, 20)
	require.Len(t, got, 9)

	c := tween.NewLinear(10.0, 20.0, 1.0)
	for i, p := range percents {
		assert.InDelta(t, c.Run(p), got[i], testutil.DefaultTolerance)
	}
	assert.Equal(t, 10.0, got[0])
	assert.Equal(t, 20.0, got[8])
}

// TestLinearBatch_Float32 tests the float32 kernel.
func TestLinearBatch_Float32(t *testing.T) {
	percents := []float32{0, 0.5, 1, 1.5}
	got := LinearBatch(make([]float32, 4), percents, -2, 2)
	assert.Equal(t, []float32{-2, 0, 2, 4}, got)
}

// TestLinearBatch_ExactEnd tests the endpoint guarantee when initial + delta drifts.
func TestLinearBatch_ExactEnd(t *testing.T) {
	const initial, final = 1.0, 1e-17
	got := LinearBatch(make([]float64, 2), []float64{0, 1}, initial, final)
	testutil.AssertExact(t, initial, got[0])
	testutil.AssertExact(t, final, got[1])
}

// TestAnalyze_Linear tests the statistics of a plain ramp.
func TestAnalyze_Linear(t *testing.T) {
	p := Of(tween.NewLinear(0.0, 100.0, 1.0), 101)

	assert.Equal(t, 0.0, p.Min)
	assert.Equal(t, 100.0, p.Max)
	assert.Equal(t, 0, p.MinIndex)
	assert.Equal(t, 100, p.MaxIndex)
	assert.InDelta(t, 50.0, p.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(3350), p.RMS, 1e-9)
	assert.Zero(t, p.Overshoot)
	assert.Zero(t, p.Undershoot)
}

// TestAnalyze_Elastic tests overshoot and undershoot detection.
func TestAnalyze_Elastic(t *testing.T) {
	out := Of(tween.NewElasticOut(0.0, 1.0, 1.0), 201)
	assert.InDelta(t, 0.373, out.Overshoot, 0.002)
	assert.Equal(t, 27, out.MaxIndex)
	assert.Zero(t, out.Undershoot)

	in := Of(tween.NewElasticIn(0.0, 1.0, 1.0), 201)
	assert.InDelta(t, 0.373, in.Undershoot, 0.002)
	assert.Zero(t, in.Overshoot)

	// falling tweens measure against the smaller endpoint
	down := Of(tween.NewElasticOut(1.0, 0.0, 1.0), 201)
	assert.InDelta(t, 0.373, down.Undershoot, 0.002)
}

// TestAnalyze_Empty tests the zero profile.
func TestAnalyze_Empty(t *testing.T) {
	assert.Equal(t, Profile{}, Analyze(nil, 0, 1))
	assert.Equal(t, Profile{}, Of(tween.NewLinear(0.0, 1.0, 1.0), 0))
}

func BenchmarkLinearBatch(b *testing.B) {
	percents := Percents(make([]float64, 1024))
	dst := make([]float64, 1024)
	for b.Loop() {
		LinearBatch(dst, percents, 0, 1)
	}
}

func BenchmarkSample_ElasticOut(b *testing.B) {
	c := tween.NewElasticOut(0.0, 1.0, 1.0)
	dst := make([]float64, 1024)
	for b.Loop() {
		Sample(dst, c)
	}
}
