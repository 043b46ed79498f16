package tween

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkScaleContract verifies Scale(x, 1) == x and Scale(x, 0) == 0.
func checkScaleContract[N Number](t *testing.T, values ...N) {
	t.Helper()
	var ops Scalar[N]
	for _, v := range values {
		assert.Equal(t, v, ops.Scale(v, 1), "Scale(%v, 1)", v)
		assert.Equal(t, N(0), ops.Scale(v, 0), "Scale(%v, 0)", v)
	}
}

// TestScalar_ScaleContract tests the identity and zero properties for every width.
func TestScalar_ScaleContract(t *testing.T) {
	checkScaleContract[int](t, 0, 1, -7, 1<<40)
	checkScaleContract[int8](t, 0, 1, -128, 127)
	checkScaleContract[int16](t, 0, 1, -32768, 32767)
	checkScaleContract[int32](t, 0, 1, math.MinInt32, math.MaxInt32)
	checkScaleContract[int64](t, 0, 1, -1<<52, 1<<52)
	checkScaleContract[uint](t, 0, 1, 1<<40)
	checkScaleContract[uint8](t, 0, 1, 255)
	checkScaleContract[uint16](t, 0, 1, 65535)
	checkScaleContract[uint32](t, 0, 1, math.MaxUint32)
	checkScaleContract[uint64](t, 0, 1, 1<<52)
	checkScaleContract[float32](t, 0, 1, -3.25, math.MaxFloat32)
	checkScaleContract[float64](t, 0, 1, -3.25, math.MaxFloat64, math.SmallestNonzeroFloat64)
}

// TestScalar_IntegerTruncation tests that integer scaling truncates toward zero.
func TestScalar_IntegerTruncation(t *testing.T) {
	var ops Scalar[int]
	assert.Equal(t, 3, ops.Scale(7, 0.5))
	assert.Equal(t, -3, ops.Scale(-7, 0.5))
	assert.Equal(t, 0, ops.Scale(1, 0.999))
	assert.Equal(t, 14, ops.Scale(7, 2))
}

// TestScalar_AddDelta tests the argument order of Delta.
func TestScalar_AddDelta(t *testing.T) {
	var ops Scalar[float64]
	assert.Equal(t, 7.5, ops.Add(2.5, 5))
	assert.Equal(t, 2.5, ops.Delta(5, 2.5), "Delta(dest, start) = dest - start")
}

type point struct{ x, y float64 }

func (p point) Add(o point) point     { return point{p.x + o.x, p.y + o.y} }
func (p point) Sub(o point) point     { return point{p.x - o.x, p.y - o.y} }
func (p point) Scale(f float64) point { return point{p.x * f, p.y * f} }
func (p point) near(o point, eps float64) bool {
	return math.Abs(p.x-o.x) <= eps && math.Abs(p.y-o.y) <= eps
}

// TestMethods_Delegates tests that Methods forwards to the value's own methods.
func TestMethods_Delegates(t *testing.T) {
	var ops Methods[point]
	a, b := point{1, 2}, point{4, 6}
	assert.Equal(t, point{5, 8}, ops.Add(a, b))
	assert.Equal(t, point{3, 4}, ops.Delta(b, a))
	assert.Equal(t, point{2, 4}, ops.Scale(a, 2))
	assert.Equal(t, a, ops.Scale(a, 1))
	assert.Equal(t, point{}, ops.Scale(a, 0))
}

// TestNewWith_CustomValue tests tweening a struct value through Methods.
func TestNewWith_CustomValue(t *testing.T) {
	from, to := point{0, 10}, point{100, -10}
	c := NewWith[point, float64](Methods[point]{}, Linear, from, to, 2)

	assert.Equal(t, from, c.Run(0))
	assert.Equal(t, to, c.Run(2))
	assert.True(t, c.Run(1).near(point{50, 0}, 1e-12), "midpoint is %v", c.Run(1))
}
