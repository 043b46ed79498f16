package tween

import (
	"fmt"

	"github.com/tphakala/go-tween/ease"
)

// Curve is a leaf [Tween]: one easing curve between two values.
//
// A Curve is immutable. Everything derived from the construction
// parameters, such as the value delta and the elastic period, is computed
// once by the constructor; evaluation is a pure function of the elapsed
// time and does not allocate.
//
// Run returns exactly the initial value when the percent of the duration is
// 0 and exactly the final value when it is 1, for every kind, so that
// rounding never corrupts the first or the last frame.
type Curve[V any, T Time] struct {
	kind     Kind
	ops      Arithmetic[V]
	ease     ease.Func
	initial  V
	final    V
	delta    V
	duration T

	// Elastic kinds only
	period float64
	shift  float64
}

// New returns a curve of the given kind over a built-in numeric value type.
//
// New panics if kind is [Custom] or not a known kind; kinds are normally
// compile-time constants, and names from user input go through [ParseKind]
// first. Use [NewCustom] for a caller-supplied easing function.
func New[V Number, T Time](kind Kind, initial, final V, duration T) Curve[V, T] {
	return NewWith[V, T](Scalar[V]{}, kind, initial, final, duration)
}

// NewWith is like [New] for any value type with the given arithmetic.
//
//	c := tween.NewWith(tween.Methods[vec.Vec2]{}, tween.BackOut, from, to, 0.5)
func NewWith[V any, T Time](ops Arithmetic[V], kind Kind, initial, final V, duration T) Curve[V, T] {
	if !kind.valid() || kind == Custom {
		panic(fmt.Errorf("%w: %v", ErrUnknownKind, kind))
	}
	c := Curve[V, T]{
		kind:     kind,
		ops:      ops,
		ease:     easeFuncs[kind],
		initial:  initial,
		final:    final,
		delta:    ops.Delta(final, initial),
		duration: duration,
	}
	switch kind {
	case ElasticIn, ElasticOut:
		c.period = float64(TimeToFloat64(duration) * elasticPeriod)
		c.shift = float64(c.period * elasticPhaseShift)
	case ElasticInOut:
		c.period = float64(TimeToFloat64(duration) * elasticInOutPeriod)
		c.shift = float64(c.period * elasticPhaseShift)
	}
	return c
}

// NewCustom returns a curve driven by fn over a built-in numeric value type.
// The value delta is scaled by fn(percent).
func NewCustom[V Number, T Time](fn ease.Func, initial, final V, duration T) Curve[V, T] {
	return NewCustomWith[V, T](Scalar[V]{}, fn, initial, final, duration)
}

// NewCustomWith is like [NewCustom] for any value type with the given arithmetic.
func NewCustomWith[V any, T Time](ops Arithmetic[V], fn ease.Func, initial, final V, duration T) Curve[V, T] {
	if fn == nil {
		panic(fmt.Errorf("%w: nil easing function", ErrInvalidConfig))
	}
	return Curve[V, T]{
		kind:     Custom,
		ops:      ops,
		ease:     fn,
		initial:  initial,
		final:    final,
		delta:    ops.Delta(final, initial),
		duration: duration,
	}
}

// NewLinear returns a [Linear] curve.
func NewLinear[V Number, T Time](initial, final V, duration T) Curve[V, T] {
	return New(Linear, initial, final, duration)
}

// NewElasticIn returns an [ElasticIn] curve.
func NewElasticIn[V Number, T Time](initial, final V, duration T) Curve[V, T] {
	return New(ElasticIn, initial, final, duration)
}

// NewElasticOut returns an [ElasticOut] curve.
func NewElasticOut[V Number, T Time](initial, final V, duration T) Curve[V, T] {
	return New(ElasticOut, initial, final, duration)
}

// NewElasticInOut returns an [ElasticInOut] curve.
func NewElasticInOut[V Number, T Time](initial, final V, duration T) Curve[V, T] {
	return New(ElasticInOut, initial, final, duration)
}

// Kind returns the curve kind.
func (c Curve[V, T]) Kind() Kind { return c.kind }

// InitialValue returns the value at t = 0.
func (c Curve[V, T]) InitialValue() V { return c.initial }

// FinalValue returns the value at t = Duration().
func (c Curve[V, T]) FinalValue() V { return c.final }

// Duration returns the curve duration.
func (c Curve[V, T]) Duration() T { return c.duration }

// IsFinite reports true: curves are designed for [0, Duration()].
func (c Curve[V, T]) IsFinite() bool { return true }

// Run evaluates the curve at the absolute time t. t is not clamped.
func (c Curve[V, T]) Run(t T) V {
	p := Percent(c.duration, t)
	switch p {
	case 0:
		return c.initial
	case 1:
		return c.final
	}

	// The second half of ElasticInOut is anchored at the final value.
	if c.kind == ElasticInOut && p*inOutScale >= 1 {
		return c.ops.Add(c.elasticInOutTail(c.delta, float64(p*inOutScale)-1), c.final)
	}
	return c.ops.Add(c.increment(c.delta, p), c.initial)
}

// Increment is the delta formulation of the curve: it returns the amount to
// add to the initial value at the given percent for the given value delta.
//
// Increment(delta, 0) is the zero value and Increment(delta, 1) is delta,
// exactly. The curve's own delta is ignored, which lets callers reuse one
// curve's shape for another range.
func (c Curve[V, T]) Increment(delta V, percent float64) V {
	switch percent {
	case 0:
		var zero V
		return zero
	case 1:
		return delta
	}

	if c.kind == ElasticInOut && percent*inOutScale >= 1 {
		return c.ops.Add(c.elasticInOutTail(delta, float64(percent*inOutScale)-1), delta)
	}
	return c.increment(delta, percent)
}

// increment evaluates the curve body, without boundary handling.
func (c Curve[V, T]) increment(delta V, p float64) V {
	switch c.kind {
	case ElasticIn:
		return c.elasticIn(delta, p)
	case ElasticOut:
		return c.elasticOut(delta, p)
	case ElasticInOut:
		return c.elasticInOutHead(delta, float64(p*inOutScale)-1)
	default:
		return c.ops.Scale(delta, c.ease(p))
	}
}
