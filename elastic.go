package tween

import "github.com/tphakala/go-tween/internal/mathutil"

// Elastic curves, after Robert Penner's easing equations.
//
// All three share the same shape: an exponential envelope 2^(±10p)
// multiplied by a sine with period c.period and quarter-period phase shift
// c.shift, both precomputed from the duration. The value delta is scaled by
// the envelope first and by the sine second; with integer values each step
// truncates, and the order is part of the output. Products feeding an
// addition are rounded explicitly so they cannot be fused.

// elasticIn returns delta·2^(10(p-1))·(-sin(phase)).
func (c Curve[V, T]) elasticIn(delta V, p float64) V {
	m := mathutil.Active()
	p--

	envelope := c.ops.Scale(delta, m.Exp2(p*elasticDecayRate))
	phase := (float64(TimeToFloat64(c.duration)*p) - c.shift) * twoPi / c.period
	return c.ops.Scale(envelope, -m.Sin(phase))
}

// elasticOut returns delta·2^(-10p)·sin(phase) + delta.
//
// The extra delta is not a mistake: the envelope shapes the overshoot past
// the final value, not the approach from the initial one.
func (c Curve[V, T]) elasticOut(delta V, p float64) V {
	m := mathutil.Active()

	phase := (float64(p*TimeToFloat64(c.duration)) - c.shift) * twoPi / c.period
	scalar := float64(m.Exp2(-elasticDecayRate*p) * m.Sin(phase))
	return c.ops.Add(c.ops.Scale(delta, scalar), delta)
}

// elasticInOutHead is the ElasticIn half, q in [-1, 0), added to the
// initial value.
func (c Curve[V, T]) elasticInOutHead(delta V, q float64) V {
	m := mathutil.Active()

	envelope := c.ops.Scale(delta, m.Exp2(q*elasticDecayRate))
	phase := (float64(TimeToFloat64(c.duration)*q) - c.shift) * twoPi / c.period
	return c.ops.Scale(envelope, -elasticInOutAmplitude*m.Sin(phase))
}

// elasticInOutTail is the ElasticOut half, q in [0, 1), added to the final
// value.
func (c Curve[V, T]) elasticInOutTail(delta V, q float64) V {
	m := mathutil.Active()

	envelope := c.ops.Scale(delta, m.Exp2(-elasticDecayRate*q))
	phase := (float64(TimeToFloat64(c.duration)*q) - c.shift) * twoPi / c.period
	return c.ops.Scale(envelope, m.Sin(phase)*elasticInOutAmplitude)
}
