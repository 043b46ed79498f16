package tween

import "fmt"

// Periodic is implemented by tweens that repeat every Period(). Drivers wrap
// the cursor of a Periodic tween into [0, Period()).
type Periodic[T Time] interface {
	Period() T
}

// Looper repeats a finite tween forever, restarting at the initial value
// every Duration().
//
// A Looper is itself a [Tween] that is not finite, so drivers never clamp it
// and never report it finished.
type Looper[V any, T Time] struct {
	inner Tween[V, T]
}

// NewLooper wraps tw in a [Looper].
//
// It returns [ErrNotFinite] if tw is not finite, since there would be no
// cycle boundary to restart at, and [ErrZeroDuration] if tw has no duration.
func NewLooper[V any, T Time](tw Tween[V, T]) (Looper[V, T], error) {
	if err := checkRepeatable(tw); err != nil {
		return Looper[V, T]{}, fmt.Errorf("loop: %w", err)
	}
	return Looper[V, T]{inner: tw}, nil
}

// MustLoop is like [NewLooper] but panics on error.
func MustLoop[V any, T Time](tw Tween[V, T]) Looper[V, T] {
	l, err := NewLooper(tw)
	if err != nil {
		panic(err)
	}
	return l
}

// Run evaluates the inner tween at t wrapped into [0, Duration()).
func (l Looper[V, T]) Run(t T) V {
	return l.inner.Run(Wrap(t, l.inner.Duration()))
}

// InitialValue returns the inner initial value.
func (l Looper[V, T]) InitialValue() V { return l.inner.InitialValue() }

// FinalValue returns the inner final value.
func (l Looper[V, T]) FinalValue() V { return l.inner.FinalValue() }

// Duration returns the length of one cycle.
func (l Looper[V, T]) Duration() T { return l.inner.Duration() }

// Period returns the length of one cycle.
func (l Looper[V, T]) Period() T { return l.inner.Duration() }

// IsFinite reports false.
func (l Looper[V, T]) IsFinite() bool { return false }

// Inner returns the wrapped tween.
func (l Looper[V, T]) Inner() Tween[V, T] { return l.inner }

// Oscillator plays a finite tween forward, then backward, forever.
//
// Even cycles run from the initial to the final value and odd cycles from
// the final back to the initial value, by evaluating the inner tween on a
// mirrored time axis. Like [Looper] it is not finite.
type Oscillator[V any, T Time] struct {
	inner Tween[V, T]
}

// NewOscillator wraps tw in an [Oscillator]. It fails like [NewLooper].
func NewOscillator[V any, T Time](tw Tween[V, T]) (Oscillator[V, T], error) {
	if err := checkRepeatable(tw); err != nil {
		return Oscillator[V, T]{}, fmt.Errorf("oscillate: %w", err)
	}
	return Oscillator[V, T]{inner: tw}, nil
}

// MustOscillate is like [NewOscillator] but panics on error.
func MustOscillate[V any, T Time](tw Tween[V, T]) Oscillator[V, T] {
	o, err := NewOscillator(tw)
	if err != nil {
		panic(err)
	}
	return o
}

// Run evaluates the inner tween at t folded into [0, Duration()].
func (o Oscillator[V, T]) Run(t T) V {
	d := o.inner.Duration()
	period := o.Period()

	cycle := Wrap(t, period)
	if cycle < d {
		return o.inner.Run(cycle)
	}
	return o.inner.Run(SubTime(period, cycle))
}

// InitialValue returns the inner initial value.
func (o Oscillator[V, T]) InitialValue() V { return o.inner.InitialValue() }

// FinalValue returns the inner final value.
func (o Oscillator[V, T]) FinalValue() V { return o.inner.FinalValue() }

// Duration returns the length of one direction; a full round trip takes
// twice as long.
func (o Oscillator[V, T]) Duration() T { return o.inner.Duration() }

// Period returns the length of a round trip, twice Duration(). On integer
// clocks twice the inner duration must fit in T.
func (o Oscillator[V, T]) Period() T {
	d := o.inner.Duration()
	return AddTime(d, d)
}

// IsFinite reports false.
func (o Oscillator[V, T]) IsFinite() bool { return false }

// Inner returns the wrapped tween.
func (o Oscillator[V, T]) Inner() Tween[V, T] { return o.inner }

// Extrapolator lets a tween run outside [0, Duration()].
//
// Drivers clamp finite tweens; wrapping one in an Extrapolator removes the
// clamp and passes time straight to the curve. Only curves whose formulas
// stay well behaved past their endpoints, such as Linear, give useful
// results. No validation is performed.
type Extrapolator[V any, T Time] struct {
	inner Tween[V, T]
}

// Extrapolate wraps tw in an [Extrapolator].
func Extrapolate[V any, T Time](tw Tween[V, T]) Extrapolator[V, T] {
	return Extrapolator[V, T]{inner: tw}
}

// Run evaluates the inner tween at t.
func (e Extrapolator[V, T]) Run(t T) V { return e.inner.Run(t) }

// InitialValue returns the inner initial value.
func (e Extrapolator[V, T]) InitialValue() V { return e.inner.InitialValue() }

// FinalValue returns the inner final value.
func (e Extrapolator[V, T]) FinalValue() V { return e.inner.FinalValue() }

// Duration returns the inner duration.
func (e Extrapolator[V, T]) Duration() T { return e.inner.Duration() }

// IsFinite reports false.
func (e Extrapolator[V, T]) IsFinite() bool { return false }

// Inner returns the wrapped tween.
func (e Extrapolator[V, T]) Inner() Tween[V, T] { return e.inner }

func checkRepeatable[V any, T Time](tw Tween[V, T]) error {
	if !tw.IsFinite() {
		return ErrNotFinite
	}
	if tw.Duration() == 0 {
		return ErrZeroDuration
	}
	return nil
}
