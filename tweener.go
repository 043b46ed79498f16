package tween

import "iter"

// Tweener drives a [Tween] with absolute time.
//
// For finite tweens every position is clamped to [0, Duration()] before
// evaluation, so callers may pass any time. The clamped position becomes the
// cursor. The cursor of a [Periodic] tween is wrapped into [0, Period()).
// A Tweener is not safe for concurrent use.
type Tweener[V any, T Time] struct {
	tween   Tween[V, T]
	current T
}

// NewTweener returns a driver positioned at t = 0.
func NewTweener[V any, T Time](tw Tween[V, T]) *Tweener[V, T] {
	return &Tweener[V, T]{tween: tw}
}

// Move sets the cursor to position and returns the value there.
func (tw *Tweener[V, T]) Move(position T) V {
	if tw.tween.IsFinite() {
		position = clampTime(position, tw.tween.Duration())
	} else if p, ok := tw.tween.(Periodic[T]); ok {
		position = Wrap(position, p.Period())
	}
	tw.current = position
	return tw.tween.Run(position)
}

// Value returns the value at the cursor without moving it.
func (tw *Tweener[V, T]) Value() V {
	return tw.tween.Run(tw.current)
}

// IsFinished reports whether a finite tween has reached its duration.
// Tweens that are not finite never finish.
func (tw *Tweener[V, T]) IsFinished() bool {
	return tw.tween.IsFinite() && IsComplete(tw.current, tw.tween.Duration())
}

// Current returns the cursor.
func (tw *Tweener[V, T]) Current() T { return tw.current }

// Progress returns the cursor as a percent of the duration.
func (tw *Tweener[V, T]) Progress() float64 {
	return Percent(tw.tween.Duration(), tw.current)
}

// Tween returns the driven tween.
func (tw *Tweener[V, T]) Tween() Tween[V, T] { return tw.tween }

// Reset moves the cursor back to t = 0.
func (tw *Tweener[V, T]) Reset() {
	var zero T
	tw.current = zero
}

// DeltaTweener drives a [Tween] with time deltas, accumulating them into an
// absolute cursor.
//
// For finite tweens the cursor saturates at the duration, so a delta much
// larger than the remaining time (a stalled frame, say) lands exactly on the
// final value instead of overshooting or overflowing an integer clock. The
// cursor of a [Periodic] tween wraps at the period, so a looping tween can
// run forever on a narrow clock.
type DeltaTweener[V any, T Time] struct {
	Tweener[V, T]
}

// NewDeltaTweener returns a delta driver positioned at t = 0.
func NewDeltaTweener[V any, T Time](tw Tween[V, T]) *DeltaTweener[V, T] {
	return &DeltaTweener[V, T]{Tweener: Tweener[V, T]{tween: tw}}
}

// Step advances the cursor by delta and returns the value there.
func (d *DeltaTweener[V, T]) Step(delta T) V {
	// The cursor of a finite tween is always within [0, Duration()], so the
	// remaining time never underflows.
	if d.tween.IsFinite() && delta >= SubTime(d.tween.Duration(), d.current) {
		return d.Move(d.tween.Duration())
	}
	if p, ok := d.tween.(Periodic[T]); ok {
		period := p.Period()
		return d.Move(addWrapped(Wrap(d.current, period), Wrap(delta, period), period))
	}
	return d.Move(AddTime(d.current, delta))
}

// FixedTweener advances a [Tween] by the same step on every call, such as
// one frame or one audio block.
type FixedTweener[V any, T Time] struct {
	DeltaTweener[V, T]
	step T
}

// NewFixedTweener returns a fixed-step driver positioned at t = 0. A
// negative step runs the tween backwards from its cursor.
func NewFixedTweener[V any, T Time](tw Tween[V, T], step T) *FixedTweener[V, T] {
	return &FixedTweener[V, T]{
		DeltaTweener: DeltaTweener[V, T]{Tweener: Tweener[V, T]{tween: tw}},
		step:         step,
	}
}

// Next advances by one step and returns the value there.
func (f *FixedTweener[V, T]) Next() V {
	return f.Step(f.step)
}

// StepSize returns the fixed step.
func (f *FixedTweener[V, T]) StepSize() T { return f.step }

// All returns an iterator over the values produced by successive calls to
// Next. For finite tweens it stops after the step that finishes the tween;
// for the others it runs until the consumer stops. A finite tween with a
// step that is not positive never finishes either.
func (f *FixedTweener[V, T]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for !f.IsFinished() {
			if !yield(f.Next()) {
				return
			}
		}
	}
}
