package tween

import "errors"

// Tween is the evaluator shared by leaf curves and wrappers.
//
// Run maps an absolute position along the duration to a value. It never
// clamps; clamping is the job of the driver and applies only to finite
// tweens.
type Tween[V any, T Time] interface {
	// Run evaluates the tween at time t.
	Run(t T) V

	// InitialValue returns the value the tween starts at.
	InitialValue() V

	// FinalValue returns the value the tween ends at.
	FinalValue() V

	// Duration returns the length of one pass over the curve.
	Duration() T

	// IsFinite reports whether output is only meaningful within
	// [0, Duration()]. Drivers clamp finite tweens and never clamp the
	// others.
	IsFinite() bool
}

// Common errors returned by constructors and configuration.
var (
	// ErrNotFinite indicates a wrapper that needs a finite tween was given
	// one that is already unbounded.
	ErrNotFinite = errors.New("tween is not finite")

	// ErrZeroDuration indicates a repeating wrapper was given a tween
	// with no duration to repeat.
	ErrZeroDuration = errors.New("tween has zero duration")

	// ErrUnknownKind indicates a curve kind that is not in the catalog.
	ErrUnknownKind = errors.New("unknown curve kind")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid tween configuration")
)
