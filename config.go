package tween

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how a configured tween behaves past its duration.
type Mode int

const (
	// ModeOnce plays the curve once and holds the final value.
	ModeOnce Mode = iota

	// ModeLoop restarts the curve every duration.
	ModeLoop

	// ModeOscillate plays the curve forward, then backward, forever.
	ModeOscillate

	// ModeExtrapolate keeps evaluating the curve formula past its endpoints.
	ModeExtrapolate
)

var modeNames = [...]string{
	ModeOnce:        "once",
	ModeLoop:        "loop",
	ModeOscillate:   "oscillate",
	ModeExtrapolate: "extrapolate",
}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode with the given name, ignoring case.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, name)
}

// Config describes a float64 tween declaratively, for command-line tools
// and configuration files.
type Config struct {
	// Kind is the easing curve. Custom is not allowed.
	Kind Kind

	// Initial is the value at t = 0.
	Initial float64

	// Final is the value at t = Duration.
	Final float64

	// Duration is the length of one pass over the curve, in any unit.
	// Must be positive for ModeLoop and ModeOscillate and non-negative
	// otherwise.
	Duration float64

	// Mode selects the behavior past Duration.
	Mode Mode
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !c.Kind.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownKind, c.Kind)
	}
	if c.Kind == Custom {
		return fmt.Errorf("%w: custom curves cannot be configured, use NewCustom", ErrInvalidConfig)
	}

	if math.IsNaN(c.Initial) || math.IsInf(c.Initial, 0) ||
		math.IsNaN(c.Final) || math.IsInf(c.Final, 0) {
		return fmt.Errorf("%w: values must be finite", ErrInvalidConfig)
	}

	if math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) || c.Duration < 0 {
		return fmt.Errorf("%w: duration must be finite and non-negative", ErrInvalidConfig)
	}

	switch c.Mode {
	case ModeOnce, ModeExtrapolate:
	case ModeLoop, ModeOscillate:
		if c.Duration == 0 {
			return fmt.Errorf("%w: %v needs a positive duration", ErrZeroDuration, c.Mode)
		}
	default:
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidConfig, c.Mode)
	}

	return nil
}

// Build validates the configuration and returns the described tween.
func Build(c *Config) (Tween[float64, float64], error) {
	if c == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	curve := New(c.Kind, c.Initial, c.Final, c.Duration)

	var (
		tw  Tween[float64, float64] = curve
		err error
	)
	switch c.Mode {
	case ModeLoop:
		tw, err = NewLooper(tw)
	case ModeOscillate:
		tw, err = NewOscillator(tw)
	case ModeExtrapolate:
		tw = Extrapolate(tw)
	}
	if err != nil {
		return nil, err
	}
	return tw, nil
}
