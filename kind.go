package tween

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-tween/ease"
)

// Kind enumerates the easing curves a [Curve] can evaluate.
type Kind int

const (
	// Linear is a straight lerp from the initial to the final value.
	Linear Kind = iota

	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuartIn
	QuartOut
	QuartInOut
	QuintIn
	QuintOut
	QuintInOut
	SineIn
	SineOut
	SineInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	CircIn
	CircOut
	CircInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut

	// ElasticIn winds up with growing oscillations before snapping to the
	// final value.
	ElasticIn

	// ElasticOut overshoots the final value and settles with decaying
	// oscillations.
	ElasticOut

	// ElasticInOut is ElasticIn for the first half and ElasticOut for the
	// second, with a longer period and half amplitude.
	ElasticInOut

	// Custom evaluates a caller-supplied [ease.Func]. See [NewCustom].
	Custom

	numKinds
)

var kindNames = [numKinds]string{
	Linear:       "linear",
	QuadIn:       "quad-in",
	QuadOut:      "quad-out",
	QuadInOut:    "quad-in-out",
	CubicIn:      "cubic-in",
	CubicOut:     "cubic-out",
	CubicInOut:   "cubic-in-out",
	QuartIn:      "quart-in",
	QuartOut:     "quart-out",
	QuartInOut:   "quart-in-out",
	QuintIn:      "quint-in",
	QuintOut:     "quint-out",
	QuintInOut:   "quint-in-out",
	SineIn:       "sine-in",
	SineOut:      "sine-out",
	SineInOut:    "sine-in-out",
	ExpoIn:       "expo-in",
	ExpoOut:      "expo-out",
	ExpoInOut:    "expo-in-out",
	CircIn:       "circ-in",
	CircOut:      "circ-out",
	CircInOut:    "circ-in-out",
	BackIn:       "back-in",
	BackOut:      "back-out",
	BackInOut:    "back-in-out",
	BounceIn:     "bounce-in",
	BounceOut:    "bounce-out",
	BounceInOut:  "bounce-in-out",
	ElasticIn:    "elastic-in",
	ElasticOut:   "elastic-out",
	ElasticInOut: "elastic-in-out",
	Custom:       "custom",
}

// easeFuncs holds the percent mapping of every kind that scales the value
// delta by a single multiplier. Elastic and Custom kinds are nil.
var easeFuncs = [numKinds]ease.Func{
	Linear:      ease.Linear,
	QuadIn:      ease.QuadIn,
	QuadOut:     ease.QuadOut,
	QuadInOut:   ease.QuadInOut,
	CubicIn:     ease.CubicIn,
	CubicOut:    ease.CubicOut,
	CubicInOut:  ease.CubicInOut,
	QuartIn:     ease.QuartIn,
	QuartOut:    ease.QuartOut,
	QuartInOut:  ease.QuartInOut,
	QuintIn:     ease.QuintIn,
	QuintOut:    ease.QuintOut,
	QuintInOut:  ease.QuintInOut,
	SineIn:      ease.SineIn,
	SineOut:     ease.SineOut,
	SineInOut:   ease.SineInOut,
	ExpoIn:      ease.ExpoIn,
	ExpoOut:     ease.ExpoOut,
	ExpoInOut:   ease.ExpoInOut,
	CircIn:      ease.CircIn,
	CircOut:     ease.CircOut,
	CircInOut:   ease.CircInOut,
	BackIn:      ease.BackIn,
	BackOut:     ease.BackOut,
	BackInOut:   ease.BackInOut,
	BounceIn:    ease.BounceIn,
	BounceOut:   ease.BounceOut,
	BounceInOut: ease.BounceInOut,
}

// String returns the kebab-case name of the kind, e.g. "elastic-in-out".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsElastic reports whether k is one of the elastic kinds.
func (k Kind) IsElastic() bool {
	return k == ElasticIn || k == ElasticOut || k == ElasticInOut
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// Kinds returns every kind that [New] accepts, in declaration order.
// Custom is excluded because it needs a function.
func Kinds() []Kind {
	kinds := make([]Kind, 0, Custom)
	for k := Linear; k < Custom; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind with the given name. Matching ignores case and
// the separators '-', '_' and ' ', so "ElasticInOut", "elastic_in_out" and
// "elastic-in-out" are equivalent.
func ParseKind(name string) (Kind, error) {
	want := normalizeName(name)
	for k := Linear; k < numKinds; k++ {
		if normalizeName(kindNames[k]) == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
