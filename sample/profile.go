package sample

import (
	"math"

	"gonum.org/v1/gonum/floats"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/internal/simdops"
)

// Profile summarizes the values a tween passes through.
type Profile struct {
	Min      float64
	Max      float64
	MinIndex int
	MaxIndex int
	Mean     float64
	RMS      float64

	// Overshoot is how far Max exceeds the larger endpoint, or 0.
	Overshoot float64

	// Undershoot is how far Min falls below the smaller endpoint, or 0.
	Undershoot float64
}

// Analyze computes the profile of s for a tween between initial and final.
// An empty slice yields the zero Profile.
func Analyze(s []float64, initial, final float64) Profile {
	if len(s) == 0 {
		return Profile{}
	}

	ops := simdops.For[float64]()
	n := float64(len(s))

	p := Profile{
		MinIndex: floats.MinIdx(s),
		MaxIndex: floats.MaxIdx(s),
		Mean:     ops.Sum(s) / n,
		RMS:      math.Sqrt(ops.DotProduct(s, s) / n),
	}
	p.Min = s[p.MinIndex]
	p.Max = s[p.MaxIndex]

	if hi := max(initial, final); p.Max > hi {
		p.Overshoot = p.Max - hi
	}
	if lo := min(initial, final); p.Min < lo {
		p.Undershoot = lo - p.Min
	}
	return p
}

// Of samples tw at n evenly spaced positions and analyzes the result.
func Of[T tween.Time](tw tween.Tween[float64, T], n int) Profile {
	if n <= 0 {
		return Profile{}
	}
	s := Sample(make([]float64, n), tw)
	return Analyze(s, tw.InitialValue(), tw.FinalValue())
}
