// Package sample evaluates tweens in bulk: over evenly spaced positions into
// caller buffers, through SIMD kernels for linear ramps, and into summary
// statistics for plots and tests.
package sample

import (
	"gonum.org/v1/gonum/floats"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/internal/simdops"
)

// Float is the constraint for the SIMD batch functions.
type Float = simdops.Float

// Percents fills dst with len(dst) evenly spaced percents from 0 to 1
// inclusive and returns it. A single element is 0.
func Percents(dst []float64) []float64 {
	switch len(dst) {
	case 0:
		return dst
	case 1:
		dst[0] = 0
		return dst
	}
	floats.Span(dst, 0, 1)
	dst[len(dst)-1] = 1
	return dst
}

// Sample evaluates tw at len(dst) evenly spaced positions across
// [0, Duration()] and returns dst.
//
// Positions go through a [tween.Tweener], so finite tweens clamp exactly
// like a driver would. With two or more elements dst[0] is the value at
// t = 0 and dst[len(dst)-1] the value at t = Duration(). For integer time
// types the positions in between are truncated.
func Sample[V any, T tween.Time](dst []V, tw tween.Tween[V, T]) []V {
	if len(dst) == 0 {
		return dst
	}

	driver := tween.NewTweener(tw)
	d := tw.Duration()
	last := len(dst) - 1
	for i := range dst {
		switch i {
		case 0:
			var zero T
			dst[i] = driver.Move(zero)
		case last:
			dst[i] = driver.Move(d)
		default:
			dst[i] = driver.Move(tween.ScaleTime(d, float64(i)/float64(last)))
		}
	}
	return dst
}

// Steps fills dst with successive fixed steps of tw, starting one step
// after t = 0, and returns dst. Finite tweens hold their final value once
// they finish.
func Steps[V any, T tween.Time](dst []V, tw tween.Tween[V, T], step T) []V {
	driver := tween.NewFixedTweener(tw, step)
	for i := range dst {
		dst[i] = driver.Next()
	}
	return dst
}

// LinearBatch evaluates a linear curve from initial to final at every
// percent and writes the values to dst, which must be at least as long as
// percents. It returns dst[:len(percents)].
//
// The delta is applied with one SIMD scale over the whole batch. Percents
// of exactly 0 and 1 return exactly initial and final, like a [tween.Curve].
func LinearBatch[F Float](dst, percents []F, initial, final F) []F {
	dst = dst[:len(percents)]
	simdops.For[F]().Scale(dst, percents, final-initial)
	for i, p := range percents {
		switch p {
		case 0:
			dst[i] = initial
		case 1:
			dst[i] = final
		default:
			dst[i] += initial
		}
	}
	return dst
}
