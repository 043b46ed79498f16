// Package simdops exposes the SIMD kernels of github.com/tphakala/simd
// behind one generic table, so batch sampling and audio envelopes are
// written once for float32 and float64.
//
// Calls go through function pointers. With profile-guided optimization the
// hot call sites are devirtualized.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the element type of the kernels.
type Float interface {
	float32 | float64
}

// Ops holds the kernels for one element type.
type Ops[F Float] struct {
	// DotProduct returns the sum of a[i]*b[i]; a and b have equal length.
	DotProduct func(a, b []F) F

	// Interleave2 writes a[0], b[0], a[1], b[1], ... into dst.
	Interleave2 func(dst, a, b []F)

	// Sum returns the sum of a.
	Sum func(a []F) F

	// Scale sets dst[i] = a[i] * s. dst may alias a.
	Scale func(dst, a []F, s F)
}

var (
	ops32 = &Ops[float32]{
		DotProduct:  f32.DotProduct,
		Interleave2: f32.Interleave2,
		Sum:         f32.Sum,
		Scale:       f32.Scale,
	}
	ops64 = &Ops[float64]{
		DotProduct:  f64.DotProduct,
		Interleave2: f64.Interleave2,
		Sum:         f64.Sum,
		Scale:       f64.Scale,
	}
)

// For returns the shared table for F. Resolve it once outside loops.
func For[F Float]() *Ops[F] {
	var table any
	var zero F
	switch any(zero).(type) {
	case float32:
		table = ops32
	case float64:
		table = ops64
	}

	ops, ok := table.(*Ops[F])
	if !ok {
		panic("simdops: no kernels for element type")
	}
	return ops
}
