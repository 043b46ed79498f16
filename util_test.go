package tween

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const sequenceTolerance = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats within sequenceTolerance.
var approx = cmpopts.EquateApprox(0, sequenceTolerance)

// collect calls next n times and returns the results.
func collect[V any](n int, next func() V) []V {
	out := make([]V, n)
	for i := range out {
		out[i] = next()
	}
	return out
}
