// Package mathutil provides the transcendental functions used by the easing
// curves behind a single operations table.
//
// Two backends exist. [Std] uses the math package. [Soft] uses the
// portable kernels in this package, which round every intermediate product
// and therefore produce identical bits on every architecture. The default
// build selects Std; building with the tweensoft tag selects Soft:
//
//	go build -tags tweensoft ./...
//
// Curve code calls [Active] and never branches on which backend is in use.
package mathutil

import "math"

// Ops is a table of the math functions the curves need.
type Ops struct {
	// Name identifies the backend in diagnostics.
	Name string

	// Pow returns x**y.
	Pow func(x, y float64) float64

	// Exp2 returns 2**x.
	Exp2 func(x float64) float64

	// Sin returns the sine of the radian argument.
	Sin func(x float64) float64

	// Cos returns the cosine of the radian argument.
	Cos func(x float64) float64

	// Sqrt returns the square root. IEEE 754 requires it to be correctly
	// rounded, so both backends share math.Sqrt.
	Sqrt func(x float64) float64
}

// Pre-instantiated backends. Package-level so that lookups never allocate.
var (
	std = Ops{
		Name: "std",
		Pow:  math.Pow,
		Exp2: math.Exp2,
		Sin:  math.Sin,
		Cos:  math.Cos,
		Sqrt: math.Sqrt,
	}
	soft = Ops{
		Name: "soft",
		Pow:  Pow,
		Exp2: Exp2,
		Sin:  Sin,
		Cos:  Cos,
		Sqrt: math.Sqrt,
	}
)

// Std returns the math package backend.
func Std() *Ops { return &std }

// Soft returns the portable software backend.
func Soft() *Ops { return &soft }

// Active returns the backend selected at build time.
func Active() *Ops { return active }
