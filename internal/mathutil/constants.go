package mathutil

// Cody-Waite split of π/4 for argument reduction.
// pi4A + pi4B + pi4C ≈ π/4 with pi4A and pi4B holding few significant bits,
// so y*pi4A and y*pi4B are exact for moderate y.
const (
	pi4A = 7.85398125648498535156e-1
	pi4B = 3.77489470793079817668e-8
	pi4C = 2.69515142907905952645e-15

	fourOverPi = 1.27323954473516268615 // 4/π
)

// Reduction limit. Above this magnitude the three-part split loses precision
// and the kernels defer to the math package.
const reduceThreshold = 1 << 29

// Minimax coefficients for sin(z) on [-π/4, π/4], highest order first.
// sin(z) ≈ z + z³·P(z²)
const (
	sinCoeff0 = 1.58962301576546568060e-10
	sinCoeff1 = -2.50507477628578072866e-8
	sinCoeff2 = 2.75573136213857245213e-6
	sinCoeff3 = -1.98412698295895385996e-4
	sinCoeff4 = 8.33333333332211858878e-3
	sinCoeff5 = -1.66666666666666307295e-1
)

// Minimax coefficients for cos(z) on [-π/4, π/4], highest order first.
// cos(z) ≈ 1 - z²/2 + z⁴·Q(z²)
const (
	cosCoeff0 = -1.13585365213876817300e-11
	cosCoeff1 = 2.08757008419747316778e-9
	cosCoeff2 = -2.75573141792967388112e-7
	cosCoeff3 = 2.48015872888517045348e-5
	cosCoeff4 = -1.38888888888730564116e-3
	cosCoeff5 = 4.16666666666665929218e-2
)

// Octant bookkeeping for the sin/cos kernels.
const (
	octantMask     = 7
	halfTurnOctant = 4
	half           = 0.5
)

// Taylor coefficients for e^r, r = f·ln2, |f| ≤ 0.5, highest order first.
// Thirteen terms keep the truncation error below one ulp.
const (
	ln2 = 0.693147180559945309417232121458176568

	expCoeff13 = 1.0 / 6227020800
	expCoeff12 = 1.0 / 479001600
	expCoeff11 = 1.0 / 39916800
	expCoeff10 = 1.0 / 3628800
	expCoeff9  = 1.0 / 362880
	expCoeff8  = 1.0 / 40320
	expCoeff7  = 1.0 / 5040
	expCoeff6  = 1.0 / 720
	expCoeff5  = 1.0 / 120
	expCoeff4  = 1.0 / 24
	expCoeff3  = 1.0 / 6
	expCoeff2  = 1.0 / 2
	expCoeff1  = 1.0
	expCoeff0  = 1.0
)

// Exponent limits of float64 for Exp2.
const (
	exp2Overflow  = 1024
	exp2Underflow = -1075
)
