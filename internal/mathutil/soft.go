package mathutil

import "math"

// The software kernels below round every product explicitly with a float64
// conversion. The Go specification lets the compiler fuse x*y+z into an FMA
// on some architectures; an explicit conversion forbids that, so these
// functions return the same bits on every platform.

// Sin returns the sine of the radian argument x.
//
// Argument reduction uses a three-part Cody-Waite split of π/4 followed by a
// minimax polynomial on [-π/4, π/4]. Accuracy is within a few ulps of
// [math.Sin] for |x| < 2²⁹.
func Sin(x float64) float64 {
	switch {
	case x == 0 || math.IsNaN(x):
		return x // ±0 and NaN pass through
	case math.IsInf(x, 0):
		return math.NaN()
	}

	sign := false
	if x < 0 {
		x = -x
		sign = true
	}
	if x >= reduceThreshold {
		if sign {
			return -math.Sin(x)
		}
		return math.Sin(x)
	}

	j, y := octant(x)
	if j > 3 {
		sign = !sign
		j -= halfTurnOctant
	}

	z := reduce(x, y)
	zz := float64(z * z)

	var r float64
	if j == 1 || j == 2 {
		r = cosKernel(zz)
	} else {
		r = sinKernel(z, zz)
	}
	if sign {
		r = -r
	}
	return r
}

// Cos returns the cosine of the radian argument x.
func Cos(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return math.NaN()
	}

	x = math.Abs(x)
	if x >= reduceThreshold {
		return math.Cos(x)
	}

	sign := false
	j, y := octant(x)
	if j > 3 {
		j -= halfTurnOctant
		sign = !sign
	}
	if j > 1 {
		sign = !sign
	}

	z := reduce(x, y)
	zz := float64(z * z)

	var r float64
	if j == 1 || j == 2 {
		r = sinKernel(z, zz)
	} else {
		r = cosKernel(zz)
	}
	if sign {
		r = -r
	}
	return r
}

// Exp2 returns 2**x.
//
// x is split into an integer n and a fraction f in [-0.5, 0.5]; 2^f is
// evaluated as e^(f·ln2) with a Taylor polynomial and scaled exactly by 2^n.
// Integer arguments are exact.
func Exp2(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x >= exp2Overflow:
		return math.Inf(1)
	case x <= exp2Underflow:
		return 0
	}

	n := math.Floor(x + half)
	f := x - n // exact: n is the nearest integer to x
	r := float64(f * ln2)

	p := expCoeff13
	p = float64(p*r) + expCoeff12
	p = float64(p*r) + expCoeff11
	p = float64(p*r) + expCoeff10
	p = float64(p*r) + expCoeff9
	p = float64(p*r) + expCoeff8
	p = float64(p*r) + expCoeff7
	p = float64(p*r) + expCoeff6
	p = float64(p*r) + expCoeff5
	p = float64(p*r) + expCoeff4
	p = float64(p*r) + expCoeff3
	p = float64(p*r) + expCoeff2
	p = float64(p*r) + expCoeff1
	p = float64(p*r) + expCoeff0

	return math.Ldexp(p, int(n))
}

// Pow returns x**y. Base 2 takes the exact [Exp2] path; other bases are
// computed as Exp2(y·log2(x)) for positive x and defer to [math.Pow]
// otherwise.
func Pow(x, y float64) float64 {
	switch {
	case x == 2:
		return Exp2(y)
	case y == 0:
		return 1
	case x > 0 && !math.IsInf(x, 0):
		return Exp2(float64(y * math.Log2(x)))
	default:
		return math.Pow(x, y)
	}
}

// octant returns the octant index j of x (made even) and j as a float64.
func octant(x float64) (uint64, float64) {
	j := uint64(float64(x * fourOverPi))
	y := float64(j)
	// map zeros to origin
	if j&1 == 1 {
		j++
		y++
	}
	return j & octantMask, y
}

// reduce returns x - y·π/4 in extended precision.
func reduce(x, y float64) float64 {
	return ((x - float64(y*pi4A)) - float64(y*pi4B)) - float64(y*pi4C)
}

func sinKernel(z, zz float64) float64 {
	p := sinCoeff0
	p = float64(p*zz) + sinCoeff1
	p = float64(p*zz) + sinCoeff2
	p = float64(p*zz) + sinCoeff3
	p = float64(p*zz) + sinCoeff4
	p = float64(p*zz) + sinCoeff5
	return z + float64(float64(z*zz)*p)
}

func cosKernel(zz float64) float64 {
	q := cosCoeff0
	q = float64(q*zz) + cosCoeff1
	q = float64(q*zz) + cosCoeff2
	q = float64(q*zz) + cosCoeff3
	q = float64(q*zz) + cosCoeff4
	q = float64(q*zz) + cosCoeff5
	return 1 - float64(half*zz) + float64(float64(zz*zz)*q)
}
