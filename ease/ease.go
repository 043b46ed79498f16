// Package ease provides the classic easing functions as pure mappings from
// a percent of progress to a scalar multiplier of the value delta.
//
// Every function maps 0 to 0 and 1 to 1 up to rounding; tween curves built
// from them return their exact initial and final values at the endpoints
// regardless. Inputs outside [0, 1] are evaluated as-is, which is what
// extrapolation relies on. Visual references: https://easings.net/
//
// Products that feed an addition are rounded with an explicit float64
// conversion so the compiler cannot fuse them into an FMA. Together with
// the tweensoft build tag this keeps every function bit-identical across
// architectures.
package ease

import "github.com/tphakala/go-tween/internal/mathutil"

// Func maps a percent of elapsed duration to a multiplier of the value delta.
type Func func(p float64) float64

// Linear returns p.
func Linear(p float64) float64 { return p }

// QuadIn accelerates from zero velocity.
func QuadIn(p float64) float64 { return p * p }

// QuadOut decelerates to zero velocity.
func QuadOut(p float64) float64 { return -p * (p - 2) }

// QuadInOut accelerates until halfway, then decelerates.
func QuadInOut(p float64) float64 {
	r := float64(p * inOutScale)
	if r < 1 {
		return half * r * r
	}
	r--
	return -half * (float64(r*(r-2)) - 1)
}

// CubicIn accelerates from zero velocity.
func CubicIn(p float64) float64 { return p * p * p }

// CubicOut decelerates to zero velocity.
func CubicOut(p float64) float64 {
	r := p - 1
	return float64(r*r*r) + 1
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(p float64) float64 {
	r := float64(p * inOutScale)
	if r < 1 {
		return half * r * r * r
	}
	r -= 2
	return half * (float64(r*r*r) + 2)
}

// QuartIn accelerates from zero velocity.
func QuartIn(p float64) float64 { return p * p * p * p }

// QuartOut decelerates to zero velocity.
func QuartOut(p float64) float64 {
	r := p - 1
	return -(float64(r*r*r*r) - 1)
}

// QuartInOut accelerates until halfway, then decelerates.
func QuartInOut(p float64) float64 {
	r := float64(p * inOutScale)
	if r < 1 {
		return half * r * r * r * r
	}
	r -= 2
	return -half * (float64(r*r*r*r) - 2)
}

// QuintIn accelerates from zero velocity.
func QuintIn(p float64) float64 { return p * p * p * p * p }

// QuintOut decelerates to zero velocity.
func QuintOut(p float64) float64 {
	r := p - 1
	return float64(r*r*r*r*r) + 1
}

// QuintInOut accelerates until halfway, then decelerates.
func QuintInOut(p float64) float64 {
	r := float64(p * inOutScale)
	if r < 1 {
		return half * r * r * r * r * r
	}
	r -= 2
	return half * (float64(r*r*r*r*r) + 2)
}

// SineIn follows a quarter cosine wave.
func SineIn(p float64) float64 {
	return 1 - mathutil.Active().Cos(p*halfPi)
}

// SineOut follows a quarter sine wave.
func SineOut(p float64) float64 {
	return mathutil.Active().Sin(p * halfPi)
}

// SineInOut follows a half cosine wave.
func SineInOut(p float64) float64 {
	return -half * (mathutil.Active().Cos(pi*p) - 1)
}

// ExpoIn starts slow and grows exponentially.
func ExpoIn(p float64) float64 {
	if p == 0 {
		return 0
	}
	return mathutil.Active().Exp2(expoRate * (p - 1))
}

// ExpoOut starts fast and decays exponentially.
func ExpoOut(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - mathutil.Active().Exp2(-expoRate*p)
}

// ExpoInOut is ExpoIn until halfway, then ExpoOut.
func ExpoInOut(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	m := mathutil.Active()
	r := float64(p*inOutScale) - 1
	if r < 0 {
		return half * m.Exp2(expoRate*r)
	}
	return half * (2 - m.Exp2(-expoRate*r))
}

// CircIn follows a quarter circle, slow start.
func CircIn(p float64) float64 {
	return 1 - mathutil.Active().Sqrt(1-float64(p*p))
}

// CircOut follows a quarter circle, slow end.
func CircOut(p float64) float64 {
	r := p - 1
	return mathutil.Active().Sqrt(1 - float64(r*r))
}

// CircInOut is CircIn until halfway, then CircOut.
func CircInOut(p float64) float64 {
	m := mathutil.Active()
	r := float64(p * inOutScale)
	if r < 1 {
		return -half * (m.Sqrt(1-float64(r*r)) - 1)
	}
	r -= 2
	return half * (m.Sqrt(1-float64(r*r)) + 1)
}

// BackIn pulls back slightly before moving toward the target.
func BackIn(p float64) float64 {
	return p * p * (float64((backOvershoot+1)*p) - backOvershoot)
}

// BackOut overshoots the target slightly before settling.
func BackOut(p float64) float64 {
	r := p - 1
	return float64(r*r*(float64((backOvershoot+1)*r)+backOvershoot)) + 1
}

// BackInOut pulls back at the start and overshoots at the end.
func BackInOut(p float64) float64 {
	const s = backOvershoot * backInOutFactor
	r := float64(p * inOutScale)
	if r < 1 {
		return half * (r * r * (float64((s+1)*r) - s))
	}
	r -= 2
	return half * (float64(r*r*(float64((s+1)*r)+s)) + 2)
}

// BounceIn bounces against the start before leaving it.
func BounceIn(p float64) float64 {
	return 1 - BounceOut(1-p)
}

// BounceOut falls onto the target and bounces to rest.
func BounceOut(p float64) float64 {
	switch {
	case p < bounceEdge1:
		return bounceGain * p * p
	case p < bounceEdge2:
		p -= bounceCenter2
		return float64(bounceGain*p*p) + bounceLift2
	case p < bounceEdge3:
		p -= bounceCenter3
		return float64(bounceGain*p*p) + bounceLift3
	default:
		p -= bounceCenter4
		return float64(bounceGain*p*p) + bounceLift4
	}
}

// BounceInOut is BounceIn until halfway, then BounceOut.
func BounceInOut(p float64) float64 {
	if p < half {
		return half * BounceIn(p*inOutScale)
	}
	return float64(half*BounceOut(float64(p*inOutScale)-1)) + half
}
