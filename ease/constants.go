package ease

import "math"

// Shared shape constants
const (
	half       = 0.5
	inOutScale = 2.0 // In-out curves run each half at double speed

	pi     = math.Pi
	halfPi = math.Pi / 2
)

// Exponential curves
const (
	expoRate = 10.0 // 2^(10(p-1)) reaches ~0.001 at p=0
)

// Back curves (Penner's s = 1.70158 gives a 10% pull-back)
const (
	backOvershoot   = 1.70158
	backInOutFactor = 1.525
)

// Bounce curve: four parabolic arcs of decreasing height
const (
	bounceGain = 7.5625
	bounceDiv  = 2.75

	bounceEdge1 = 1 / bounceDiv
	bounceEdge2 = 2 / bounceDiv
	bounceEdge3 = 2.5 / bounceDiv

	bounceCenter2 = 1.5 / bounceDiv
	bounceCenter3 = 2.25 / bounceDiv
	bounceCenter4 = 2.625 / bounceDiv

	bounceLift2 = 0.75
	bounceLift3 = 0.9375
	bounceLift4 = 0.984375
)
