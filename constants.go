package tween

import "math"

// Elastic curve parameters
const (
	// Oscillation period as a fraction of the duration.
	elasticPeriod      = 0.3
	elasticInOutPeriod = 0.45 // Each half runs at double speed, so a longer period

	// Phase offset as a fraction of the period (a quarter wave).
	elasticPhaseShift = 0.25

	// Exponent rate of the 2^(±10p) amplitude envelope.
	elasticDecayRate = 10.0

	// Each half of ElasticInOut swings with half the amplitude.
	elasticInOutAmplitude = 0.5

	twoPi = 2 * math.Pi
)

// In-out curves evaluate each half on a doubled percent.
const inOutScale = 2.0
