package main

// Default command-line flag values
const (
	defaultCurve    = "linear"
	defaultFrom     = 0.0
	defaultTo       = 1.0
	defaultDuration = 1.0
	defaultMode     = "once"
	defaultPoints   = 11
)

// Demo parameters
const (
	demoPoints = 401 // Resolution of the curve comparison
	demoFrames = 60  // One second at 60 fps
	demoJitter = 7   // Frame drop every demoJitter frames
)

// Output formatting
const (
	barWidth = 40
)
