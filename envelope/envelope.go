// Package envelope shapes audio with tweens.
//
// Time is counted in sample frames, so envelopes are sample-accurate and
// never drift against the audio clock. [Gain] wraps a [beep.Streamer];
// [Apply] shapes plain sample buffers at control rate.
package envelope

import (
	"time"

	"github.com/gopxl/beep"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/internal/simdops"
)

// Fade returns a gain curve of the given kind lasting d at rate.
func Fade(rate beep.SampleRate, kind tween.Kind, from, to float64, d time.Duration) tween.Curve[float64, int] {
	return tween.New(kind, from, to, rate.N(d))
}

// Gain multiplies a streamer by a tweened gain, advancing one frame per
// sample. Once a finite gain tween finishes, the final gain holds for as
// long as the streamer keeps producing samples.
type Gain struct {
	streamer beep.Streamer
	driver   *tween.DeltaTweener[float64, int]
}

// NewGain returns s shaped by tw.
func NewGain(s beep.Streamer, tw tween.Tween[float64, int]) *Gain {
	return &Gain{
		streamer: s,
		driver:   tween.NewDeltaTweener(tw),
	}
}

// Stream streams from the wrapped streamer and multiplies each frame by the
// gain at its position, advancing the envelope one frame per frame.
func (g *Gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := range samples[:n] {
		vol := g.driver.Value()
		samples[i][0] *= vol
		samples[i][1] *= vol
		g.driver.Step(1)
	}
	return n, ok
}

// Err propagates the wrapped streamer's errors.
func (g *Gain) Err() error { return g.streamer.Err() }

// Position returns the number of frames streamed so far. For finite gain
// tweens it stops at the tween duration; for looping and oscillating ones it
// wraps at the period.
func (g *Gain) Position() int { return g.driver.Current() }

// Done reports whether a finite gain tween has reached its final value.
func (g *Gain) Done() bool { return g.driver.IsFinished() }

// Apply multiplies buf in place by the gain driver at control rate: each
// block of up to block frames gets the gain at its first frame, applied
// with one SIMD scale, and the driver advances by the block length.
// A block below 1 is treated as 1, which is sample-accurate.
func Apply[F simdops.Float](buf []F, driver *tween.DeltaTweener[float64, int], block int) {
	block = max(block, 1)
	ops := simdops.For[F]()
	for start := 0; start < len(buf); start += block {
		end := min(start+block, len(buf))
		chunk := buf[start:end]
		ops.Scale(chunk, chunk, F(driver.Value()))
		driver.Step(end - start)
	}
}

// Interleave writes left and right as interleaved stereo frames into dst,
// which must hold 2*len(left) samples. left and right must have the same
// length.
func Interleave[F simdops.Float](dst, left, right []F) {
	simdops.For[F]().Interleave2(dst, left, right)
}
