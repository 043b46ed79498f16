package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	tween "github.com/tphakala/go-tween"
)

// toneSpec describes a generated test tone.
type toneSpec struct {
	freq     float64
	duration time.Duration
	rate     int
	bitDepth int
	level    float64
	pan      time.Duration
}

func (s toneSpec) validate() error {
	if s.rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", tween.ErrInvalidConfig)
	}
	if s.freq <= 0 || s.freq >= float64(s.rate)/2 {
		return fmt.Errorf("%w: tone must be between 0 and %d Hz", tween.ErrInvalidConfig, s.rate/2)
	}
	if s.duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", tween.ErrInvalidConfig)
	}
	switch s.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("%w: unsupported bit depth %d", tween.ErrInvalidConfig, s.bitDepth)
	}
	if s.level < 0 || s.level > 1 {
		return fmt.Errorf("%w: level must be in [0, 1]", tween.ErrInvalidConfig)
	}
	if s.pan < 0 {
		return fmt.Errorf("%w: pan period must not be negative", tween.ErrInvalidConfig)
	}
	return nil
}

// channels returns 2 for a panned tone and 1 otherwise.
func (s toneSpec) channels() int {
	if s.pan > 0 {
		return stereoChannels
	}
	return monoChannels
}

// panner is an equal-power stereo pan driven by a tween. Position 0 is hard
// left and 1 is hard right.
type panner struct {
	streamer beep.Streamer
	driver   *tween.DeltaTweener[float64, int]
}

func newPanner(s beep.Streamer, tw tween.Tween[float64, int]) *panner {
	return &panner{streamer: s, driver: tween.NewDeltaTweener(tw)}
}

func (p *panner) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(samples)
	for i := range samples[:n] {
		angle := min(max(p.driver.Value(), 0), 1) * math.Pi / 2
		samples[i][0] *= math.Cos(angle)
		samples[i][1] *= math.Sin(angle)
		p.driver.Step(1)
	}
	return n, ok
}

func (p *panner) Err() error { return p.streamer.Err() }

// toneStreamer builds the source for spec. It ends after spec.duration.
func toneStreamer(spec toneSpec) (beep.Streamer, int, error) {
	sr := beep.SampleRate(spec.rate)
	total := sr.N(spec.duration)

	sine, err := generators.SineTone(sr, spec.freq)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create tone: %w", err)
	}

	// math.Log2(0) is -Inf, so silence is explicit
	vol := &effects.Volume{Streamer: beep.Take(total, sine), Base: 2, Silent: spec.level == 0}
	if spec.level > 0 {
		vol.Volume = math.Log2(spec.level)
	}

	if spec.pan <= 0 {
		return vol, total, nil
	}

	// One pass sweeps left to right, the oscillator brings it back.
	sweep := max(sr.N(spec.pan)/2, 1)
	return newPanner(vol, tween.MustOscillate(tween.NewLinear(0.0, 1.0, sweep))), total, nil
}

// renderTone writes a generated tone with fades applied.
func renderTone(outputPath string, spec toneSpec, fades fadeSpec) (stats *shapeStats, err error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	src, total, err := toneStreamer(spec)
	if err != nil {
		return nil, err
	}

	numChannels := spec.channels()
	output, err := createWAVOutput(outputPath, spec.rate, spec.bitDepth, numChannels)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	shape := newShaper(fades, spec.rate, int64(total))
	stats = &shapeStats{
		rate:          spec.rate,
		channels:      numChannels,
		bitDepth:      spec.bitDepth,
		fadeInFrames:  shape.inFrames,
		fadeOutFrames: shape.outFrames,
	}

	frames := make([][2]float64, bufferSize)
	channelBufs := make([][]float64, numChannels)
	for ch := range channelBufs {
		channelBufs[ch] = make([]float64, bufferSize)
	}
	scratch := make([]float64, bufferSize*numChannels)
	outputInts := make([]int, bufferSize*numChannels)
	maxVal := getMaxValue(spec.bitDepth)

	for {
		n, ok := src.Stream(frames)
		if n > 0 {
			for i, f := range frames[:n] {
				for ch := range numChannels {
					channelBufs[ch][i] = f[ch]
				}
			}
			shape.apply(channelBufs, n)
			written := interleaveInto(channelBufs, n, scratch, outputInts, maxVal)
			if err := output.WriteSamples(outputInts[:written]); err != nil {
				return nil, fmt.Errorf("failed to write audio data: %w", err)
			}
			stats.frames += int64(n)
		}
		if !ok {
			break
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("tone generation failed: %w", err)
	}

	return stats, nil
}
