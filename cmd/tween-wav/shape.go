package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-audio/audio"
	"github.com/gopxl/beep"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/envelope"
)

// fadeSpec describes the fades applied to a stream.
type fadeSpec struct {
	kind  tween.Kind
	in    time.Duration
	out   time.Duration
	block int
}

func (f fadeSpec) validate() error {
	if f.in < 0 || f.out < 0 {
		return fmt.Errorf("%w: fade lengths must not be negative", tween.ErrInvalidConfig)
	}
	if f.block < 1 {
		return fmt.Errorf("%w: block must be at least 1 frame", tween.ErrInvalidConfig)
	}
	return nil
}

// shaper computes fade gains for a stream as its frames go past.
type shaper struct {
	fadeIn   *tween.DeltaTweener[float64, int]
	fadeOut  *tween.DeltaTweener[float64, int]
	outStart int64
	pos      int64
	block    int
	gain     []float64

	inFrames  int
	outFrames int
}

// newShaper returns a shaper for a stream of totalFrames frames. A stream
// of unknown length (totalFrames <= 0) gets no fade-out.
func newShaper(f fadeSpec, rate int, totalFrames int64) *shaper {
	sr := beep.SampleRate(rate)
	in := envelope.Fade(sr, f.kind, 0, 1, f.in)
	s := &shaper{
		fadeIn:   tween.NewDeltaTweener(in),
		outStart: -1,
		block:    f.block,
		gain:     make([]float64, bufferSize),
		inFrames: in.Duration(),
	}

	if totalFrames > 0 && f.out > 0 {
		out := envelope.Fade(sr, f.kind, 1, 0, f.out)
		s.outFrames = int(min(int64(out.Duration()), totalFrames))
		s.fadeOut = tween.NewDeltaTweener(out)
		s.outStart = totalFrames - int64(s.outFrames)
	}
	return s
}

// gains returns the gain of the next n frames, n <= bufferSize, and
// advances the shaper.
func (s *shaper) gains(n int) []float64 {
	g := s.gain[:n]
	for i := range g {
		g[i] = 1
	}

	if !s.fadeIn.IsFinished() {
		envelope.Apply(g, s.fadeIn, s.block)
	}
	if s.fadeOut != nil {
		if end := s.pos + int64(n); end > s.outStart {
			from := max(s.outStart-s.pos, 0)
			envelope.Apply(g[from:], s.fadeOut, s.block)
		}
	}

	s.pos += int64(n)
	return g
}

// apply shapes the first n frames of every channel in place.
func (s *shaper) apply(channels [][]float64, n int) {
	g := s.gains(n)
	for _, ch := range channels {
		for i, v := range g {
			ch[i] *= v
		}
	}
}

// shapeWAV applies fades to a WAV file.
func shapeWAV(inputPath, outputPath string, fades fadeSpec, verbose bool) (stats *shapeStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if input.totalFrames <= 0 && fades.out > 0 {
		log.Printf("Input length unknown, skipping fade-out")
	}

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close finalizes the header; report its error if nothing else failed
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	shape := newShaper(fades, input.rate, input.totalFrames)
	stats = &shapeStats{
		rate:          input.rate,
		channels:      input.channels,
		bitDepth:      input.bitDepth,
		fadeInFrames:  shape.inFrames,
		fadeOutFrames: shape.outFrames,
	}

	intBuffer := &audio.IntBuffer{
		Data:   make([]int, bufferSize*input.channels),
		Format: input.format,
	}
	channelBufs := make([][]float64, input.channels)
	for ch := range channelBufs {
		channelBufs[ch] = make([]float64, bufferSize)
	}
	scratch := make([]float64, bufferSize*input.channels)
	outputInts := make([]int, bufferSize*input.channels)
	maxVal := getMaxValue(input.bitDepth)

	for {
		n, err := input.decoder.PCMBuffer(intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		frames := n / input.channels
		if frames == 0 {
			break
		}

		deinterleaveInto(intBuffer.Data, channelBufs, input.channels, frames, 1/maxVal)
		shape.apply(channelBufs, frames)
		written := interleaveInto(channelBufs, frames, scratch, outputInts, maxVal)

		if err := output.WriteSamples(outputInts[:written]); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
		stats.frames += int64(frames)

		// PCMBuffer truncates Data to what it read
		intBuffer.Data = intBuffer.Data[:cap(intBuffer.Data)]
	}

	return stats, nil
}
