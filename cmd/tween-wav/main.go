// Command tween-wav shapes WAV audio with tweened fades.
//
// Usage:
//
//	tween-wav -fade-in 20ms -fade-out 2s input.wav output.wav
//	tween-wav -curve expo-out -fade-out 3s -block 1 input.wav output.wav  # sample-accurate gain
//	tween-wav -tone 440 -duration 2s -curve elastic-out output.wav        # render a shaped tone
//	tween-wav -tone 220 -duration 4s -pan 1s output.wav                   # ping-pong stereo pan
//
// Gains are computed at control rate: every block of -block frames shares
// one gain value, applied with a SIMD scale.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tween "github.com/tphakala/go-tween"
)

const (
	// CLI defaults
	defaultCurve    = "sine-in-out"
	defaultFadeIn   = 10 * time.Millisecond
	defaultFadeOut  = 500 * time.Millisecond
	defaultBlock    = 64
	defaultRate     = 48000
	defaultBits     = 16
	defaultDuration = 2 * time.Second
	defaultLevel    = 0.5

	minShapeArgs = 2
	minToneArgs  = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	curve := flag.String("curve", defaultCurve, "Fade curve, e.g. linear, sine-in-out, expo-out, elastic-out")
	fadeIn := flag.Duration("fade-in", defaultFadeIn, "Fade-in length")
	fadeOut := flag.Duration("fade-out", defaultFadeOut, "Fade-out length")
	block := flag.Int("block", defaultBlock, "Frames per gain update (1 = sample-accurate)")
	tone := flag.Float64("tone", 0, "Render a sine tone of this frequency in Hz instead of reading input")
	duration := flag.Duration("duration", defaultDuration, "Tone length")
	rate := flag.Int("rate", defaultRate, "Tone sample rate in Hz")
	bits := flag.Int("bits", defaultBits, "Tone bit depth: 16, 24 or 32")
	level := flag.Float64("level", defaultLevel, "Tone peak level in [0, 1]")
	pan := flag.Duration("pan", 0, "Tone pan period: sweep left to right and back (0 = centered)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	generate := *tone > 0
	if (generate && len(args) < minToneArgs) || (!generate && len(args) < minShapeArgs) {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -tone HZ [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCurves: ")
		for i, k := range tween.Kinds() {
			if i > 0 {
				fmt.Fprint(os.Stderr, ", ")
			}
			fmt.Fprint(os.Stderr, k)
		}
		fmt.Fprintln(os.Stderr)
		return errors.New("insufficient arguments")
	}

	kind, err := tween.ParseKind(*curve)
	if err != nil {
		return err
	}
	if kind == tween.Custom {
		return fmt.Errorf("%w: custom curves are not available here", tween.ErrInvalidConfig)
	}

	fades := fadeSpec{kind: kind, in: *fadeIn, out: *fadeOut, block: *block}
	if err := fades.validate(); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Curve: %s", kind)
		log.Printf("Fade in: %v, fade out: %v", fades.in, fades.out)
		log.Printf("Block: %d frames", fades.block)
	}

	start := time.Now()
	var stats *shapeStats
	if generate {
		outputPath := args[0]
		spec := toneSpec{
			freq:     *tone,
			duration: *duration,
			rate:     *rate,
			bitDepth: *bits,
			level:    *level,
			pan:      *pan,
		}
		if *verbose {
			log.Printf("Tone: %.1f Hz, %v at %d Hz, %d-bit", spec.freq, spec.duration, spec.rate, spec.bitDepth)
			log.Printf("Output: %s", outputPath)
		}
		stats, err = renderTone(outputPath, spec, fades)
		if err != nil {
			return err
		}
		fmt.Printf("Rendered %s\n", filepath.Base(outputPath))
	} else {
		inputPath, outputPath := args[0], args[1]
		if *verbose {
			log.Printf("Input: %s", inputPath)
			log.Printf("Output: %s", outputPath)
		}
		stats, err = shapeWAV(inputPath, outputPath, fades, *verbose)
		if err != nil {
			return err
		}
		fmt.Printf("Shaped %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	}
	elapsed := time.Since(start)

	fmt.Printf("  %d Hz, %d channels, %d-bit\n", stats.rate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d frames, fade in %d, fade out %d\n", stats.frames, stats.fadeInFrames, stats.fadeOutFrames)
	fmt.Printf("  Took %.3fs\n", elapsed.Seconds())
	return nil
}

type shapeStats struct {
	rate          int
	channels      int
	bitDepth      int
	frames        int64
	fadeInFrames  int
	fadeOutFrames int
}
