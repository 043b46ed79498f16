// Command tween evaluates a configured tween and prints its values.
//
// Usage:
//
//	tween -curve elastic-out -from 0 -to 100 -duration 2 -n 21
//	tween -curve sine-in-out -mode oscillate -span 4 -n 41
//	tween -curve bounce-out -step 0.1
//	tween -demo
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/sample"
)

func main() {
	// Command-line flags
	var (
		curve    = flag.String("curve", defaultCurve, "Curve kind, e.g. linear, quad-in, elastic-out")
		from     = flag.Float64("from", defaultFrom, "Initial value")
		to       = flag.Float64("to", defaultTo, "Final value")
		duration = flag.Float64("duration", defaultDuration, "Duration of one pass")
		mode     = flag.String("mode", defaultMode, "Mode: once, loop, oscillate, extrapolate")
		points   = flag.Int("n", defaultPoints, "Number of evenly spaced points")
		span     = flag.Float64("span", 0, "Time span to sample (0 = one duration)")
		step     = flag.Float64("step", 0, "Drive with a fixed step instead of sampling evenly")
		list     = flag.Bool("list", false, "List the curve kinds")
		demo     = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *list {
		for _, k := range tween.Kinds() {
			fmt.Println(k)
		}
		return
	}

	if *demo {
		runDemo()
		return
	}

	kind, err := tween.ParseKind(*curve)
	if err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}
	m, err := tween.ParseMode(*mode)
	if err != nil {
		log.Fatalf("Invalid mode: %v", err)
	}

	config := tween.Config{
		Kind:     kind,
		Initial:  *from,
		Final:    *to,
		Duration: *duration,
		Mode:     m,
	}

	tw, err := tween.Build(&config)
	if err != nil {
		log.Fatalf("Failed to build tween: %v", err)
	}

	fmt.Printf("Tween: %s %s, %g -> %g over %g\n", kind, m, *from, *to, *duration)

	if *step != 0 {
		printSteps(tw, *step, *points)
		return
	}

	if *points < 1 {
		log.Fatalf("Need at least one point, got %d", *points)
	}
	times, values := evaluate(tw, *points, *span)
	printValues(times, values, *from, *to)

	profile := sample.Analyze(values, *from, *to)
	fmt.Printf("\nMin %.6g at t=%g, max %.6g at t=%g\n",
		profile.Min, times[profile.MinIndex], profile.Max, times[profile.MaxIndex])
	fmt.Printf("Mean %.6g, RMS %.6g\n", profile.Mean, profile.RMS)
	if profile.Overshoot > 0 || profile.Undershoot > 0 {
		fmt.Printf("Overshoot %.6g, undershoot %.6g\n", profile.Overshoot, profile.Undershoot)
	}
}

// evaluate samples tw at n evenly spaced times over span, or over one
// duration when span is 0.
func evaluate(tw tween.Tween[float64, float64], n int, span float64) (times, values []float64) {
	if span == 0 {
		span = tw.Duration()
	}
	times = sample.Percents(make([]float64, n))
	for i := range times {
		times[i] *= span
	}

	if span == tw.Duration() {
		return times, sample.Sample(make([]float64, n), tw)
	}

	driver := tween.NewTweener(tw)
	values = make([]float64, n)
	for i, t := range times {
		values[i] = driver.Move(t)
	}
	return times, values
}

// printSteps drives tw with a fixed step until it finishes, or for limit
// steps when it never does. A negative step runs backwards from t = 0.
func printSteps(tw tween.Tween[float64, float64], step float64, limit int) {
	driver := tween.NewFixedTweener(tw, step)
	fmt.Printf("%10s  %12s\n", "t", "value")
	fmt.Printf("%10g  %12.6g\n", driver.Current(), driver.Value())

	n := 0
	for v := range driver.All() {
		fmt.Printf("%10g  %12.6g\n", driver.Current(), v)
		n++
		if (!tw.IsFinite() || step < 0) && n >= limit {
			break
		}
	}
}

func printValues(times, values []float64, from, to float64) {
	lo, hi := min(from, to), max(from, to)
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}

	fmt.Printf("%10s  %12s\n", "t", "value")
	for i, v := range values {
		fmt.Printf("%10g  %12.6g  %s\n", times[i], v, bar(v, lo, hi))
	}
}

// bar renders v within [lo, hi] as a fixed-width bar.
func bar(v, lo, hi float64) string {
	if hi == lo {
		return ""
	}
	n := int((v - lo) / (hi - lo) * barWidth)
	return strings.Repeat("#", min(max(n, 0), barWidth))
}

func runDemo() {
	fmt.Println("=== Go Tween Demo ===")

	// Demo 1: Curve shapes
	fmt.Println("1. Comparing Curves")
	fmt.Println("-------------------")
	fmt.Printf("%-16s %10s %10s %10s %10s\n", "curve", "min", "max", "overshoot", "undershoot")

	for _, k := range tween.Kinds() {
		p := sample.Of(tween.New(k, 0.0, 1.0, 1.0), demoPoints)
		fmt.Printf("%-16s %10.4f %10.4f %10.4f %10.4f\n", k, p.Min, p.Max, p.Overshoot, p.Undershoot)
	}

	// Demo 2: Integer frame clock
	fmt.Println("\n2. Frame Clock With Dropped Frames")
	fmt.Println("----------------------------------")
	driver := tween.NewDeltaTweener(tween.New(tween.CubicOut, 0, 400, demoFrames))
	for frame := 0; !driver.IsFinished(); frame++ {
		delta := 1
		if frame%demoJitter == demoJitter-1 {
			delta = 3
		}
		x := driver.Step(delta)
		fmt.Printf("  frame %3d  t=%3d  x=%3d\n", frame, driver.Current(), x)
	}

	// Demo 3: Repeating modes
	fmt.Println("\n3. Repeating Modes")
	fmt.Println("------------------")
	modes := []tween.Mode{tween.ModeOnce, tween.ModeLoop, tween.ModeOscillate, tween.ModeExtrapolate}
	for _, m := range modes {
		tw, err := tween.Build(&tween.Config{Kind: tween.Linear, Initial: 0, Final: 1, Duration: 1, Mode: m})
		if err != nil {
			fmt.Printf("  %s: Error - %v\n", m, err)
			continue
		}
		_, values := evaluate(tw, 9, 2)
		fmt.Printf("  %-12s %v\n", m, values)
	}

	fmt.Println("\n=== Demo Complete ===")
}
