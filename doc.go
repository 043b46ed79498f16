// Package tween provides deterministic, allocation-free tweening in pure Go.
//
// A tween computes the values between a start and an end over a duration,
// following an easing curve. The package never reads a clock: callers drive
// it with absolute positions or with time deltas they track themselves, in
// whatever unit fits (seconds as float32/float64, frames or samples as any
// integer type).
//
// # Features
//
//   - Linear, Elastic and the classic Penner families (Quad, Cubic, Quart,
//     Quint, Sine, Expo, Circ, Back, Bounce), each as In, Out and InOut
//   - Generic over value and time types, including named numeric types and
//     custom value types such as vectors and colors
//   - Exact endpoints: every curve returns exactly its initial value at
//     t = 0 and exactly its final value at t = duration
//   - Absolute, delta and fixed-step drivers
//   - Looping, oscillating (ping-pong) and extrapolating wrappers
//   - Bit-identical output across architectures with the tweensoft build tag
//
// # Quick Start
//
// Drive a curve with absolute time:
//
//	tw := tween.NewTweener(tween.NewLinear(0.0, 100.0, 10))
//	for frame := 1; frame <= 10; frame++ {
//	    fmt.Println(tw.Move(frame)) // 10, 20, ... 100
//	}
//
// Or with deltas, such as the time since the previous frame:
//
//	tw := tween.NewDeltaTweener(tween.NewElasticOut(0.0, 1.0, 0.75))
//	for !tw.IsFinished() {
//	    x := tw.Step(dt)
//	    ...
//	}
//
// # Curves and Tweens
//
// [Curve] is the leaf [Tween]: one easing curve from an initial value to a
// final value over a duration. Build one with [New] and a [Kind], or with the
// per-kind helpers such as [NewLinear] and [NewElasticOut]. [NewCustom] takes
// any [github.com/tphakala/go-tween/ease.Func].
//
// Curves are finite: drivers clamp time to [0, duration] before evaluating
// them. The wrappers [Looper], [Oscillator] and [Extrapolator] are tweens
// too, and are not finite:
//
//	loop := tween.MustLoop(tween.New(tween.SineInOut, 0.0, 1.0, 2.0))
//	tw := tween.NewDeltaTweener(loop) // never finishes
//
// # Value Types
//
// Built-in numbers tween through [Scalar]. Other types supply an
// [Arithmetic], most easily by implementing [Value] and using [Methods]:
//
//	c := tween.NewWith(tween.Methods[vec.Vec2]{}, tween.BackOut, from, to, 0.5)
//
// Integer values are scaled through float64 and truncated toward zero.
// Unsigned values must not decrease: the delta of a falling unsigned tween
// wraps around.
//
// # Subpackages
//
//   - ease: the easing functions behind every [Kind]
//   - sample: bulk evaluation, SIMD linear batches and curve profiles
//   - envelope: sample-accurate audio gain for beep streamers and buffers
//   - tweencolor: color tweens in sRGB, CIE Lab and linear RGB
//   - vec: 2D and 3D vectors implementing [Value]
//
// # Determinism
//
// Given the same construction parameters and the same sequence of calls,
// output is bit-identical from run to run. The default build evaluates sin
// and exp2 with the math package, whose results may differ in the last bit
// between architectures because the compiler may fuse multiply-adds. Build
// with -tags tweensoft to select portable software kernels that produce the
// same bits everywhere.
//
// # Thread Safety
//
// Curves and wrappers are immutable values and safe for concurrent use.
// Drivers own their cursor and must not be shared between goroutines without
// external synchronization.
package tween
