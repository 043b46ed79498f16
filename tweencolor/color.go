// Package tweencolor tweens [colorful.Color] values.
//
// Colors can be blended in more than one space. [RGB] blends the sRGB
// components directly, which is cheap but passes through muddy, darker
// midpoints. [NewLab] and [NewLinearRGB] blend in CIE L*a*b* and linear RGB
// and convert every value back to sRGB.
//
//	from, _ := colorful.Hex("#fdffcc")
//	to, _ := colorful.Hex("#242a42")
//	c := tweencolor.NewLab(tween.SineInOut, from, to, 0.8)
//	tw := tween.NewDeltaTweener(c)
package tweencolor

import (
	"github.com/lucasb-eyer/go-colorful"

	tween "github.com/tphakala/go-tween"
)

// RGB is the [tween.Arithmetic] of colorful.Color in sRGB space.
type RGB struct{}

// Add returns the component-wise sum.
func (RGB) Add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

// Delta returns the component-wise difference dest - start.
func (RGB) Delta(dest, start colorful.Color) colorful.Color {
	return colorful.Color{R: dest.R - start.R, G: dest.G - start.G, B: dest.B - start.B}
}

// Scale multiplies every component by f.
func (RGB) Scale(v colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: float64(v.R * f), G: float64(v.G * f), B: float64(v.B * f)}
}

// New returns a curve that blends from and to in sRGB space.
//
// Curves that overshoot, such as Back and Elastic, can leave the gamut in
// between; use Clamped on the values before display.
func New[T tween.Time](kind tween.Kind, from, to colorful.Color, duration T) tween.Curve[colorful.Color, T] {
	return tween.NewWith[colorful.Color, T](RGB{}, kind, from, to, duration)
}

// Lab is a color in CIE L*a*b* coordinates, relative to the D65 white point.
type Lab struct {
	L, A, B float64
}

// LabOf converts c to L*a*b*.
func LabOf(c colorful.Color) Lab {
	l, a, b := c.Lab()
	return Lab{l, a, b}
}

// Color converts l back to sRGB. The result may be out of gamut.
func (l Lab) Color() colorful.Color { return colorful.Lab(l.L, l.A, l.B) }

// Add returns the component-wise sum l + o.
func (l Lab) Add(o Lab) Lab { return Lab{l.L + o.L, l.A + o.A, l.B + o.B} }

// Sub returns the component-wise difference l - o.
func (l Lab) Sub(o Lab) Lab { return Lab{l.L - o.L, l.A - o.A, l.B - o.B} }

// Scale returns l with every component multiplied by f.
func (l Lab) Scale(f float64) Lab { return Lab{float64(l.L * f), float64(l.A * f), float64(l.B * f)} }

// LinearRGB is a color with the sRGB gamma removed.
type LinearRGB struct {
	R, G, B float64
}

// LinearRGBOf converts c to linear RGB.
func LinearRGBOf(c colorful.Color) LinearRGB {
	r, g, b := c.LinearRgb()
	return LinearRGB{r, g, b}
}

// Color converts l back to sRGB. The result may be out of gamut.
func (l LinearRGB) Color() colorful.Color { return colorful.LinearRgb(l.R, l.G, l.B) }

// Add returns the component-wise sum l + o.
func (l LinearRGB) Add(o LinearRGB) LinearRGB {
	return LinearRGB{l.R + o.R, l.G + o.G, l.B + o.B}
}

// Sub returns the component-wise difference l - o.
func (l LinearRGB) Sub(o LinearRGB) LinearRGB {
	return LinearRGB{l.R - o.R, l.G - o.G, l.B - o.B}
}

// Scale returns l with every component multiplied by f.
func (l LinearRGB) Scale(f float64) LinearRGB {
	return LinearRGB{float64(l.R * f), float64(l.G * f), float64(l.B * f)}
}

// space is a color representation that converts back to sRGB.
type space[S any] interface {
	tween.Value[S]
	Color() colorful.Color
}

// Blend is a [tween.Tween] of colorful.Color that interpolates in another
// color space S and converts each value back to sRGB, clamped to the
// gamut.
//
// At t = 0 and t = Duration() it returns exactly the colors it was built
// with, never a round-tripped conversion.
type Blend[S space[S], T tween.Time] struct {
	curve    tween.Curve[S, T]
	from, to colorful.Color
}

// NewLab returns a tween that blends from and to in CIE L*a*b* space.
func NewLab[T tween.Time](kind tween.Kind, from, to colorful.Color, duration T) Blend[Lab, T] {
	return Blend[Lab, T]{
		curve: tween.NewWith[Lab, T](tween.Methods[Lab]{}, kind, LabOf(from), LabOf(to), duration),
		from:  from,
		to:    to,
	}
}

// NewLinearRGB returns a tween that blends from and to in linear RGB space,
// which mixes light physically.
func NewLinearRGB[T tween.Time](kind tween.Kind, from, to colorful.Color, duration T) Blend[LinearRGB, T] {
	return Blend[LinearRGB, T]{
		curve: tween.NewWith[LinearRGB, T](tween.Methods[LinearRGB]{}, kind, LinearRGBOf(from), LinearRGBOf(to), duration),
		from:  from,
		to:    to,
	}
}

// Run evaluates the blend at t.
func (b Blend[S, T]) Run(t T) colorful.Color {
	switch tween.Percent(b.curve.Duration(), t) {
	case 0:
		return b.from
	case 1:
		return b.to
	}
	return b.curve.Run(t).Color().Clamped()
}

// InitialValue returns the color at t = 0.
func (b Blend[S, T]) InitialValue() colorful.Color { return b.from }

// FinalValue returns the color at t = Duration().
func (b Blend[S, T]) FinalValue() colorful.Color { return b.to }

// Duration returns the blend duration.
func (b Blend[S, T]) Duration() T { return b.curve.Duration() }

// IsFinite reports true.
func (b Blend[S, T]) IsFinite() bool { return true }

// Curve returns the curve in the blend space.
func (b Blend[S, T]) Curve() tween.Curve[S, T] { return b.curve }
