package vec

import (
	"testing"

	tween "github.com/tphakala/go-tween"
)

func TestVec2Arithmetic(t *testing.T) {
	a, b := Vec(1, 2), Vec(4, -6)
	diff(t, Vec(5, -4), a.Add(b))
	diff(t, Vec(3, -8), b.Sub(a))
	diff(t, Vec(2.5, 5), a.Scale(2.5))
	diff(t, -8.0, a.Dot(b))
	diff(t, 5.0, Vec(3, 4).Hypot())
	diff(t, Vec(2.5, -2), a.Lerp(b, 0.5))
	diff(t, "⟨1, 2⟩", a.String())

	x, y := a.Splat()
	diff(t, []float64{1, 2}, []float64{x, y})
}

func TestVec3Arithmetic(t *testing.T) {
	a, b := Vec3Of(1, 2, 3), Vec3Of(-1, 0, 5)
	diff(t, Vec3Of(0, 2, 8), a.Add(b))
	diff(t, Vec3Of(-2, -2, 2), b.Sub(a))
	diff(t, Vec3Of(0.5, 1, 1.5), a.Scale(0.5))
	diff(t, 14.0, a.Dot(b))
	diff(t, 3.0, Vec3Of(1, 2, 2).Hypot())
	diff(t, Vec(1, 2), a.XY())
	diff(t, "⟨1, 2, 3⟩", a.String())
}

func TestVec2Tween(t *testing.T) {
	from, to := Vec(0, 100), Vec(200, -100)
	c := tween.NewWith(tween.Methods[Vec2]{}, tween.Linear, from, to, 4)

	got := make([]Vec2, 0, 5)
	for i := range 5 {
		got = append(got, c.Run(i))
	}
	want := []Vec2{Vec(0, 100), Vec(50, 50), Vec(100, 0), Vec(150, -50), Vec(200, -100)}
	diff(t, want, got, approx)
}

func TestVec3TweenEndpoints(t *testing.T) {
	from, to := Vec3Of(0.1, 0.2, 0.3), Vec3Of(0.7, -0.4, 1e-17)
	for _, k := range tween.Kinds() {
		c := tween.NewWith(tween.Methods[Vec3]{}, k, from, to, 1.5)
		diff(t, from, c.Run(0))
		diff(t, to, c.Run(1.5))
	}
}

func TestVec2Oscillate(t *testing.T) {
	c := tween.NewWith(tween.Methods[Vec2]{}, tween.QuadInOut, Vec(0, 0), Vec(10, 20), 1.0)
	osc := tween.MustOscillate(c)
	tw := tween.NewDeltaTweener(osc)

	tw.Step(1)
	diff(t, Vec(10, 20), tw.Value())
	tw.Step(1)
	diff(t, Vec(0, 0), tw.Value())
	diff(t, c.Run(0.25), osc.Run(1.75), approx)
}
