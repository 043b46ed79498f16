package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/sample"
	"github.com/tphakala/go-tween/tweencolor"
)

const (
	curveGlyph    = '•'
	baselineGlyph = '·'
	titleRows     = 1
)

// canvas is the part of tcell.Screen a plot draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// plot is a curve kind sampled once per terminal column.
type plot struct {
	kind    tween.Kind
	values  []float64
	colors  []tcell.Color
	lo, hi  float64
	profile sample.Profile
}

// newPlot samples kind from 0 to 1 over width columns. The curve is colored
// with a Lab blend from left to right.
func newPlot(kind tween.Kind, width int, left, right colorful.Color) *plot {
	width = max(width, 1)
	values := sample.Sample(make([]float64, width), tween.New(kind, 0.0, 1.0, 1.0))
	profile := sample.Analyze(values, 0, 1)

	shades := sample.Sample(make([]colorful.Color, width), tweencolor.NewLab(tween.Linear, left, right, 1.0))
	colors := make([]tcell.Color, width)
	for i, c := range shades {
		colors[i] = toTcell(c)
	}

	return &plot{
		kind:    kind,
		values:  values,
		colors:  colors,
		lo:      min(0, profile.Min),
		hi:      max(1, profile.Max),
		profile: profile,
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// row maps v to a row in [0, rows), with hi at the top.
func (p *plot) row(v float64, rows int) int {
	if rows <= 1 || p.hi == p.lo {
		return 0
	}
	r := int(math.Round((p.hi - v) / (p.hi - p.lo) * float64(rows-1)))
	return min(max(r, 0), rows-1)
}

// draw renders the plot into a width x height area. The column at marker
// is highlighted; a negative marker draws none.
func (p *plot) draw(c canvas, width, height, marker int) {
	title := fmt.Sprintf("%s  overshoot %.3f  undershoot %.3f  [left/right: curve, q: quit]",
		p.kind, p.profile.Overshoot, p.profile.Undershoot)
	drawText(c, 0, 0, width, tcell.StyleDefault.Bold(true), title)

	rows := height - titleRows
	if rows <= 0 {
		return
	}

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	zero, one := p.row(0, rows), p.row(1, rows)
	for x := range min(width, len(p.values)) {
		c.SetContent(x, titleRows+zero, baselineGlyph, nil, dim)
		c.SetContent(x, titleRows+one, baselineGlyph, nil, dim)
	}

	for x, v := range p.values[:min(width, len(p.values))] {
		style := tcell.StyleDefault.Foreground(p.colors[x])
		if x == marker {
			style = style.Reverse(true)
		}
		c.SetContent(x, titleRows+p.row(v, rows), curveGlyph, nil, style)
	}
}

func drawText(c canvas, x, y, width int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= width {
			return
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
}
