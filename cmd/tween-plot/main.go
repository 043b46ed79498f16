// Command tween-plot draws easing curves in the terminal.
//
// Usage:
//
//	tween-plot -curve elastic-out
//	tween-plot -curve bounce-out -period 3s
//
// Left and right arrows cycle through the curve kinds. A marker sweeps the
// curve once per period; q, Esc or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	tween "github.com/tphakala/go-tween"
)

const (
	defaultCurve  = "elastic-out"
	defaultPeriod = 2 * time.Second
	defaultLeft   = "#1f77b4"
	defaultRight  = "#ff7f0e"

	frameInterval = 16 * time.Millisecond // ~60 FPS
	eventBuffer   = 100
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	curve := flag.String("curve", defaultCurve, "Initial curve kind")
	period := flag.Duration("period", defaultPeriod, "Marker sweep period")
	left := flag.String("left", defaultLeft, "Curve color at t = 0")
	right := flag.String("right", defaultRight, "Curve color at t = duration")
	flag.Parse()

	kinds := tween.Kinds()
	kind, err := tween.ParseKind(*curve)
	if err != nil {
		return err
	}
	idx := indexOf(kinds, kind)
	if idx < 0 {
		return fmt.Errorf("%w: %s cannot be plotted", tween.ErrInvalidConfig, kind)
	}
	if *period <= 0 {
		return fmt.Errorf("%w: period must be positive", tween.ErrInvalidConfig)
	}

	from, err := colorful.Hex(*left)
	if err != nil {
		return fmt.Errorf("invalid -left color: %w", err)
	}
	to, err := colorful.Hex(*right)
	if err != nil {
		return fmt.Errorf("invalid -right color: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		kinds:  kinds,
		idx:    idx,
		from:   from,
		to:     to,
		sweep:  tween.NewDeltaTweener(tween.MustLoop(tween.NewLinear(0.0, 1.0, period.Seconds()))),
	}
	v.rebuild()
	v.loop()
	return nil
}

func indexOf(kinds []tween.Kind, k tween.Kind) int {
	for i, kk := range kinds {
		if kk == k {
			return i
		}
	}
	return -1
}

type viewer struct {
	screen   tcell.Screen
	kinds    []tween.Kind
	idx      int
	from, to colorful.Color
	plot     *plot
	sweep    *tween.DeltaTweener[float64, float64]
}

func (v *viewer) rebuild() {
	width, _ := v.screen.Size()
	v.plot = newPlot(v.kinds[v.idx], width, v.from, v.to)
}

// cycle moves to the next or previous kind, wrapping around.
func (v *viewer) cycle(delta int) {
	n := len(v.kinds)
	v.idx = ((v.idx+delta)%n + n) % n
	v.rebuild()
}

func (v *viewer) draw() {
	width, height := v.screen.Size()
	marker := int(v.sweep.Value() * float64(width-1))

	v.screen.Clear()
	v.plot.draw(v.screen, width, height, marker)
	v.screen.Show()
}

// handleInput returns false when the viewer should exit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyLeft:
			v.cycle(-1)
		case ev.Key() == tcell.KeyRight:
			v.cycle(1)
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.rebuild()
	}
	return true
}

func (v *viewer) loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			v.sweep.Step(now.Sub(last).Seconds())
			last = now
			v.draw()
		}
	}
}
