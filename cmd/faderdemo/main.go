// Package main runs a headless demo surface: a handful of widgets bound to
// fake parameters, a redraw loop, and the inspect server publishing a
// snapshot every tick. Point a browser or websocket client at the inspect
// port to watch the controls move.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/inspect"
	"github.com/go-fader/fader/pkg/param"
	"github.com/go-fader/fader/pkg/style"
	"github.com/go-fader/fader/pkg/surface"
)

// Control tags used by the demo.
const (
	tagGain = iota
	tagMode
	tagPan
	tagMeter
	tagFlash
	tagReadout
)

// demoDelegate owns the fake parameter set and echoes user-input value
// changes to stdout.
type demoDelegate struct {
	params map[int]*param.Param
}

func (d *demoDelegate) Param(paramIdx int) *param.Param {
	return d.params[paramIdx]
}

func (d *demoDelegate) SendValueFromUI(paramIdx int, value float64) {
	p := d.params[paramIdx]
	if p == nil {
		return
	}
	fmt.Printf("param %d (%s) -> %s\n", paramIdx, p.Name, p.DisplayText(p.FromNormalized(value)))
}

// nopRenderer satisfies the draw pass without a display.
type nopRenderer struct{}

func (nopRenderer) FillRect(graphics.Color, graphics.Rect) {}

func (nopRenderer) StrokeRect(graphics.Color, graphics.Rect, float64) {}

func (nopRenderer) FillRoundRect(graphics.Color, graphics.Rect, float64) {}

func (nopRenderer) StrokeRoundRect(graphics.Color, graphics.Rect, float64, float64) {}

func (nopRenderer) FillCircle(graphics.Color, float64, float64, float64) {}

func (nopRenderer) DrawLine(graphics.Color, float64, float64, float64, float64, float64) {}

func (nopRenderer) DrawBitmapFrame(graphics.Bitmap, graphics.Rect, int, graphics.Blend) {}

func (nopRenderer) DrawText(graphics.Color, string, graphics.Rect) {}

func main() {
	port := flag.Int("inspect-port", 8089, "inspect server port (0 for ephemeral)")
	stylePath := flag.String("style", "", "YAML style sheet overriding the default look")
	fps := flag.Int("fps", 60, "redraw ticks per second")
	flag.Parse()

	if err := run(*port, *stylePath, *fps); err != nil {
		fmt.Fprintf(os.Stderr, "faderdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(port int, stylePath string, fps int) error {
	spec := style.Default()
	if stylePath != "" {
		var err error
		if spec, err = style.Load(stylePath); err != nil {
			return err
		}
	}

	delegate := &demoDelegate{params: map[int]*param.Param{
		0: param.New("Gain", -70, 12, 0, "dB"),
		1: param.NewEnum("Mode", 0, "Stereo", "Mono", "Mid/Side"),
		2: param.New("Pan", -1, 1, 0, ""),
	}}

	s := surface.New(delegate)

	knob := control.NewVectorKnob(graphics.RectFromLTWH(20, 20, 60, 60), 0)
	knob.SetSpec(spec)
	s.AttachControl(knob, tagGain, "")

	mode := control.NewVectorSwitch(graphics.RectFromLTWH(100, 20, 80, 30), 1, 3)
	mode.SetSpec(spec)
	s.AttachControl(mode, tagMode, "")

	pan := control.NewVectorSlider(graphics.RectFromLTWH(20, 100, 160, 20), 2, graphics.Horizontal)
	pan.SetSpec(spec)
	s.AttachControl(pan, tagPan, "")

	meter := control.NewTrack(graphics.RectFromLTWH(200, 20, 40, 100), 2, graphics.Vertical)
	meter.SetSpec(spec)
	meter.SetTrackPadding(2)
	s.AttachControl(meter, tagMeter, "meters")

	flash := control.NewVectorButton(graphics.RectFromLTWH(20, 140, 80, 24), "Flash",
		func(c control.Control) { fmt.Println("flash pressed") })
	flash.SetSpec(spec)
	s.AttachControl(flash, tagFlash, "")

	s.AttachControl(control.NewCaption(graphics.RectFromLTWH(110, 140, 130, 24), 0, true), tagReadout, "")

	server := inspect.NewServer()
	boundPort, err := server.Start(port)
	if err != nil {
		return err
	}
	defer server.Stop()
	fmt.Printf("inspect server on http://localhost:%d/controls\n", boundPort)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var renderer nopRenderer
	start := time.Now()
	for {
		select {
		case <-sigs:
			fmt.Println("shutting down")
			return nil
		case <-ticker.C:
			// Fake a stereo level so the meter moves.
			t := time.Since(start).Seconds()
			for ch := 0; ch < meter.NumTracks(); ch++ {
				level := 0.5 + 0.45*math.Sin(2*math.Pi*(0.3*t+0.25*float64(ch)))
				meter.SetValue(level, ch)
			}
			meter.SetDirty(false, control.AllValues)

			if err := server.Publish(inspect.Capture(s)); err != nil {
				fmt.Fprintf(os.Stderr, "faderdemo: %v\n", err)
			}
			s.Redraw(renderer)
		}
	}
}
