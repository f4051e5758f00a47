package control_test

import (
	"math"
	"testing"

	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
	"github.com/go-fader/fader/pkg/param"
	fadertest "github.com/go-fader/fader/pkg/testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestKnobVerticalDragScenario(t *testing.T) {
	// Gearing 4, extent 200: a 40-unit upward drag adds 40/(200*4).
	k := control.NewKnob(graphics.RectFromLTWH(0, 0, 50, 200), control.NoParam, graphics.Vertical)
	k.SetValue(0.5, 0)

	k.OnMouseDrag(25, 100, 0, -40, input.Mods{})

	if got := k.Value(0); !almostEqual(got, 0.55) {
		t.Errorf("value after drag = %v, want 0.55", got)
	}
}

func TestKnobHorizontalDrag(t *testing.T) {
	k := control.NewKnob(graphics.RectFromLTWH(0, 0, 100, 50), control.NoParam, graphics.Horizontal)
	k.SetValue(0.5, 0)

	// Rightward motion increases.
	k.OnMouseDrag(50, 25, 40, 0, input.Mods{})
	if got := k.Value(0); !almostEqual(got, 0.6) {
		t.Errorf("value after rightward drag = %v, want 0.6", got)
	}
}

func TestKnobDragClamps(t *testing.T) {
	k := control.NewKnob(graphics.RectFromLTWH(0, 0, 50, 100), control.NoParam, graphics.Vertical)
	k.SetValue(0.9, 0)

	k.OnMouseDrag(25, 0, 0, -1000, input.Mods{})
	if got := k.Value(0); got != 1 {
		t.Errorf("value after huge drag = %v, want clamp to 1", got)
	}

	k.OnMouseDrag(25, 0, 0, 1000, input.Mods{})
	if got := k.Value(0); got != 0 {
		t.Errorf("value after huge reverse drag = %v, want clamp to 0", got)
	}
}

func TestKnobFineDrag(t *testing.T) {
	k := control.NewKnob(graphics.RectFromLTWH(0, 0, 50, 200), control.NoParam, graphics.Vertical)
	k.SetValue(0.5, 0)

	// Shift multiplies the gearing by the fine factor (default 10).
	k.OnMouseDrag(25, 100, 0, -40, input.Mods{Shift: true})

	if got := k.Value(0); !almostEqual(got, 0.505) {
		t.Errorf("value after fine drag = %v, want 0.505", got)
	}
}

func TestKnobWheel(t *testing.T) {
	k := control.NewKnob(graphics.RectFromLTWH(0, 0, 50, 50), control.NoParam, graphics.Vertical)
	k.SetValue(0.5, 0)

	k.OnMouseWheel(25, 25, input.Mods{}, 1)
	if got := k.Value(0); !almostEqual(got, 0.51) {
		t.Errorf("value after wheel = %v, want 0.51", got)
	}

	k.OnMouseWheel(25, 25, input.Mods{Shift: true}, 1)
	if got := k.Value(0); !almostEqual(got, 0.511) {
		t.Errorf("value after fine wheel = %v, want 0.511", got)
	}

	k.OnMouseWheel(25, 25, input.Mods{}, -2)
	if got := k.Value(0); !almostEqual(got, 0.491) {
		t.Errorf("value after reverse wheel = %v, want 0.491", got)
	}
}

func TestKnobDragNotifiesBoundParam(t *testing.T) {
	d := fadertest.NewDelegate(map[int]*param.Param{
		0: param.New("Gain", 0, 1, 0, ""),
	})
	k := control.NewKnob(graphics.RectFromLTWH(0, 0, 50, 100), 0, graphics.Vertical)
	k.Attach(d, &fadertest.UI{})
	d.Reset()

	k.OnMouseDrag(25, 50, 0, -40, input.Mods{})

	if len(d.Sent) != 1 {
		t.Fatalf("drag sent %d notifications, want 1", len(d.Sent))
	}
	if d.Sent[0].ParamIdx != 0 || !almostEqual(d.Sent[0].Value, 0.1) {
		t.Errorf("notification = %+v, want param 0 value 0.1", d.Sent[0])
	}
}
