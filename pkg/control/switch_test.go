package control_test

import (
	"testing"

	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
	"github.com/go-fader/fader/pkg/param"
	fadertest "github.com/go-fader/fader/pkg/testing"
)

func TestSwitchBinaryInverts(t *testing.T) {
	s := control.NewSwitch(graphics.RectFromLTWH(0, 0, 30, 30), control.NoParam, 2)

	s.OnMouseDown(15, 15, input.Mods{})
	if s.Value(0) != 1 {
		t.Errorf("value after first click = %v, want 1", s.Value(0))
	}
	if !s.Pressed() {
		t.Error("switch not pressed while mouse is down")
	}

	s.OnMouseUp(15, 15, input.Mods{})
	if s.Pressed() {
		t.Error("switch still pressed after mouse up")
	}

	s.OnMouseDown(15, 15, input.Mods{})
	if s.Value(0) != 0 {
		t.Errorf("value after second click = %v, want 0", s.Value(0))
	}
}

func TestSwitchCyclesAndWraps(t *testing.T) {
	s := control.NewSwitch(graphics.RectFromLTWH(0, 0, 30, 30), control.NoParam, 3)

	want := []float64{0.5, 1, 0}
	for i, w := range want {
		s.OnMouseDown(15, 15, input.Mods{})
		s.OnMouseUp(15, 15, input.Mods{})
		if got := s.Value(0); !almostEqual(got, w) {
			t.Fatalf("click %d: value = %v, want %v", i+1, got, w)
		}
	}
}

func TestSwitchDerivesStatesFromParam(t *testing.T) {
	d := fadertest.NewDelegate(map[int]*param.Param{
		0: param.NewEnum("Mode", 0, "Off", "On", "Auto", "Hold"),
	})
	s := control.NewSwitch(graphics.RectFromLTWH(0, 0, 30, 30), 0, 2)
	s.Attach(d, &fadertest.UI{})

	if got := s.NumStates(); got != 4 {
		t.Errorf("NumStates after attach = %d, want 4 from the parameter", got)
	}
}

func TestSwitchClickNotifies(t *testing.T) {
	d := fadertest.NewDelegate(map[int]*param.Param{
		0: param.NewEnum("Mode", 0, "Off", "On"),
	})
	s := control.NewSwitch(graphics.RectFromLTWH(0, 0, 30, 30), 0, 2)
	s.Attach(d, &fadertest.UI{})
	d.Reset()

	s.OnMouseDown(15, 15, input.Mods{})
	if len(d.Sent) != 1 || d.Sent[0] != (fadertest.Notification{ParamIdx: 0, Value: 1}) {
		t.Errorf("click sent %+v, want one notification for param 0 value 1", d.Sent)
	}
}
