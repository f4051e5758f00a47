package control_test

import (
	"testing"

	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/param"
	fadertest "github.com/go-fader/fader/pkg/testing"
)

func TestVectorKnobCircularHit(t *testing.T) {
	k := control.NewVectorKnob(graphics.RectFromLTWH(0, 0, 40, 40), control.NoParam)

	if !k.IsHit(20, 20) {
		t.Error("center not hit")
	}
	if !k.IsHit(20, 1) {
		t.Error("top of the circle not hit")
	}
	// Square corners fall outside the circle.
	if k.IsHit(2, 2) {
		t.Error("corner hit despite circular shape")
	}
}

func TestVectorKnobIndicatorStartsAtCenter(t *testing.T) {
	k := control.NewVectorKnob(graphics.RectFromLTWH(0, 0, 40, 40), control.NoParam)
	k.SetValue(0.5, 0)

	var r fadertest.Renderer
	k.Draw(&r)
	for _, op := range r.Ops {
		if op.Kind != "drawLine" {
			continue
		}
		if op.Rect.Left != 20 || op.Rect.Top != 20 {
			t.Errorf("indicator starts at (%v, %v), want the bounds center (20, 20)", op.Rect.Left, op.Rect.Top)
		}
		return
	}
	t.Error("no indicator line drawn")
}

func TestPanelIgnoresMouse(t *testing.T) {
	p := control.NewPanel(graphics.RectFromLTWH(0, 0, 100, 100), graphics.ColorDarkGray)
	if !p.IgnoresMouse() {
		t.Error("panel does not ignore mouse")
	}

	var r fadertest.Renderer
	p.Draw(&r)
	if len(r.Ops) != 1 || r.Ops[0].Color != graphics.ColorDarkGray {
		t.Errorf("panel drew %+v", r.Ops)
	}
}

func TestLabelSetTextMarksDirty(t *testing.T) {
	l := control.NewLabel(graphics.RectFromLTWH(0, 0, 100, 20), "hello")
	l.SetClean()

	l.SetText("world")
	if !l.Dirty() {
		t.Error("SetText did not mark dirty")
	}

	var r fadertest.Renderer
	l.Draw(&r)
	if len(r.Ops) != 1 || r.Ops[0].Text != "world" {
		t.Errorf("label drew %+v", r.Ops)
	}
}

func TestCaptionShowsParamDisplayText(t *testing.T) {
	d := fadertest.NewDelegate(map[int]*param.Param{
		0: param.NewEnum("Mode", 0, "Off", "On", "Auto"),
	})
	c := control.NewCaption(graphics.RectFromLTWH(0, 0, 100, 20), 0, true)
	c.Attach(d, &fadertest.UI{})
	c.SetValueFromDelegate(1, 0)

	var r fadertest.Renderer
	c.Draw(&r)
	if len(r.Ops) != 1 || r.Ops[0].Text != "Mode: Auto" {
		t.Errorf("caption drew %q, want \"Mode: Auto\"", r.Ops[0].Text)
	}
}

func TestVectorSliderDrawUsesHandle(t *testing.T) {
	s := control.NewVectorSlider(graphics.RectFromLTWH(0, 0, 100, 20), control.NoParam, graphics.Horizontal)
	s.SetValue(0.5, 0)

	var r fadertest.Renderer
	s.Draw(&r)
	if r.CountKind("fillRoundRect") == 0 {
		t.Error("slider handle not drawn with the shared handle helper")
	}
}
