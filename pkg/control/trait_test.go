package control_test

import (
	"image"
	"testing"

	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/style"
	fadertest "github.com/go-fader/fader/pkg/testing"
)

func TestStyleTraitMarksOwnerDirtyWithoutNotifying(t *testing.T) {
	d := fadertest.NewDelegate(testParams())
	p := newProbe(graphics.RectFromLTWH(0, 0, 50, 50), 3)
	p.Attach(d, &fadertest.UI{})
	d.Reset()

	trait := control.NewStyleTrait(style.Default())
	trait.AttachTo(p)
	p.SetClean()

	trait.SetColor(style.Foreground, graphics.ColorWhite)
	if !p.Dirty() {
		t.Error("SetColor did not mark the owner dirty")
	}
	if len(d.Sent) != 0 {
		t.Errorf("style change sent %d notifications, want 0", len(d.Sent))
	}
	if got := trait.Color(style.Foreground); got != graphics.ColorWhite {
		t.Errorf("Color(Foreground) = %v, want white", got)
	}

	p.SetClean()
	trait.SetRoundness(0.5)
	if !p.Dirty() || trait.Spec().Roundness != 0.5 {
		t.Error("SetRoundness did not update and mark dirty")
	}

	// Roundness clamps to [0,1].
	trait.SetRoundness(3)
	if trait.Spec().Roundness != 1 {
		t.Errorf("Roundness = %v after out-of-range set, want 1", trait.Spec().Roundness)
	}
}

func TestStyleTraitAdjustedHandleBounds(t *testing.T) {
	spec := style.Default()
	spec.FrameThickness = 2
	spec.ShadowOffset = 3
	spec.DrawFrame = true
	spec.DrawShadows = true
	spec.Emboss = false
	trait := control.NewStyleTrait(spec)

	got := trait.AdjustedHandleBounds(graphics.Rect{Left: 0, Top: 0, Right: 20, Bottom: 20})
	// Inset by half the frame stroke, then room for the drop shadow.
	want := graphics.Rect{Left: 1, Top: 1, Right: 16, Bottom: 16}
	if got != want {
		t.Errorf("AdjustedHandleBounds = %+v, want %+v", got, want)
	}
}

func TestStyleTraitDrawHandlePressed(t *testing.T) {
	trait := control.NewStyleTrait(style.Default())

	var r fadertest.Renderer
	trait.DrawHandle(&r, graphics.RectFromLTWH(0, 0, 20, 20), true, false)

	pressed := trait.Color(style.Pressed)
	found := false
	for _, op := range r.Ops {
		if op.Kind == "fillRoundRect" && op.Color == pressed {
			found = true
		}
	}
	if !found {
		t.Error("pressed handle not filled with the pressed color")
	}
}

func TestBitmapTraitGrayOutAdjustsBlendWeight(t *testing.T) {
	p := newProbe(graphics.RectFromLTWH(0, 0, 50, 50))
	trait := control.NewBitmapTrait(graphics.Bitmap{}, graphics.DefaultBlend())
	trait.AttachTo(p)
	p.SetClean()

	trait.GrayOut(true)
	if got := trait.Blend().Weight; got != control.GrayedBlendWeight {
		t.Errorf("grayed blend weight = %v, want %v", got, control.GrayedBlendWeight)
	}
	if !p.Dirty() {
		t.Error("GrayOut did not mark the owner dirty")
	}

	trait.GrayOut(false)
	if got := trait.Blend().Weight; got != 1 {
		t.Errorf("restored blend weight = %v, want 1", got)
	}
}

func testFilmStrip(t *testing.T, w, h, frames int) graphics.Bitmap {
	t.Helper()
	return graphics.NewFilmStrip(image.NewRGBA(image.Rect(0, 0, w, h)), frames, false)
}

func TestBitmapControlGrayOut(t *testing.T) {
	bm := testFilmStrip(t, 10, 30, 3)
	c := control.NewBitmapControl(graphics.RectFromLTWH(0, 0, 10, 10), control.NoParam, bm)

	c.GrayOut(true)
	if !c.Grayed() {
		t.Error("control not grayed")
	}
	if got := c.Blend().Weight; got != control.GrayedBlendWeight {
		t.Errorf("blend weight = %v, want %v", got, control.GrayedBlendWeight)
	}
}

func TestBitmapControlDrawsFrameForValue(t *testing.T) {
	bm := testFilmStrip(t, 10, 30, 3)
	c := control.NewBitmapControl(graphics.RectFromLTWH(0, 0, 10, 10), control.NoParam, bm)
	c.SetValue(1, 0)

	var r fadertest.Renderer
	c.Draw(&r)

	if len(r.Ops) != 1 || r.Ops[0].Kind != "drawBitmapFrame" {
		t.Fatalf("draw recorded %+v, want one drawBitmapFrame", r.Ops)
	}
	if got := r.Ops[0].Frame; got != 2 {
		t.Errorf("frame = %d at value 1, want last frame 2", got)
	}
}
