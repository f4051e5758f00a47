package control

import "github.com/go-fader/fader/pkg/graphics"

// BitmapControl draws a film strip frame selected by its value: frame 0
// for an unbound or single-frame strip, otherwise the frame nearest to
// value × (frames−1). Bound to a parameter it doubles as a bitmap knob or
// switch readout.
type BitmapControl struct {
	Base
	BitmapTrait
}

// NewBitmapControl returns a bitmap control over the given film strip,
// optionally bound to a parameter.
func NewBitmapControl(bounds graphics.Rect, paramIdx int, bitmap graphics.Bitmap) *BitmapControl {
	c := &BitmapControl{
		Base:        NewBase(bounds, paramIdx),
		BitmapTrait: NewBitmapTrait(bitmap, graphics.DefaultBlend()),
	}
	c.BitmapTrait.AttachTo(&c.Base)
	c.SetSelf(c)
	return c
}

// GrayOut dims through the blend weight in addition to the interactivity
// toggle.
func (c *BitmapControl) GrayOut(gray bool) {
	c.Base.GrayOut(gray)
	c.BitmapTrait.GrayOut(gray)
}

// OnRescale swaps in a resampled strip for the current draw scale.
func (c *BitmapControl) OnRescale() {
	if u := c.UI(); u != nil {
		c.Rescale(u.DrawScale())
	}
}

func (c *BitmapControl) Draw(r graphics.Renderer) {
	bm := c.Bitmap()
	if !bm.Valid() {
		return
	}
	r.DrawBitmapFrame(bm, c.Bounds(), bm.FrameForValue(c.Value(0)), c.Blend())
}

var _ Control = (*BitmapControl)(nil)
