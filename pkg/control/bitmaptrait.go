package control

import "github.com/go-fader/fader/pkg/graphics"

// GrayedBlendWeight is the opacity a grayed-out bitmap draws with.
const GrayedBlendWeight = 0.25

// BitmapTrait gives a bitmap-drawn control its film strip and blend mode.
// Like StyleTrait it is composed, not inherited, and holds only a redraw
// back-reference to its owner.
type BitmapTrait struct {
	owner  Redrawer
	bitmap graphics.Bitmap
	blend  graphics.Blend
}

// NewBitmapTrait returns a trait over the given film strip.
func NewBitmapTrait(bitmap graphics.Bitmap, blend graphics.Blend) BitmapTrait {
	return BitmapTrait{bitmap: bitmap, blend: blend}
}

// AttachTo wires the owning control for redraw signaling.
func (t *BitmapTrait) AttachTo(owner Redrawer) { t.owner = owner }

func (t *BitmapTrait) markDirty() {
	if t.owner != nil {
		t.owner.SetDirty(false, AllValues)
	}
}

// Bitmap returns the film strip.
func (t *BitmapTrait) Bitmap() graphics.Bitmap { return t.bitmap }

// SetBitmap replaces the film strip and requests a redraw.
func (t *BitmapTrait) SetBitmap(bitmap graphics.Bitmap) {
	t.bitmap = bitmap
	t.markDirty()
}

// Blend returns the compositing mode and weight.
func (t *BitmapTrait) Blend() graphics.Blend { return t.blend }

// SetBlend replaces the compositing mode and requests a redraw.
func (t *BitmapTrait) SetBlend(blend graphics.Blend) {
	t.blend = blend
	t.markDirty()
}

// GrayOut dims the bitmap by dropping the blend weight rather than
// recoloring it, and restores full opacity when ungrayed.
func (t *BitmapTrait) GrayOut(gray bool) {
	if gray {
		t.blend.Weight = GrayedBlendWeight
	} else {
		t.blend.Weight = 1
	}
	t.markDirty()
}

// Rescale resamples the film strip for a new draw scale.
func (t *BitmapTrait) Rescale(scale float64) {
	t.bitmap = t.bitmap.Rescaled(scale)
}
