package graphics

import (
	"image"

	"golang.org/x/image/draw"
)

// Bitmap is a raster image shared by bitmap-based controls. A bitmap may be
// a film strip of N frames stacked along one axis; a control picks the frame
// for its current value. Bitmaps are value types holding a reference to
// pixel data owned elsewhere, so copying one is cheap.
type Bitmap struct {
	image               image.Image
	frames              int
	framesAreHorizontal bool
	// scale is the DPI scale the pixel data was rendered for.
	scale float64
}

// NewBitmap wraps an image as a single-frame bitmap at scale 1.
func NewBitmap(img image.Image) Bitmap {
	return NewFilmStrip(img, 1, false)
}

// NewFilmStrip wraps an image holding frames stacked along one axis.
func NewFilmStrip(img image.Image, frames int, horizontal bool) Bitmap {
	if frames < 1 {
		frames = 1
	}
	return Bitmap{image: img, frames: frames, framesAreHorizontal: horizontal, scale: 1}
}

// Valid reports whether the bitmap references pixel data.
func (b Bitmap) Valid() bool { return b.image != nil }

// Frames returns the number of frames in the strip.
func (b Bitmap) Frames() int { return b.frames }

// Scale returns the DPI scale of the pixel data.
func (b Bitmap) Scale() float64 { return b.scale }

// Image returns the underlying pixel data.
func (b Bitmap) Image() image.Image { return b.image }

// FrameWidth returns the width of one frame in logical units.
func (b Bitmap) FrameWidth() float64 {
	if b.image == nil {
		return 0
	}
	w := float64(b.image.Bounds().Dx())
	if b.framesAreHorizontal {
		w /= float64(b.frames)
	}
	return w / b.scale
}

// FrameHeight returns the height of one frame in logical units.
func (b Bitmap) FrameHeight() float64 {
	if b.image == nil {
		return 0
	}
	h := float64(b.image.Bounds().Dy())
	if !b.framesAreHorizontal {
		h /= float64(b.frames)
	}
	return h / b.scale
}

// FrameForValue maps a normalized value to a frame index, clamped to the
// strip. Value 0 is the first frame, value 1 the last.
func (b Bitmap) FrameForValue(value float64) int {
	frame := int(Clamp01(value) * float64(b.frames-1))
	if frame < 0 {
		frame = 0
	}
	if frame >= b.frames {
		frame = b.frames - 1
	}
	return frame
}

// FrameRect returns the pixel rectangle of the given frame within the
// underlying image.
func (b Bitmap) FrameRect(frame int) image.Rectangle {
	if b.image == nil {
		return image.Rectangle{}
	}
	bounds := b.image.Bounds()
	if b.frames <= 1 {
		return bounds
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= b.frames {
		frame = b.frames - 1
	}
	if b.framesAreHorizontal {
		w := bounds.Dx() / b.frames
		return image.Rect(bounds.Min.X+frame*w, bounds.Min.Y, bounds.Min.X+(frame+1)*w, bounds.Max.Y)
	}
	h := bounds.Dy() / b.frames
	return image.Rect(bounds.Min.X, bounds.Min.Y+frame*h, bounds.Max.X, bounds.Min.Y+(frame+1)*h)
}

// Rescaled resamples the bitmap for a new DPI scale, e.g. when the surface
// moves to a high-DPI screen. The frame count and layout are preserved.
func (b Bitmap) Rescaled(scale float64) Bitmap {
	if b.image == nil || scale <= 0 || scale == b.scale {
		return b
	}
	src := b.image.Bounds()
	factor := scale / b.scale
	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(src.Dx())*factor+0.5),
		int(float64(src.Dy())*factor+0.5)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), b.image, src, draw.Over, nil)
	return Bitmap{image: dst, frames: b.frames, framesAreHorizontal: b.framesAreHorizontal, scale: scale}
}
