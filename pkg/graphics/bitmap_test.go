package graphics

import (
	"image"
	"testing"
)

func strip(w, h, frames int, horizontal bool) Bitmap {
	return NewFilmStrip(image.NewRGBA(image.Rect(0, 0, w, h)), frames, horizontal)
}

func TestFrameForValue(t *testing.T) {
	b := strip(10, 60, 6, false)
	cases := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{1, 5},
		{0.5, 2},
		{-1, 0},
		{2, 5},
	}
	for _, c := range cases {
		if got := b.FrameForValue(c.value); got != c.want {
			t.Errorf("FrameForValue(%v) = %d, want %d", c.value, got, c.want)
		}
	}
}

func TestFrameRectVertical(t *testing.T) {
	b := strip(10, 60, 6, false)
	if got := b.FrameRect(2); got != image.Rect(0, 20, 10, 30) {
		t.Errorf("FrameRect(2) = %v, want (0,20)-(10,30)", got)
	}
	if b.FrameWidth() != 10 || b.FrameHeight() != 10 {
		t.Errorf("frame size = %vx%v, want 10x10", b.FrameWidth(), b.FrameHeight())
	}
}

func TestFrameRectHorizontal(t *testing.T) {
	b := strip(60, 10, 6, true)
	if got := b.FrameRect(5); got != image.Rect(50, 0, 60, 10) {
		t.Errorf("FrameRect(5) = %v, want last horizontal frame", got)
	}
}

func TestRescaledPreservesLayout(t *testing.T) {
	b := strip(10, 60, 6, false)
	r := b.Rescaled(2)

	if r.Scale() != 2 || r.Frames() != 6 {
		t.Fatalf("rescaled scale=%v frames=%d, want 2 and 6", r.Scale(), r.Frames())
	}
	if got := r.Image().Bounds(); got != image.Rect(0, 0, 20, 120) {
		t.Errorf("rescaled pixels = %v, want 20x120", got)
	}
	// Logical frame size is unchanged.
	if r.FrameWidth() != 10 || r.FrameHeight() != 10 {
		t.Errorf("logical frame size = %vx%v, want 10x10", r.FrameWidth(), r.FrameHeight())
	}
}

func TestInvalidBitmap(t *testing.T) {
	var b Bitmap
	if b.Valid() {
		t.Error("zero bitmap reports valid")
	}
	if b.FrameWidth() != 0 || b.FrameHeight() != 0 {
		t.Error("zero bitmap has nonzero frame size")
	}
	if got := b.Rescaled(2); got.Valid() {
		t.Error("rescaling a zero bitmap produced pixels")
	}
}
