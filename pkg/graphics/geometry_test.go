package graphics

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Right != 40 || r.Bottom != 60 {
		t.Errorf("RectFromLTWH = %+v, want right 40 bottom 60", r)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("Width/Height = %v/%v, want 30/40", r.Width(), r.Height())
	}
}

func TestContainsInclusive(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	cases := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0, 0, true},
		{10, 10, true},
		{10.001, 5, false},
		{-0.001, 5, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestConstrain(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	x, y := r.Constrain(-5, 20)
	if x != 0 || y != 10 {
		t.Errorf("Constrain(-5, 20) = (%v, %v), want (0, 10)", x, y)
	}
}

func TestSubRect(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 30, Bottom: 90}

	if got := r.SubRect(Horizontal, 3, 1); got != (Rect{Left: 10, Top: 0, Right: 20, Bottom: 90}) {
		t.Errorf("horizontal cell 1 = %+v", got)
	}
	if got := r.SubRect(Vertical, 3, 2); got != (Rect{Left: 0, Top: 60, Right: 30, Bottom: 90}) {
		t.Errorf("vertical cell 2 = %+v", got)
	}
}

func TestFracRect(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 100, Bottom: 50}

	if got := r.FracRect(Horizontal, 0.5); got != (Rect{Left: 0, Top: 0, Right: 50, Bottom: 50}) {
		t.Errorf("horizontal half = %+v", got)
	}
	// Vertical fills grow from the bottom.
	if got := r.FracRect(Vertical, 0.5); got != (Rect{Left: 0, Top: 25, Right: 100, Bottom: 50}) {
		t.Errorf("vertical half = %+v", got)
	}
}

func TestDirectionCross(t *testing.T) {
	if Horizontal.Cross() != Vertical || Vertical.Cross() != Horizontal {
		t.Error("Cross is not an involution")
	}
}

func TestPadded(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}
	if got := r.Padded(-2); got != (Rect{Left: 12, Top: 12, Right: 18, Bottom: 18}) {
		t.Errorf("Padded(-2) = %+v", got)
	}
	if got := r.Padded4(0, 0, -3, -3); got != (Rect{Left: 10, Top: 10, Right: 17, Bottom: 17}) {
		t.Errorf("Padded4 = %+v", got)
	}
}
