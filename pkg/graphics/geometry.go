package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Direction is the axis a control's travel is mapped along.
type Direction int

const (
	// Horizontal means value increases rightward.
	Horizontal Direction = iota
	// Vertical means value increases upward.
	Vertical
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cross returns the perpendicular direction.
func (d Direction) Cross() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Extent returns the rectangle's span along the given direction.
func (r Rect) Extent(d Direction) float64 {
	if d == Vertical {
		return r.Height()
	}
	return r.Width()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies inside the rectangle.
// Containment is inclusive on all four edges.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Constrain clamps the point to the rectangle.
func (r Rect) Constrain(x, y float64) (float64, float64) {
	return math.Min(math.Max(x, r.Left), r.Right),
		math.Min(math.Max(y, r.Top), r.Bottom)
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Padded returns the rect grown by d on every side. Negative d shrinks.
func (r Rect) Padded(d float64) Rect {
	return Rect{
		Left:   r.Left - d,
		Top:    r.Top - d,
		Right:  r.Right + d,
		Bottom: r.Bottom + d,
	}
}

// Padded4 returns the rect grown by the given amount on each side
// independently. Negative values shrink.
func (r Rect) Padded4(left, top, right, bottom float64) Rect {
	return Rect{
		Left:   r.Left - left,
		Top:    r.Top - top,
		Right:  r.Right + right,
		Bottom: r.Bottom + bottom,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// SubRect slices the rect into count equal cells along d and returns the
// cell at index. Used to lay out multi-track controls.
func (r Rect) SubRect(d Direction, count, index int) Rect {
	if count <= 0 {
		return r
	}
	if d == Horizontal {
		w := r.Width() / float64(count)
		l := r.Left + w*float64(index)
		return Rect{Left: l, Top: r.Top, Right: l + w, Bottom: r.Bottom}
	}
	h := r.Height() / float64(count)
	t := r.Top + h*float64(index)
	return Rect{Left: r.Left, Top: t, Right: r.Right, Bottom: t + h}
}

// FracRect returns the portion of the rect covered by frac of its extent
// along d: from the left edge for horizontal, from the bottom edge for
// vertical, matching a fader's fill growing with its value.
func (r Rect) FracRect(d Direction, frac float64) Rect {
	if d == Horizontal {
		return Rect{Left: r.Left, Top: r.Top, Right: r.Left + frac*r.Width(), Bottom: r.Bottom}
	}
	return Rect{Left: r.Left, Top: r.Bottom - frac*r.Height(), Right: r.Right, Bottom: r.Bottom}
}
