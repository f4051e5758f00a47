package control

import (
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
)

// DefaultHandleSize is the slider handle extent along the primary axis
// when none is configured.
const DefaultHandleSize = 10.0

// Slider is the base for fader-style controls using absolute-position
// ballistics: the pointer position projected onto the track becomes the
// value directly. It draws nothing itself.
type Slider struct {
	Base

	direction  graphics.Direction
	track      graphics.Rect
	onlyHandle bool
	handleSize float64
	scalar     float64
	dragging   bool
}

// NewSlider returns a slider base over bounds, optionally bound to a
// parameter (pass NoParam to leave it unbound).
func NewSlider(bounds graphics.Rect, paramIdx int, direction graphics.Direction) *Slider {
	s := &Slider{
		Base:      NewBase(bounds, paramIdx),
		direction: direction,
		scalar:    1,
	}
	s.track = bounds
	s.SetSelf(s)
	return s
}

// Direction returns the travel axis.
func (s *Slider) Direction() graphics.Direction { return s.direction }

// Track returns the rectangle mouse positions project onto.
func (s *Slider) Track() graphics.Rect { return s.track }

// SetOnlyHandle restricts snapping to begin only when the mouse goes down
// inside the handle, rather than anywhere on the track. Once engaged the
// handle tracks every drag regardless of position.
func (s *Slider) SetOnlyHandle(only bool) { s.onlyHandle = only }

// SetHandleSize sets the handle extent along the primary axis.
func (s *Slider) SetHandleSize(size float64) { s.handleSize = size }

// SetScalar rescales the snap mapping; above 1 the handle travels slower
// than the mouse.
func (s *Slider) SetScalar(scalar float64) { s.scalar = scalar }

// Dragging reports whether a snap gesture is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// HandleBounds returns the handle rectangle for the current value: a
// handle-sized slice of the track centered on the value's position, full
// width across the other axis.
func (s *Slider) HandleBounds() graphics.Rect {
	size := s.handleSize
	if size <= 0 {
		size = DefaultHandleSize
	}
	half := size / 2
	v := s.Value(0)
	if s.direction == graphics.Vertical {
		cy := s.track.Bottom - v*s.track.Height()
		return graphics.Rect{Left: s.track.Left, Top: cy - half, Right: s.track.Right, Bottom: cy + half}
	}
	cx := s.track.Left + v*s.track.Width()
	return graphics.Rect{Left: cx - half, Top: s.track.Top, Right: cx + half, Bottom: s.track.Bottom}
}

// OnResize re-derives the track from the control bounds.
func (s *Slider) OnResize() {
	s.track = s.Bounds()
}

// OnMouseDown begins a snap gesture. In only-handle mode the down event
// must land inside the handle; elsewhere on the track it falls through to
// the default handler.
func (s *Slider) OnMouseDown(x, y float64, mods input.Mods) {
	if s.onlyHandle && !s.HandleBounds().Contains(x, y) {
		s.Base.OnMouseDown(x, y, mods)
		return
	}
	s.dragging = true
	s.SnapToMouse(x, y, s.direction, s.track, AllValues, s.scalar)
}

// OnMouseDrag continues an engaged snap gesture unconditionally,
// wherever the pointer is.
func (s *Slider) OnMouseDrag(x, y, dx, dy float64, mods input.Mods) {
	if s.onlyHandle && !s.dragging {
		return
	}
	s.SnapToMouse(x, y, s.direction, s.track, AllValues, s.scalar)
}

// OnMouseUp ends the snap gesture.
func (s *Slider) OnMouseUp(x, y float64, mods input.Mods) {
	s.dragging = false
}
