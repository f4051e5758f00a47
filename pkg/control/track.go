package control

import (
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/style"
)

// DefaultPeakSize is the extent of the peak marker along the primary axis.
const DefaultPeakSize = 1.0

// TrackBackgroundDrawer lets a widget replace only the background step of
// per-track drawing.
type TrackBackgroundDrawer interface {
	DrawTrackBackground(r graphics.Renderer, bounds graphics.Rect, track int)
}

// TrackFillDrawer lets a widget replace only the value-fill step.
type TrackFillDrawer interface {
	DrawTrackFill(r graphics.Renderer, bounds graphics.Rect, track int)
}

// PeakDrawer lets a widget replace only the peak marker step.
type PeakDrawer interface {
	DrawPeak(r graphics.Renderer, bounds graphics.Rect, track int)
}

// Track is the base for multi-strip widgets such as meters and
// multi-sliders. One value slot drives each strip. Strip rectangles are
// derived from the bounds and cached, and per-strip drawing runs in three
// steps that a widget can override one at a time through the step
// interfaces above.
type Track struct {
	Base
	StyleTrait

	direction    graphics.Direction
	outerPadding float64
	trackPadding float64
	peakSize     float64
	trackRects   []graphics.Rect
}

// NewTrack returns a track base with n unbound strips.
func NewTrack(bounds graphics.Rect, n int, direction graphics.Direction) *Track {
	if n < 1 {
		n = 1
	}
	params := make([]int, n)
	for i := range params {
		params[i] = NoParam
	}
	return NewTrackWithParams(bounds, direction, params...)
}

// NewTrackWithParams returns a track base with one strip per parameter
// index (pass NoParam for unbound strips).
func NewTrackWithParams(bounds graphics.Rect, direction graphics.Direction, params ...int) *Track {
	t := &Track{
		Base:       NewBase(bounds, params...),
		StyleTrait: NewStyleTrait(style.Default()),
		direction:  direction,
		peakSize:   DefaultPeakSize,
	}
	t.StyleTrait.AttachTo(&t.Base)
	t.SetSelf(t)
	t.makeTrackRects()
	return t
}

// Direction returns the axis the fill grows along.
func (t *Track) Direction() graphics.Direction { return t.direction }

// NumTracks returns the number of strips.
func (t *Track) NumTracks() int { return t.NumValues() }

// TrackRect returns the cached rectangle for one strip.
func (t *Track) TrackRect(i int) graphics.Rect { return t.trackRects[i] }

// SetOuterPadding insets all strips from the control bounds.
func (t *Track) SetOuterPadding(pad float64) {
	t.outerPadding = pad
	t.makeTrackRects()
	t.SetDirty(false, AllValues)
}

// SetTrackPadding insets each strip along the primary axis.
func (t *Track) SetTrackPadding(pad float64) {
	t.trackPadding = pad
	t.makeTrackRects()
	t.SetDirty(false, AllValues)
}

// SetPeakSize sets the peak marker extent along the primary axis.
func (t *Track) SetPeakSize(size float64) {
	t.peakSize = size
	t.SetDirty(false, AllValues)
}

// makeTrackRects slices the padded bounds across the primary axis into one
// equal rectangle per strip, each inset by the per-track padding along the
// primary axis.
func (t *Track) makeTrackRects() {
	n := t.NumValues()
	padded := t.Bounds().Padded(-t.outerPadding)
	t.trackRects = t.trackRects[:0]
	for i := 0; i < n; i++ {
		sub := padded.SubRect(t.direction.Cross(), n, i)
		if t.direction == graphics.Vertical {
			sub = sub.Padded4(0, -t.trackPadding, 0, -t.trackPadding)
		} else {
			sub = sub.Padded4(-t.trackPadding, 0, -t.trackPadding, 0)
		}
		t.trackRects = append(t.trackRects, sub)
	}
}

// OnResize re-derives the strip rectangles.
func (t *Track) OnResize() {
	t.makeTrackRects()
}

// Draw paints every strip through the three-step pipeline.
func (t *Track) Draw(r graphics.Renderer) {
	r.FillRect(t.Color(style.Background), t.Bounds())
	for i := range t.trackRects {
		t.DrawTrack(r, t.trackRects[i], i)
	}
}

// DrawTrack runs the background, fill and peak steps for one strip. Each
// step dispatches through the self-reference so a widget that implements
// the matching step interface replaces only that step.
func (t *Track) DrawTrack(r graphics.Renderer, bounds graphics.Rect, track int) {
	self := t.Self()
	self.(TrackBackgroundDrawer).DrawTrackBackground(r, bounds, track)
	self.(TrackFillDrawer).DrawTrackFill(r, bounds, track)
	self.(PeakDrawer).DrawPeak(r, bounds, track)
}

// DrawTrackBackground is the default background step.
func (t *Track) DrawTrackBackground(r graphics.Renderer, bounds graphics.Rect, track int) {
	r.FillRect(t.Color(style.Shadow), bounds)
}

// DrawTrackFill is the default value-fill step: the strip filled from its
// zero edge up to the current value.
func (t *Track) DrawTrackFill(r graphics.Renderer, bounds graphics.Rect, track int) {
	fill := bounds.FracRect(t.direction, t.Value(track))
	r.FillRect(t.Color(style.Foreground), fill)
}

// DrawPeak is the default peak step: a fixed-size marker at the fill's
// leading edge.
func (t *Track) DrawPeak(r graphics.Renderer, bounds graphics.Rect, track int) {
	fill := bounds.FracRect(t.direction, t.Value(track))
	var peak graphics.Rect
	if t.direction == graphics.Vertical {
		peak = graphics.Rect{Left: bounds.Left, Top: fill.Top, Right: bounds.Right, Bottom: fill.Top + t.peakSize}
	} else {
		peak = graphics.Rect{Left: fill.Right - t.peakSize, Top: bounds.Top, Right: fill.Right, Bottom: bounds.Bottom}
	}
	r.FillRect(t.Color(style.Highlight), peak)
}

var _ Control = (*Track)(nil)
