package control

import (
	"math"

	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/style"
)

// Angular sweep of the knob indicator, in degrees from twelve o'clock.
const (
	knobAngleMin = -135.0
	knobAngleMax = 135.0
)

// VectorKnob is a knob drawn from style primitives: a circular body with a
// value indicator line. Hit testing is circular so clicks in the square
// corners fall through.
type VectorKnob struct {
	Knob
	StyleTrait
}

// NewVectorKnob returns a vertical-drag vector knob bound to paramIdx.
func NewVectorKnob(bounds graphics.Rect, paramIdx int) *VectorKnob {
	k := &VectorKnob{
		Knob:       *NewKnob(bounds, paramIdx, graphics.Vertical),
		StyleTrait: NewStyleTrait(style.Default()),
	}
	k.StyleTrait.AttachTo(&k.Base)
	k.SetSelf(k)
	return k
}

// IsHit accepts only points inside the knob's circle.
func (k *VectorKnob) IsHit(x, y float64) bool {
	b := k.TargetBounds()
	center := b.Center()
	cx, cy := center.X, center.Y
	radius := math.Min(b.Width(), b.Height()) / 2
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func (k *VectorKnob) Draw(r graphics.Renderer) {
	b := k.Bounds()
	r.FillRect(k.Color(style.Background), b)

	center := b.Center()
	cx, cy := center.X, center.Y
	radius := math.Min(b.Width(), b.Height()) / 2
	body := k.AdjustedHandleBounds(graphics.Rect{
		Left: cx - radius, Top: cy - radius, Right: cx + radius, Bottom: cy + radius})
	radius = body.Width() / 2

	if k.Spec().DrawShadows && !k.Spec().Emboss {
		off := k.Spec().ShadowOffset
		r.FillCircle(k.Color(style.Shadow), cx+off, cy+off, radius)
	}
	r.FillCircle(k.Color(style.Foreground), cx, cy, radius)
	if k.MouseIsOver() {
		r.FillCircle(k.Color(style.Highlight), cx, cy, radius)
	}
	if k.Spec().DrawFrame {
		thickness := k.Spec().FrameThickness
		r.StrokeRoundRect(k.Color(style.Frame), body, radius, thickness)
	}

	angle := knobAngleMin + k.Value(0)*(knobAngleMax-knobAngleMin)
	rad := angle * math.Pi / 180
	r.DrawLine(k.Color(style.Pressed),
		cx, cy,
		cx+radius*math.Sin(rad), cy-radius*math.Cos(rad),
		k.Spec().FrameThickness)
}

// VectorSlider is a slider drawn from style primitives: a recessed track
// with the shared button-shaped handle at the value position.
type VectorSlider struct {
	Slider
	StyleTrait
}

// NewVectorSlider returns a vector slider bound to paramIdx.
func NewVectorSlider(bounds graphics.Rect, paramIdx int, direction graphics.Direction) *VectorSlider {
	s := &VectorSlider{
		Slider:     *NewSlider(bounds, paramIdx, direction),
		StyleTrait: NewStyleTrait(style.Default()),
	}
	s.StyleTrait.AttachTo(&s.Base)
	s.SetSelf(s)
	return s
}

func (s *VectorSlider) Draw(r graphics.Renderer) {
	r.FillRect(s.Color(style.Background), s.Bounds())

	track := s.Track()
	fill := track.FracRect(s.Direction(), s.Value(0))
	r.FillRect(s.Color(style.Shadow), track)
	r.FillRect(s.Color(style.Extra1), fill)

	s.DrawHandle(r, s.HandleBounds(), s.Dragging(), s.MouseIsOver())
}

// VectorButton is a momentary button drawn with the shared handle helper;
// the press animation fades the pressed state back out.
type VectorButton struct {
	Button
	StyleTrait

	label string
}

// NewVectorButton returns a labeled vector button that runs fn when
// pressed.
func NewVectorButton(bounds graphics.Rect, label string, fn ActionFunc) *VectorButton {
	b := &VectorButton{
		Button:     *NewButton(bounds, fn),
		StyleTrait: NewStyleTrait(style.Default()),
		label:      label,
	}
	b.StyleTrait.AttachTo(&b.Base)
	b.SetSelf(b)
	return b
}

func (b *VectorButton) Draw(r graphics.Renderer) {
	pressed := b.Value(0) > 0.5
	handle := b.DrawHandle(r, b.Bounds(), pressed, b.MouseIsOver())
	if b.label != "" {
		r.DrawText(b.Color(style.Frame), b.label, handle)
	}
}

// VectorSwitch is an N-state toggle drawn with the shared handle helper
// and the active state's display text.
type VectorSwitch struct {
	Switch
	StyleTrait
}

// NewVectorSwitch returns a vector switch bound to paramIdx.
func NewVectorSwitch(bounds graphics.Rect, paramIdx int, numStates int) *VectorSwitch {
	s := &VectorSwitch{
		Switch:     *NewSwitch(bounds, paramIdx, numStates),
		StyleTrait: NewStyleTrait(style.Default()),
	}
	s.StyleTrait.AttachTo(&s.Base)
	s.SetSelf(s)
	return s
}

func (s *VectorSwitch) Draw(r graphics.Renderer) {
	handle := s.DrawHandle(r, s.Bounds(), s.Pressed(), s.MouseIsOver())
	if p := s.Param(0); p != nil {
		text := p.DisplayText(p.FromNormalized(s.Value(0)))
		r.DrawText(s.Color(style.Frame), text, handle)
	}
}

var (
	_ Control = (*VectorKnob)(nil)
	_ Control = (*VectorSlider)(nil)
	_ Control = (*VectorButton)(nil)
	_ Control = (*VectorSwitch)(nil)
)
