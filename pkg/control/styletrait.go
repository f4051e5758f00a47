package control

import (
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/style"
)

// Redrawer is the back-reference a trait holds to its owning control. It
// exists only to request redraws on presentation changes and carries no
// ownership; the control owns the trait, never the other way around.
type Redrawer interface {
	SetDirty(triggerAction bool, valIdx int)
}

// StyleTrait gives a vector-drawn control a shared style: the semantic
// color palette plus handle geometry. Widgets compose it alongside Base
// rather than inheriting it, so a bitmap slider and a vector slider can
// share ballistics without sharing presentation.
type StyleTrait struct {
	owner Redrawer
	spec  style.Spec
}

// NewStyleTrait returns a trait seeded with the given spec.
func NewStyleTrait(spec style.Spec) StyleTrait {
	return StyleTrait{spec: spec}
}

// AttachTo wires the owning control for redraw signaling.
func (t *StyleTrait) AttachTo(owner Redrawer) { t.owner = owner }

func (t *StyleTrait) markDirty() {
	if t.owner != nil {
		t.owner.SetDirty(false, AllValues)
	}
}

// Spec returns the current style values.
func (t *StyleTrait) Spec() style.Spec { return t.spec }

// SetSpec replaces the whole style and requests a redraw.
func (t *StyleTrait) SetSpec(spec style.Spec) {
	t.spec = spec
	t.markDirty()
}

// Color returns the color for a role.
func (t *StyleTrait) Color(role style.ColorRole) graphics.Color {
	return t.spec.Color(role)
}

// SetColor replaces one color role and requests a redraw. Style changes
// never notify the delegate; they are presentation only.
func (t *StyleTrait) SetColor(role style.ColorRole, c graphics.Color) {
	t.spec = t.spec.WithColor(role, c)
	t.markDirty()
}

// SetRoundness sets the corner roundness, clamped to [0,1].
func (t *StyleTrait) SetRoundness(roundness float64) {
	t.spec.Roundness = graphics.Clamp01(roundness)
	t.markDirty()
}

// SetFrameThickness sets the outline stroke width.
func (t *StyleTrait) SetFrameThickness(thickness float64) {
	t.spec.FrameThickness = thickness
	t.markDirty()
}

// SetShadowOffset sets the drop shadow displacement.
func (t *StyleTrait) SetShadowOffset(offset float64) {
	t.spec.ShadowOffset = offset
	t.markDirty()
}

// SetDrawFrame toggles the handle outline.
func (t *StyleTrait) SetDrawFrame(draw bool) {
	t.spec.DrawFrame = draw
	t.markDirty()
}

// SetDrawShadows toggles handle shadows.
func (t *StyleTrait) SetDrawShadows(draw bool) {
	t.spec.DrawShadows = draw
	t.markDirty()
}

// SetEmboss switches the shadow from drop to inner.
func (t *StyleTrait) SetEmboss(emboss bool) {
	t.spec.Emboss = emboss
	t.markDirty()
}

// AdjustedHandleBounds shrinks a handle rectangle to leave room for the
// frame stroke and the drop shadow, so neither paints outside the control.
func (t *StyleTrait) AdjustedHandleBounds(handle graphics.Rect) graphics.Rect {
	if t.spec.DrawFrame {
		handle = handle.Padded(-0.5 * t.spec.FrameThickness)
	}
	if t.spec.DrawShadows && !t.spec.Emboss {
		handle = handle.Padded4(0, 0, -t.spec.ShadowOffset, -t.spec.ShadowOffset)
	}
	return handle
}

// DrawHandle paints the shared button-shaped handle: background fill,
// pressed or raised body with shadow, hover highlight and frame. Several
// concrete widgets reuse it for their handles. Returns the body rectangle
// actually filled.
func (t *StyleTrait) DrawHandle(r graphics.Renderer, bounds graphics.Rect, pressed, mouseOver bool) graphics.Rect {
	r.FillRect(t.Color(style.Background), bounds)

	handle := t.AdjustedHandleBounds(bounds)
	radius := t.spec.Roundness * (handle.Width() / 2)

	if pressed {
		r.FillRoundRect(t.Color(style.Pressed), handle, radius)
		if t.spec.DrawShadows && t.spec.Emboss {
			inset := t.spec.ShadowOffset
			r.FillRect(t.Color(style.Shadow), graphics.Rect{
				Left: handle.Left, Top: handle.Top, Right: handle.Right, Bottom: handle.Top + inset})
			r.FillRect(t.Color(style.Shadow), graphics.Rect{
				Left: handle.Left, Top: handle.Top, Right: handle.Left + inset, Bottom: handle.Bottom})
		}
	} else {
		if t.spec.DrawShadows && !t.spec.Emboss {
			r.FillRoundRect(t.Color(style.Shadow),
				handle.Translate(t.spec.ShadowOffset, t.spec.ShadowOffset), radius)
		}
		r.FillRoundRect(t.Color(style.Foreground), handle, radius)
	}

	if mouseOver {
		r.FillRoundRect(t.Color(style.Highlight), handle, radius)
	}
	if t.spec.DrawFrame {
		r.StrokeRoundRect(t.Color(style.Frame), handle, radius, t.spec.FrameThickness)
	}

	return handle
}
