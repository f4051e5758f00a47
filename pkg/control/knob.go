package control

import (
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
)

// Knob ballistics defaults.
const (
	// DefaultGearing divides mouse travel into value change: dragging the
	// full track extent moves the value by 1/DefaultGearing.
	DefaultGearing = 4.0
	// DefaultFineFactor multiplies the gearing (or divides the wheel step)
	// while fine control is held.
	DefaultFineFactor = 10.0
	// DefaultWheelStep is the value change per wheel detent.
	DefaultWheelStep = 0.01
)

// Knob is the base for dial-style controls using relative-delta
// ballistics: drag distance along the primary axis, divided by the track
// extent times the gearing, accumulates into the value. It draws nothing
// itself.
type Knob struct {
	Base

	direction graphics.Direction
	gearing   float64

	// Fine gearing for drags and wheel steps are independently
	// configurable; neither interface of the original pins a shared ratio.
	fineDragFactor  float64
	fineWheelFactor float64
	wheelStep       float64
}

// NewKnob returns a knob base over bounds, optionally bound to a
// parameter (pass NoParam to leave it unbound).
func NewKnob(bounds graphics.Rect, paramIdx int, direction graphics.Direction) *Knob {
	k := &Knob{
		Base:            NewBase(bounds, paramIdx),
		direction:       direction,
		gearing:         DefaultGearing,
		fineDragFactor:  DefaultFineFactor,
		fineWheelFactor: DefaultFineFactor,
		wheelStep:       DefaultWheelStep,
	}
	k.SetSelf(k)
	return k
}

// Direction returns the primary drag axis.
func (k *Knob) Direction() graphics.Direction { return k.direction }

// Gearing returns the drag gearing divisor.
func (k *Knob) Gearing() float64 { return k.gearing }

// SetGearing sets the drag gearing divisor; larger values need more mouse
// travel per unit of value change.
func (k *Knob) SetGearing(gearing float64) { k.gearing = gearing }

// SetFineDragFactor sets the gearing multiplier applied while fine
// control is held during a drag.
func (k *Knob) SetFineDragFactor(factor float64) { k.fineDragFactor = factor }

// SetWheelStep sets the value change per wheel detent.
func (k *Knob) SetWheelStep(step float64) { k.wheelStep = step }

// SetFineWheelFactor sets the divisor applied to the wheel step while
// fine control is held.
func (k *Knob) SetFineWheelFactor(factor float64) { k.fineWheelFactor = factor }

// IsFineControl reports whether the modifier snapshot asks for fine value
// steps. The same check serves drags and wheel events; only the factor
// applied differs.
func (k *Knob) IsFineControl(mods input.Mods, wheel bool) bool {
	return mods.Shift
}

// OnMouseDrag accumulates the drag delta along the primary axis into the
// value: upward and rightward motion increase it. The result is clamped
// to [0,1] and propagated with notification.
func (k *Knob) OnMouseDrag(x, y, dx, dy float64, mods input.Mods) {
	gearing := k.gearing
	if k.IsFineControl(mods, false) {
		gearing *= k.fineDragFactor
	}

	var delta float64
	if k.direction == graphics.Vertical {
		extent := k.Bounds().Height()
		if extent <= 0 || gearing == 0 {
			return
		}
		delta = -dy / (extent * gearing)
	} else {
		extent := k.Bounds().Width()
		if extent <= 0 || gearing == 0 {
			return
		}
		delta = dx / (extent * gearing)
	}

	k.SetValue(graphics.Clamp01(k.Value(0)+delta), 0)
	k.SetDirty(true, 0)
}

// OnMouseWheel applies a fixed-size step per detent instead of a
// per-pixel delta, reduced by the fine wheel factor when fine control is
// held.
func (k *Knob) OnMouseWheel(x, y float64, mods input.Mods, delta float64) {
	step := k.wheelStep
	if k.IsFineControl(mods, true) && k.fineWheelFactor > 0 {
		step /= k.fineWheelFactor
	}
	k.SetValue(graphics.Clamp01(k.Value(0)+step*delta), 0)
	k.SetDirty(true, 0)
}
