package control

import (
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
)

// Button is the base for momentary switches. It cannot be bound to a
// parameter: pressing it fires the action callback, flashes the value to
// 1 and a stock animation returns it to 0 when the press animation ends.
// It draws nothing itself.
type Button struct {
	Base
}

// NewButton returns a button base that runs fn when pressed.
func NewButton(bounds graphics.Rect, fn ActionFunc) *Button {
	b := &Button{Base: NewBase(bounds)}
	b.SetActionFunc(fn)
	b.SetSelf(b)
	return b
}

// OnMouseDown flashes the value to 1, triggers the action and starts the
// press animation.
func (b *Button) OnMouseDown(x, y float64, mods input.Mods) {
	b.SetValue(1, 0)
	b.SetDirty(true, 0)
	b.SetAnimationWithDuration(DefaultAnimationFunc, DefaultAnimationDuration)
}

// OnEndAnimation returns the value to 0 before the stock cleanup.
func (b *Button) OnEndAnimation() {
	b.SetValue(0, 0)
	b.Base.OnEndAnimation()
}

var (
	_ Control = (*Button)(nil)
	_ Control = (*Knob)(nil)
	_ Control = (*Slider)(nil)
	_ Control = (*Switch)(nil)
)
