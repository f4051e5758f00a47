package control

import "github.com/go-fader/fader/pkg/graphics"

// DrawFunc paints a Lambda control.
type DrawFunc func(c *Lambda, r graphics.Renderer)

// Lambda is a control defined by a draw closure instead of a subtype,
// for one-off decorations and prototypes. With looping enabled its
// animation restarts as soon as it ends.
type Lambda struct {
	Base

	drawFn DrawFunc
	loop   bool
}

// NewLambda returns a control painted by fn.
func NewLambda(bounds graphics.Rect, fn DrawFunc) *Lambda {
	l := &Lambda{Base: NewBase(bounds), drawFn: fn}
	l.SetSelf(l)
	return l
}

// SetLoop makes the animation restart each time it completes.
func (l *Lambda) SetLoop(loop bool) { l.loop = loop }

// OnEndAnimation restarts the animation in loop mode instead of clearing
// it.
func (l *Lambda) OnEndAnimation() {
	if l.loop && l.AnimationFunc() != nil {
		l.StartAnimation(l.AnimationDuration())
		l.SetDirty(false, AllValues)
		return
	}
	l.Base.OnEndAnimation()
}

func (l *Lambda) Draw(r graphics.Renderer) {
	if l.drawFn != nil {
		l.drawFn(l, r)
	}
}

var _ Control = (*Lambda)(nil)
