package control

import "github.com/go-fader/fader/pkg/graphics"

// Panel is a plain colored rectangle. It ignores mouse input so it can sit
// behind interactive controls without stealing their events.
type Panel struct {
	Base

	color graphics.Color
}

// NewPanel returns a panel filled with the given color.
func NewPanel(bounds graphics.Rect, color graphics.Color) *Panel {
	p := &Panel{Base: NewBase(bounds), color: color}
	p.SetIgnoreMouse(true)
	p.SetSelf(p)
	return p
}

// Color returns the fill color.
func (p *Panel) Color() graphics.Color { return p.color }

// SetColor changes the fill color.
func (p *Panel) SetColor(c graphics.Color) {
	p.color = c
	p.SetDirty(false, AllValues)
}

func (p *Panel) Draw(r graphics.Renderer) {
	r.FillRect(p.color, p.Bounds())
}

var _ Control = (*Panel)(nil)
