package control

import (
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
)

// Label draws a static string. Like Panel it ignores mouse input.
type Label struct {
	Base

	text  string
	color graphics.Color
}

// NewLabel returns a label showing text.
func NewLabel(bounds graphics.Rect, text string) *Label {
	l := &Label{Base: NewBase(bounds), text: text, color: graphics.ColorBlack}
	l.SetIgnoreMouse(true)
	l.SetSelf(l)
	return l
}

// Text returns the displayed string.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed string.
func (l *Label) SetText(text string) {
	l.text = text
	l.SetDirty(false, AllValues)
}

// SetTextColor changes the text color.
func (l *Label) SetTextColor(c graphics.Color) {
	l.color = c
	l.SetDirty(false, AllValues)
}

func (l *Label) Draw(r graphics.Renderer) {
	r.DrawText(l.color, l.text, l.Bounds())
}

// Caption shows the bound parameter's current display text and opens the
// value prompt when clicked, so any parameter gets an editable readout.
type Caption struct {
	Label

	showParamName bool
}

// NewCaption returns a caption bound to paramIdx.
func NewCaption(bounds graphics.Rect, paramIdx int, showParamName bool) *Caption {
	c := &Caption{showParamName: showParamName}
	c.Base = NewBase(bounds, paramIdx)
	c.color = graphics.ColorBlack
	c.SetSelf(c)
	return c
}

// OnMouseDown opens the value prompt on any click.
func (c *Caption) OnMouseDown(x, y float64, mods input.Mods) {
	c.PromptUserInput(0)
}

func (c *Caption) Draw(r graphics.Renderer) {
	if p := c.Param(0); p != nil {
		text := p.DisplayText(p.FromNormalized(c.Value(0)))
		if c.showParamName {
			text = p.Name + ": " + text
		}
		c.text = text
	}
	c.Label.Draw(r)
}

var (
	_ Control = (*Label)(nil)
	_ Control = (*Caption)(nil)
)
