// Package surface owns attached controls and drives them: it routes mouse,
// key, drop, message and MIDI events, runs the per-tick redraw pass, and
// serves as the UI collaborator controls prompt through. One surface per
// window; all calls happen on the UI goroutine.
package surface

import (
	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
	"github.com/go-fader/fader/pkg/midi"
)

// PromptHost is the platform layer that can actually open a text entry box
// or popup menu. A surface without one silently drops prompt requests,
// which is what headless tests want.
type PromptHost interface {
	CreateTextEntry(c control.Control, bounds graphics.Rect, valIdx int, text string)
	CreatePopupMenu(c control.Control, menu *control.Menu, bounds graphics.Rect, valIdx int)
}

// Surface is the owning container for a set of controls. Attachment order
// is z-order: later controls draw on top and are hit-tested first.
type Surface struct {
	delegate control.Delegate
	prompts  PromptHost
	controls []control.Control
	scale    float64

	captured     control.Control
	hovered      control.Control
	clicked      control.Control
	lastX, lastY float64
}

var _ control.UI = (*Surface)(nil)

// New returns an empty surface sending value changes to d.
func New(d control.Delegate) *Surface {
	return &Surface{delegate: d, scale: 1}
}

// SetPromptHost wires the platform layer prompts go to.
func (s *Surface) SetPromptHost(h PromptHost) { s.prompts = h }

// AttachControl assigns identity, appends the control on top of the
// z-order and fires its attachment sequence. It returns the control for
// chained configuration.
func (s *Surface) AttachControl(c control.Control, tag int, group string) control.Control {
	c.SetTag(tag)
	c.SetGroup(group)
	s.controls = append(s.controls, c)
	c.Attach(s.delegate, s)
	return c
}

// NumControls returns how many controls are attached.
func (s *Surface) NumControls() int { return len(s.controls) }

// ControlAt returns the attached control at z-order position i.
func (s *Surface) ControlAt(i int) control.Control { return s.controls[i] }

// ControlWithTag returns the attached control carrying tag, or nil.
func (s *Surface) ControlWithTag(tag int) control.Control {
	for _, c := range s.controls {
		if c.Tag() == tag {
			return c
		}
	}
	return nil
}

// ForEachControl visits every attached control in z-order.
func (s *Surface) ForEachControl(fn func(c control.Control)) {
	for _, c := range s.controls {
		fn(c)
	}
}

// HideGroup hides or shows every control in the named group.
func (s *Surface) HideGroup(group string, hide bool) {
	for _, c := range s.controls {
		if c.Group() == group {
			c.Hide(hide)
		}
	}
}

// CreateTextEntry implements control.UI by forwarding to the prompt host.
func (s *Surface) CreateTextEntry(c control.Control, bounds graphics.Rect, valIdx int, text string) {
	if s.prompts != nil {
		s.prompts.CreateTextEntry(c, bounds, valIdx, text)
	}
}

// CreatePopupMenu implements control.UI by forwarding to the prompt host.
func (s *Surface) CreatePopupMenu(c control.Control, menu *control.Menu, bounds graphics.Rect, valIdx int) {
	if s.prompts != nil {
		s.prompts.CreatePopupMenu(c, menu, bounds, valIdx)
	}
}

// DrawScale implements control.UI.
func (s *Surface) DrawScale() float64 { return s.scale }

// SetScale changes the draw scale and notifies every control.
func (s *Surface) SetScale(scale float64) {
	if scale == s.scale {
		return
	}
	s.scale = scale
	for _, c := range s.controls {
		c.OnRescale()
		c.SetDirty(false, control.AllValues)
	}
}

// Redraw is the per-tick pass: polls each control's dirty state (which
// advances animations), draws the dirty visible ones bottom-up and cleans
// them. Returns how many controls drew.
func (s *Surface) Redraw(r graphics.Renderer) int {
	drawn := 0
	for _, c := range s.controls {
		if !c.IsDirty() {
			continue
		}
		if !c.Hidden() {
			c.Draw(r)
			drawn++
		}
		c.SetClean()
	}
	return drawn
}

// hitTest returns the topmost control under (x, y) that can receive mouse
// events, or nil. Hidden and ignore-mouse controls never hit; grayed
// controls hit only with the mouse-events-when-grayed opt-in.
func (s *Surface) hitTest(x, y float64) control.Control {
	for i := len(s.controls) - 1; i >= 0; i-- {
		c := s.controls[i]
		if c.Hidden() || c.IgnoresMouse() {
			continue
		}
		if c.Grayed() && !c.MouseEventsWhenGrayed() {
			continue
		}
		if c.IsHit(x, y) {
			return c
		}
	}
	return nil
}

// hoverTest is hitTest with the hover-specific grayed gate.
func (s *Surface) hoverTest(x, y float64) control.Control {
	for i := len(s.controls) - 1; i >= 0; i-- {
		c := s.controls[i]
		if c.Hidden() || c.IgnoresMouse() {
			continue
		}
		if c.Grayed() && !c.MouseOverWhenGrayed() {
			continue
		}
		if c.IsHit(x, y) {
			return c
		}
	}
	return nil
}

// MouseDown routes a press to the control under the pointer, which
// captures the mouse until MouseUp. A right click on a control that
// populates a context menu shows the menu instead; its selection comes
// back through OnPopupMenuSelection with NoValIdx.
func (s *Surface) MouseDown(x, y float64, mods input.Mods) {
	c := s.hitTest(x, y)
	if c == nil {
		return
	}
	if mods.Right {
		if h, ok := c.Self().(control.ContextMenuHandler); ok {
			menu := control.NewMenu("")
			h.CreateContextMenu(menu)
			if menu.NumItems() > 0 {
				s.CreatePopupMenu(c, menu, graphics.RectFromLTWH(x, y, 0, 0), control.NoValIdx)
				return
			}
		}
	}
	s.captured = c
	s.clicked = c
	s.lastX, s.lastY = x, y
	c.OnMouseDown(x, y, mods)
}

// MouseUp releases capture and routes the release to the captured control.
func (s *Surface) MouseUp(x, y float64, mods input.Mods) {
	if s.captured == nil {
		return
	}
	c := s.captured
	s.captured = nil
	c.OnMouseUp(x, y, mods)
}

// MouseMove routes a move: to the captured control as a drag with per-axis
// deltas, otherwise as hover tracking with over/out transitions.
func (s *Surface) MouseMove(x, y float64, mods input.Mods) {
	if s.captured != nil {
		dx, dy := x-s.lastX, y-s.lastY
		s.lastX, s.lastY = x, y
		s.captured.OnMouseDrag(x, y, dx, dy, mods)
		return
	}
	c := s.hoverTest(x, y)
	if c != s.hovered {
		if s.hovered != nil {
			s.hovered.OnMouseOut()
		}
		s.hovered = c
	}
	if c != nil {
		c.OnMouseOver(x, y, mods)
	}
}

// MouseDblClick routes a double click. Controls opting into
// double-click-as-single get a mouse down and capture instead, so the
// presses of a rapid toggle all register.
func (s *Surface) MouseDblClick(x, y float64, mods input.Mods) {
	c := s.hitTest(x, y)
	if c == nil {
		return
	}
	if c.DoubleClickAsSingle() {
		s.captured = c
		s.clicked = c
		s.lastX, s.lastY = x, y
		c.OnMouseDown(x, y, mods)
		return
	}
	c.OnMouseDblClick(x, y, mods)
}

// MouseWheel routes a wheel event to the control under the pointer.
func (s *Surface) MouseWheel(x, y float64, mods input.Mods, delta float64) {
	if c := s.hitTest(x, y); c != nil {
		c.OnMouseWheel(x, y, mods, delta)
	}
}

// keyTarget is the control under the pointer, or failing that the most
// recently clicked control.
func (s *Surface) keyTarget(x, y float64) control.Control {
	if c := s.hitTest(x, y); c != nil {
		return c
	}
	if s.clicked != nil && !s.clicked.Hidden() {
		return s.clicked
	}
	return nil
}

// KeyDown routes a key press and reports whether it was consumed.
func (s *Surface) KeyDown(x, y float64, key input.KeyPress) bool {
	if c := s.keyTarget(x, y); c != nil {
		return c.OnKeyDown(x, y, key)
	}
	return false
}

// KeyUp routes a key release.
func (s *Surface) KeyUp(x, y float64, key input.KeyPress) bool {
	if c := s.keyTarget(x, y); c != nil {
		return c.OnKeyUp(x, y, key)
	}
	return false
}

// Drop routes a drag-and-drop payload to the control under the pointer.
func (s *Surface) Drop(x, y float64, payload string) {
	if c := s.hitTest(x, y); c != nil {
		c.OnDrop(payload)
	}
}

// SendValueFromDelegate fans an external parameter change out to every
// slot bound to it. Controls store without re-notifying.
func (s *Surface) SendValueFromDelegate(paramIdx int, value float64) {
	for _, c := range s.controls {
		if slot := c.SlotForParam(paramIdx); slot != control.NoValIdx {
			c.SetValueFromDelegate(value, slot)
		}
	}
}

// SendMessage delivers a tagged message to the control carrying tag, if it
// handles messages.
func (s *Surface) SendMessage(tag, msgTag int, data []byte) {
	c := s.ControlWithTag(tag)
	if c == nil {
		return
	}
	if h, ok := c.Self().(control.MessageHandler); ok {
		h.OnMessage(msgTag, data)
	}
}

// SendMidi fans a MIDI message out to every control that asked for MIDI.
func (s *Surface) SendMidi(msg midi.Msg) {
	for _, c := range s.controls {
		if !c.WantsMidi() {
			continue
		}
		if h, ok := c.Self().(control.MidiHandler); ok {
			h.OnMidi(msg)
		}
	}
}
