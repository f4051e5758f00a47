package testing

import (
	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
)

// TextEntryRequest records one CreateTextEntry call.
type TextEntryRequest struct {
	Control control.Control
	Bounds  graphics.Rect
	ValIdx  int
	Text    string
}

// MenuRequest records one CreatePopupMenu call.
type MenuRequest struct {
	Control control.Control
	Menu    *control.Menu
	Bounds  graphics.Rect
	ValIdx  int
}

// UI records prompt requests from controls. It implements both control.UI
// for direct attachment and surface.PromptHost for wiring into a surface.
// Scale is returned by DrawScale; the zero value means scale 1.
type UI struct {
	TextEntries []TextEntryRequest
	Menus       []MenuRequest
	Scale       float64
}

var _ control.UI = (*UI)(nil)

func (u *UI) CreateTextEntry(c control.Control, bounds graphics.Rect, valIdx int, text string) {
	u.TextEntries = append(u.TextEntries, TextEntryRequest{Control: c, Bounds: bounds, ValIdx: valIdx, Text: text})
}

func (u *UI) CreatePopupMenu(c control.Control, menu *control.Menu, bounds graphics.Rect, valIdx int) {
	u.Menus = append(u.Menus, MenuRequest{Control: c, Menu: menu, Bounds: bounds, ValIdx: valIdx})
}

func (u *UI) DrawScale() float64 {
	if u.Scale == 0 {
		return 1
	}
	return u.Scale
}

// Reset discards recorded requests.
func (u *UI) Reset() {
	u.TextEntries = nil
	u.Menus = nil
}
