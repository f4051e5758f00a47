// Package input defines the normalized event payloads delivered to controls.
// Translating raw OS events into these values is the embedding platform's
// job; the control core only ever sees local coordinates and snapshots.
package input

// Mods is a snapshot of mouse button and modifier key state taken when an
// event fired.
type Mods struct {
	// Left, Right report which mouse button produced the event.
	Left  bool
	Right bool
	// Shift, Ctrl, Alt, Cmd report held modifier keys.
	Shift bool
	Ctrl  bool
	Alt   bool
	Cmd   bool
	// Touch reports that the event came from a touch device.
	Touch bool
}

// KeyPress describes a key event: the translated character (if printable)
// and the virtual key code, with the same modifier snapshot mouse events
// carry.
type KeyPress struct {
	Rune rune
	Code int
	Mods Mods
}

// Virtual key codes for keys controls commonly react to.
const (
	KeyNone = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)
