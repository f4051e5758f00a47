package control

import (
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
)

// Switch is the base for N-state toggles. Each click advances to the next
// state, wrapping to the first after the last; binary switches simply
// invert. It draws nothing itself.
type Switch struct {
	Base

	numStates int
	pressed   bool
}

// NewSwitch returns a switch base with the given number of states
// (minimum two), optionally bound to a parameter.
func NewSwitch(bounds graphics.Rect, paramIdx int, numStates int) *Switch {
	if numStates < 2 {
		numStates = 2
	}
	s := &Switch{Base: NewBase(bounds, paramIdx), numStates: numStates}
	s.SetSelf(s)
	return s
}

// NumStates returns the number of states the switch cycles through.
func (s *Switch) NumStates() int { return s.numStates }

// Pressed reports whether the mouse is currently down on the switch.
func (s *Switch) Pressed() bool { return s.pressed }

// OnInit derives the state count from the bound parameter's steps, so a
// switch bound to an enumerated parameter needs no explicit count.
func (s *Switch) OnInit() {
	if p := s.Param(0); p != nil && p.Stepped() && p.NumSteps() >= 2 {
		s.numStates = p.NumSteps()
	}
}

// OnMouseDown advances to the next state and notifies.
func (s *Switch) OnMouseDown(x, y float64, mods input.Mods) {
	s.pressed = true

	v := s.Value(0)
	if s.numStates == 2 {
		if v < 0.5 {
			v = 1
		} else {
			v = 0
		}
	} else {
		step := 1 / float64(s.numStates-1)
		v += step
		if v > 1+step/2 {
			v = 0
		}
		v = graphics.Clamp01(v)
	}

	s.SetValue(v, 0)
	s.SetDirty(true, 0)
}

// OnMouseUp releases the pressed state.
func (s *Switch) OnMouseUp(x, y float64, mods input.Mods) {
	s.pressed = false
	s.SetDirty(false, AllValues)
}
