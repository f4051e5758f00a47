// Package control implements the retained-mode control model at the heart
// of a fader UI: the Base every widget embeds, its ordered parameter-value
// slots, the dirty/redraw contract, the synchronous event surface and the
// per-control animation scheduler, plus the knob/slider/switch/button/track
// base widgets and the attachable style and bitmap presentation traits.
//
// # Lifecycle
//
// A control is constructed with bounds and zero or more parameter bindings,
// then attached by its owning container, which supplies the delegate and UI
// collaborators and fires OnInit, OnResize and OnRescale exactly once each,
// in that order. On every UI tick the container polls IsDirty (which runs
// the animation step), draws dirty controls and calls SetClean.
//
// # Value flow
//
// User input funnels through SetDirty(true, valIdx): it notifies the
// delegate for every bound slot indicated and then invokes the action
// callback once. Values arriving from the delegate enter through
// SetValueFromDelegate, which marks dirty but never re-notifies, so no
// feedback loop can form.
//
// # Threading
//
// Everything in this package is single-threaded by contract: draw, dirty
// polling and event dispatch all run on the host's UI tick. Collaborators
// delivering parameter changes or MIDI from another context must marshal
// onto that thread first.
package control
