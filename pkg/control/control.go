package control

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/input"
	"github.com/go-fader/fader/pkg/midi"
	"github.com/go-fader/fader/pkg/param"
)

// Sentinel values for the identity and binding fields.
const (
	// NoParam marks a value slot that is not bound to a parameter.
	NoParam = -1
	// NoValIdx is returned by slot lookups that find nothing.
	NoValIdx = -1
	// AllValues passed as a valIdx applies an operation to every slot.
	AllValues = NoValIdx
	// NoTag marks a control that has not been given a tag.
	NoTag = -1
)

// DefaultTextEntryLength bounds text entered through a prompt.
const DefaultTextEntryLength = 32

// ActionFunc runs when a control's triggering interaction happens,
// usually mouse down.
type ActionFunc func(c Control)

// Delegate is the host-side collaborator that owns parameters and receives
// value changes originating from user input. Its lifetime exceeds every
// attached control's; controls hold it without owning it.
type Delegate interface {
	// Param returns the descriptor for a parameter index, or nil.
	Param(paramIdx int) *param.Param
	// SendValueFromUI informs the host that user input produced a new
	// normalized value for a parameter.
	SendValueFromUI(paramIdx int, value float64)
}

// UI is the context-side collaborator a control asks to surface text entry
// boxes and popup menus, and queries for the current draw scale. The
// surface package implements it.
type UI interface {
	// CreateTextEntry opens a text box over bounds; the result arrives via
	// the control's OnTextEntryCompletion.
	CreateTextEntry(c Control, bounds graphics.Rect, valIdx int, text string)
	// CreatePopupMenu opens a menu below bounds; the result arrives via
	// the control's OnPopupMenuSelection.
	CreatePopupMenu(c Control, menu *Menu, bounds graphics.Rect, valIdx int)
	// DrawScale returns the DPI scale controls should render for.
	DrawScale() float64
}

// Control is the contract every widget implements. Base provides defaults
// for everything except drawing; widgets embed Base and shadow what they
// need. Dispatch from within Base goes through the stored self-reference,
// so a shadowed method wins even when Base initiates the call.
type Control interface {
	// Geometry.
	Bounds() graphics.Rect
	SetBounds(bounds graphics.Rect)
	TargetBounds() graphics.Rect
	SetTargetBounds(bounds graphics.Rect)
	SetAllBounds(bounds graphics.Rect)
	IsHit(x, y float64) bool

	// Identity.
	Tag() int
	SetTag(tag int)
	Group() string
	SetGroup(group string)

	// Value slots.
	NumValues() int
	Value(valIdx int) float64
	SetValue(value float64, valIdx int)
	ParamIdx(valIdx int) int
	SetParamIdx(paramIdx, valIdx int)
	SlotForParam(paramIdx int) int
	ValIdxForPos(x, y float64) int
	SetValueFromDelegate(value float64, valIdx int)
	SetValueFromUserInput(value float64, valIdx int)
	SetValueToDefault(valIdx int)

	// Dirty contract. IsDirty is the per-tick poll and advances any
	// active animation; Dirty reads the flag without side effects.
	SetDirty(triggerAction bool, valIdx int)
	SetClean()
	IsDirty() bool
	Dirty() bool

	// Visibility and interactivity.
	Hidden() bool
	Hide(hide bool)
	Grayed() bool
	GrayOut(gray bool)
	IgnoresMouse() bool
	MouseOverWhenGrayed() bool
	MouseEventsWhenGrayed() bool
	DoubleClickAsSingle() bool
	MouseIsOver() bool
	WantsMidi() bool

	// Event surface. Coordinates are local; drags carry the per-axis delta
	// since the previous drag event.
	OnMouseDown(x, y float64, mods input.Mods)
	OnMouseUp(x, y float64, mods input.Mods)
	OnMouseDrag(x, y, dx, dy float64, mods input.Mods)
	OnMouseDblClick(x, y float64, mods input.Mods)
	OnMouseWheel(x, y float64, mods input.Mods, delta float64)
	OnMouseOver(x, y float64, mods input.Mods)
	OnMouseOut()
	OnKeyDown(x, y float64, key input.KeyPress) bool
	OnKeyUp(x, y float64, key input.KeyPress) bool
	OnDrop(payload string)

	// Lifecycle hooks, fired by Attach in this order and thereafter by
	// bounds or scale changes.
	OnInit()
	OnResize()
	OnRescale()

	// Prompt completion hooks, keyed by the value slot that prompted.
	OnTextEntryCompletion(text string, valIdx int)
	OnPopupMenuSelection(menu *Menu, valIdx int)

	// Animation end hook; see Base.OnEndAnimation.
	OnEndAnimation()

	Draw(r graphics.Renderer)

	// Attachment. The owning container supplies the collaborators; hooks
	// fire exactly once per attachment.
	Attach(d Delegate, u UI)
	Attached() bool
	Delegate() Delegate
	UI() UI
	Self() Control
}

// MessageHandler is implemented by controls that accept tagged messages
// from the delegate, addressed by control tag.
type MessageHandler interface {
	OnMessage(msgTag int, data []byte)
}

// MidiHandler is implemented by controls that set WantsMidi and inspect
// MIDI delivered to the UI.
type MidiHandler interface {
	OnMidi(msg midi.Msg)
}

// ContextMenuHandler is implemented by controls that add entries to a
// host-provided context menu and react to the selection.
type ContextMenuHandler interface {
	CreateContextMenu(menu *Menu)
	OnContextSelection(itemIdx int)
}

// valueSlot pairs a parameter index with a normalized value.
type valueSlot struct {
	param int
	value float64
}

// Base carries the state and default behavior shared by all controls.
// The zero value is not usable; construct with NewBase.
type Base struct {
	bounds graphics.Rect
	target graphics.Rect

	tag     int
	group   string
	tooltip string

	vals []valueSlot

	dirty           bool
	hidden          bool
	grayed          bool
	mouseOver       bool
	ignoreMouse     bool
	dblAsSingle     bool
	moWhenGrayed    bool
	meWhenGrayed    bool
	wantsMidi       bool
	promptEnabled   bool
	textEntryLength int

	actionFunc ActionFunc
	anim       animationState

	delegate Delegate
	ui       UI
	attached bool
	self     Control
}

// NewBase returns a Base covering bounds. With no parameter indices the
// control gets one unbound slot; otherwise one slot per index, in order.
func NewBase(bounds graphics.Rect, params ...int) Base {
	b := Base{
		bounds:          bounds,
		target:          bounds,
		tag:             NoTag,
		dirty:           true,
		textEntryLength: DefaultTextEntryLength,
	}
	if len(params) == 0 {
		b.vals = []valueSlot{{param: NoParam}}
	} else {
		b.vals = make([]valueSlot, len(params))
		for i, p := range params {
			b.vals[i] = valueSlot{param: p}
		}
	}
	return b
}

// SetSelf stores the outermost control value so Base-initiated dispatch
// reaches shadowed methods. Concrete constructors call this; a Base whose
// self is unset dispatches to its own defaults.
func (b *Base) SetSelf(c Control) { b.self = c }

// Self returns the outermost control value.
func (b *Base) Self() Control {
	if b.self != nil {
		return b.self
	}
	return b
}

// Attach wires the delegate and UI collaborators and fires the OnInit,
// OnResize and OnRescale hooks, in that order. Attaching twice is a
// programming error.
func (b *Base) Attach(d Delegate, u UI) {
	if b.attached {
		panic("control: control attached twice")
	}
	b.delegate = d
	b.ui = u
	b.attached = true
	self := b.Self()
	self.OnInit()
	self.OnResize()
	self.OnRescale()
}

// Attached reports whether the control has been attached to a container.
func (b *Base) Attached() bool { return b.attached }

// Delegate returns the attached delegate, or nil before attachment.
func (b *Base) Delegate() Delegate { return b.delegate }

// UI returns the attached UI collaborator, or nil before attachment.
func (b *Base) UI() UI { return b.ui }

// Bounds returns the draw rectangle.
func (b *Base) Bounds() graphics.Rect { return b.bounds }

// SetBounds replaces the draw rectangle, resets hover state, refires the
// resize hook and marks the control dirty.
func (b *Base) SetBounds(bounds graphics.Rect) {
	b.bounds = bounds
	b.mouseOver = false
	b.Self().OnResize()
	b.SetDirty(false, AllValues)
}

// TargetBounds returns the mouse-hit rectangle (defaults to the draw
// rectangle).
func (b *Base) TargetBounds() graphics.Rect { return b.target }

// SetTargetBounds replaces the mouse-hit rectangle and resets hover state.
func (b *Base) SetTargetBounds(bounds graphics.Rect) {
	b.target = bounds
	b.mouseOver = false
}

// SetAllBounds sets both the draw and hit rectangles.
func (b *Base) SetAllBounds(bounds graphics.Rect) {
	b.target = bounds
	b.SetBounds(bounds)
}

// IsHit reports whether the point falls in the target rectangle,
// inclusively. Widgets with non-rectangular shapes shadow this.
func (b *Base) IsHit(x, y float64) bool { return b.target.Contains(x, y) }

// Tag returns the control's addressing tag, or NoTag.
func (b *Base) Tag() int { return b.tag }

// SetTag assigns the addressing tag used for message delivery.
func (b *Base) SetTag(tag int) { b.tag = tag }

// Group returns the name used to batch show/hide operations.
func (b *Base) Group() string { return b.group }

// SetGroup assigns the control to a named group.
func (b *Base) SetGroup(group string) { b.group = group }

// Tooltip returns the hover tooltip text.
func (b *Base) Tooltip() string { return b.tooltip }

// SetTooltip sets the hover tooltip text.
func (b *Base) SetTooltip(text string) { b.tooltip = text }

// TextEntryLength returns the maximum characters allowed in a text prompt.
func (b *Base) TextEntryLength() int { return b.textEntryLength }

// SetTextEntryLength bounds text entered through a prompt.
func (b *Base) SetTextEntryLength(n int) { b.textEntryLength = n }

// SetActionFunc installs the callback run by triggering interactions.
func (b *Base) SetActionFunc(fn ActionFunc) { b.actionFunc = fn }

// ActionFunc returns the installed action callback, or nil.
func (b *Base) ActionFunc() ActionFunc { return b.actionFunc }

// NumValues returns the number of value slots; always at least one.
func (b *Base) NumValues() int { return len(b.vals) }

func (b *Base) checkValIdx(valIdx int) {
	if valIdx < 0 || valIdx >= len(b.vals) {
		panic(fmt.Sprintf("control: valIdx %d out of range [0,%d)", valIdx, len(b.vals)))
	}
}

// forEachVal applies fn to the indicated slot, or to every slot in
// ascending order when valIdx is AllValues.
func (b *Base) forEachVal(valIdx int, fn func(valIdx int)) {
	if valIdx > NoValIdx {
		b.checkValIdx(valIdx)
		fn(valIdx)
		return
	}
	for v := range b.vals {
		fn(v)
	}
}

// Value returns the normalized value of a slot.
func (b *Base) Value(valIdx int) float64 {
	b.checkValIdx(valIdx)
	return b.vals[valIdx].value
}

// SetValue stores a normalized value exactly as given (no clamping) and
// marks the control dirty without notifying. Callers that need the
// delegate informed follow with SetDirty(true, valIdx).
func (b *Base) SetValue(value float64, valIdx int) {
	b.checkValIdx(valIdx)
	b.vals[valIdx].value = value
	b.dirty = true
}

// ParamIdx returns the parameter index bound to a slot, or NoParam.
func (b *Base) ParamIdx(valIdx int) int {
	b.checkValIdx(valIdx)
	return b.vals[valIdx].param
}

// SetParamIdx rebinds a slot to a parameter index (or NoParam) and marks
// the control dirty.
func (b *Base) SetParamIdx(paramIdx, valIdx int) {
	b.checkValIdx(valIdx)
	b.vals[valIdx].param = paramIdx
	b.SetDirty(false, valIdx)
}

// SlotForParam returns the slot bound to paramIdx, or NoValIdx.
func (b *Base) SlotForParam(paramIdx int) int {
	for v := range b.vals {
		if b.vals[v].param == paramIdx {
			return v
		}
	}
	return NoValIdx
}

// ValIdxForPos maps a position to the value slot it addresses. The default
// answers 0 for single-value controls and NoValIdx otherwise; multi-value
// widgets shadow this to hit-test their sub-regions.
func (b *Base) ValIdxForPos(x, y float64) int {
	if len(b.vals) == 1 {
		return 0
	}
	return NoValIdx
}

// Param returns the descriptor of the parameter bound to a slot, or nil
// for unbound slots and unattached controls.
func (b *Base) Param(valIdx int) *param.Param {
	b.checkValIdx(valIdx)
	if b.delegate == nil || b.vals[valIdx].param == NoParam {
		return nil
	}
	return b.delegate.Param(b.vals[valIdx].param)
}

// SetValueFromDelegate stores an external-origin value and marks the
// control dirty. It never re-notifies the delegate, preventing feedback
// loops.
func (b *Base) SetValueFromDelegate(value float64, valIdx int) {
	b.SetValue(value, valIdx)
	b.SetDirty(false, valIdx)
}

// SetValueFromUserInput stores a user-origin value (from a completed text
// entry or menu prompt) and marks dirty with notification, propagating the
// value to the delegate.
func (b *Base) SetValueFromUserInput(value float64, valIdx int) {
	b.SetValue(value, valIdx)
	b.SetDirty(true, valIdx)
}

// SetValueToDefault resets one slot (or all, with AllValues) to its bound
// parameter's default, notifying the delegate.
func (b *Base) SetValueToDefault(valIdx int) {
	b.forEachVal(valIdx, func(v int) {
		if p := b.Param(v); p != nil {
			b.SetValue(p.DefaultNormalized(), v)
		}
	})
	b.SetDirty(true, valIdx)
}

// SetDirty always marks the control for redraw. With triggerAction set it
// additionally notifies the delegate of the current value for every bound
// slot indicated by valIdx, then invokes the action callback once. Every
// code path that changes a value funnels through here, so there is exactly
// one notification rule.
func (b *Base) SetDirty(triggerAction bool, valIdx int) {
	b.dirty = true
	if !triggerAction {
		return
	}
	b.forEachVal(valIdx, func(v int) {
		if p := b.vals[v].param; p > NoParam && b.delegate != nil {
			b.delegate.SendValueFromUI(p, b.vals[v].value)
		}
	})
	if b.actionFunc != nil {
		b.actionFunc(b.Self())
	}
}

// SetClean clears the redraw flag. Called by the container's redraw loop
// after drawing.
func (b *Base) SetClean() { b.dirty = false }

// Dirty reads the flag without running the animation step.
func (b *Base) Dirty() bool { return b.dirty }

// Hidden reports whether the control is hidden.
func (b *Base) Hidden() bool { return b.hidden }

// Hide shows or hides the control.
func (b *Base) Hide(hide bool) {
	b.hidden = hide
	b.SetDirty(false, AllValues)
}

// Grayed reports whether the control is grayed out.
func (b *Base) Grayed() bool { return b.grayed }

// GrayOut sets gray-out mode. Grayed controls receive hover or other mouse
// events only if the matching opt-in flag is set.
func (b *Base) GrayOut(gray bool) {
	b.grayed = gray
	b.SetDirty(false, AllValues)
}

// IgnoresMouse reports whether the control opts out of mouse dispatch
// entirely; the container never hit-tests such controls.
func (b *Base) IgnoresMouse() bool { return b.ignoreMouse }

// SetIgnoreMouse opts the control out of all mouse dispatch.
func (b *Base) SetIgnoreMouse(ignore bool) { b.ignoreMouse = ignore }

// MouseOverWhenGrayed reports whether hover events reach the control while
// grayed.
func (b *Base) MouseOverWhenGrayed() bool { return b.moWhenGrayed }

// SetMouseOverWhenGrayed opts grayed controls into hover events.
func (b *Base) SetMouseOverWhenGrayed(allow bool) { b.moWhenGrayed = allow }

// MouseEventsWhenGrayed reports whether non-hover mouse events reach the
// control while grayed.
func (b *Base) MouseEventsWhenGrayed() bool { return b.meWhenGrayed }

// SetMouseEventsWhenGrayed opts grayed controls into mouse events.
func (b *Base) SetMouseEventsWhenGrayed(allow bool) { b.meWhenGrayed = allow }

// DoubleClickAsSingle reports whether double clicks collapse onto the
// mouse-down handler, with the control claiming capture on that event.
func (b *Base) DoubleClickAsSingle() bool { return b.dblAsSingle }

// SetDoubleClickAsSingle collapses double clicks onto mouse down.
func (b *Base) SetDoubleClickAsSingle(enable bool) { b.dblAsSingle = enable }

// MouseIsOver reports the transient hover state maintained by the default
// hover handlers, usable from Draw without overriding them.
func (b *Base) MouseIsOver() bool { return b.mouseOver }

// WantsMidi reports whether MIDI messages sent to the UI reach this
// control.
func (b *Base) WantsMidi() bool { return b.wantsMidi }

// SetWantsMidi opts the control into MIDI delivery.
func (b *Base) SetWantsMidi(enable bool) { b.wantsMidi = enable }

// PromptEnabled reports whether right-clicking prompts for user input.
func (b *Base) PromptEnabled() bool { return b.promptEnabled }

// EnablePrompt enables prompting for user input on right click.
func (b *Base) EnablePrompt(enable bool) { b.promptEnabled = enable }

// OnMouseDown prompts for user input on right click when enabled;
// otherwise does nothing.
func (b *Base) OnMouseDown(x, y float64, mods input.Mods) {
	if mods.Right && b.promptEnabled {
		v := b.Self().ValIdxForPos(x, y)
		if v == NoValIdx {
			v = 0
		}
		b.PromptUserInput(v)
	}
}

// OnMouseUp does nothing by default.
func (b *Base) OnMouseUp(x, y float64, mods input.Mods) {}

// OnMouseDrag does nothing by default.
func (b *Base) OnMouseDrag(x, y, dx, dy float64, mods input.Mods) {}

// OnMouseDblClick prompts for user input on the slot under the cursor.
func (b *Base) OnMouseDblClick(x, y float64, mods input.Mods) {
	v := b.Self().ValIdxForPos(x, y)
	if v == NoValIdx {
		v = 0
	}
	b.PromptUserInput(v)
}

// OnMouseWheel does nothing by default.
func (b *Base) OnMouseWheel(x, y float64, mods input.Mods, delta float64) {}

// OnMouseOver records hover state and marks dirty, enabling hover-reactive
// drawing without overriding.
func (b *Base) OnMouseOver(x, y float64, mods input.Mods) {
	b.mouseOver = true
	b.SetDirty(false, AllValues)
}

// OnMouseOut clears hover state symmetrically with OnMouseOver.
func (b *Base) OnMouseOut() {
	b.mouseOver = false
	b.SetDirty(false, AllValues)
}

// OnKeyDown reports whether the key was consumed; false by default.
func (b *Base) OnKeyDown(x, y float64, key input.KeyPress) bool { return false }

// OnKeyUp reports whether the key was consumed; false by default.
func (b *Base) OnKeyUp(x, y float64, key input.KeyPress) bool { return false }

// OnDrop does nothing by default.
func (b *Base) OnDrop(payload string) {}

// OnInit does nothing by default.
func (b *Base) OnInit() {}

// OnResize does nothing by default. Widgets caching layout derived from
// bounds recompute it here.
func (b *Base) OnResize() {}

// OnRescale does nothing by default. Widgets caching raster data for the
// current draw scale rebuild it here.
func (b *Base) OnRescale() {}

// Draw does nothing by default; nearly every widget shadows it.
func (b *Base) Draw(r graphics.Renderer) {}

// PromptUserInput asks the UI collaborator to surface a value editor for
// the given slot over the control's bounds: a popup menu for stepped
// parameters with display texts, a text entry box otherwise. The outcome
// arrives later through OnPopupMenuSelection or OnTextEntryCompletion.
func (b *Base) PromptUserInput(valIdx int) {
	b.PromptUserInputAt(b.bounds, valIdx)
}

// PromptUserInputAt is PromptUserInput with explicit editor bounds.
func (b *Base) PromptUserInputAt(bounds graphics.Rect, valIdx int) {
	b.checkValIdx(valIdx)
	p := b.Param(valIdx)
	if p == nil || b.ui == nil {
		return
	}
	if p.Stepped() && len(p.DisplayTexts) > 0 {
		menu := NewMenu(p.Name)
		current := int(b.vals[valIdx].value*float64(p.NumSteps()-1) + 0.5)
		for i, text := range p.DisplayTexts {
			item := menu.AddItem(text)
			item.Checked = i == current
		}
		b.ui.CreatePopupMenu(b.Self(), menu, bounds, valIdx)
		return
	}
	natural := p.FromNormalized(b.vals[valIdx].value)
	b.ui.CreateTextEntry(b.Self(), bounds, valIdx, strconv.FormatFloat(natural, 'f', -1, 64))
}

// OnTextEntryCompletion parses the entered text with the bound parameter
// and applies it as user input. Text that does not parse means "no
// change"; there is no separate error channel.
func (b *Base) OnTextEntryCompletion(text string, valIdx int) {
	p := b.Param(valIdx)
	if p == nil {
		return
	}
	natural, err := p.Parse(text)
	if err != nil {
		return
	}
	b.Self().SetValueFromUserInput(p.ToNormalized(natural), valIdx)
}

// OnPopupMenuSelection applies a chosen menu item as user input. A nil
// menu or no chosen item means the user dismissed the prompt. NoValIdx
// marks a context menu; its selection goes to OnContextSelection instead.
func (b *Base) OnPopupMenuSelection(menu *Menu, valIdx int) {
	if menu == nil || menu.ChosenIdx() == NoSelection {
		return
	}
	if valIdx == NoValIdx {
		if h, ok := b.Self().(ContextMenuHandler); ok {
			h.OnContextSelection(menu.ChosenIdx())
		}
		return
	}
	p := b.Param(valIdx)
	if p == nil {
		return
	}
	steps := p.NumSteps()
	if steps < 2 {
		return
	}
	b.Self().SetValueFromUserInput(float64(menu.ChosenIdx())/float64(steps-1), valIdx)
}

// SnapToMouse maps an absolute point to a normalized value by projecting
// it onto track along direction, clamping to the track extent and storing
// the result for the indicated slot(s) with notification. Values snap to a
// 0.001 grid. scalar rescales the mapping: above 1 the handle travels
// slower than the mouse.
func (b *Base) SnapToMouse(x, y float64, direction graphics.Direction, track graphics.Rect, valIdx int, scalar float64) {
	x, y = track.Constrain(x, y)

	var val float64
	if direction == graphics.Vertical {
		if track.Height() > 0 {
			val = 1 - (y-track.Top)/track.Height()
		}
	} else {
		if track.Width() > 0 {
			val = (x - track.Left) / track.Width()
		}
	}
	if scalar > 0 {
		val /= scalar
	}
	val = graphics.Clamp01(math.Round(val/0.001) * 0.001)

	b.forEachVal(valIdx, func(v int) {
		b.SetValue(val, v)
	})
	b.SetDirty(true, valIdx)
}
