// Package style defines the shared presentation values vector-drawn
// controls use: a palette of semantic color roles plus geometry knobs.
// A Spec is an immutable value passed at construction; there is no
// process-wide mutable palette.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-fader/fader/pkg/graphics"
)

// ColorRole names one slot of the palette. Roles are semantic: a widget
// asks for "the pressed color", never for a literal color value.
type ColorRole int

const (
	// Background fills the area behind the handle.
	Background ColorRole = iota
	// Foreground fills the handle itself.
	Foreground
	// Pressed fills the handle while the mouse is down.
	Pressed
	// Frame outlines the handle.
	Frame
	// Highlight marks hover and peak indicators.
	Highlight
	// Shadow draws drop and emboss shadows.
	Shadow
	// Extra1, Extra2, Extra3 are free slots for specialized widgets.
	Extra1
	Extra2
	Extra3

	// NumRoles is the palette size.
	NumRoles
)

// String returns the role's name as used in style sheets.
func (r ColorRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ColorRole(%d)", int(r))
}

var roleNames = map[ColorRole]string{
	Background: "background",
	Foreground: "foreground",
	Pressed:    "pressed",
	Frame:      "frame",
	Highlight:  "highlight",
	Shadow:     "shadow",
	Extra1:     "extra1",
	Extra2:     "extra2",
	Extra3:     "extra3",
}

// Spec is a complete style: nine color roles plus the geometry of
// vector-drawn handles.
type Spec struct {
	Colors [NumRoles]graphics.Color

	// Roundness scales handle corner radius, 0 (square) to 1 (pill).
	Roundness float64
	// FrameThickness is the outline stroke width.
	FrameThickness float64
	// ShadowOffset is the drop shadow displacement.
	ShadowOffset float64

	DrawFrame   bool
	DrawShadows bool
	Emboss      bool
}

// Default returns the stock dark style.
func Default() Spec {
	var s Spec
	s.Colors[Background] = graphics.ColorTransparent
	s.Colors[Foreground] = graphics.ColorGray
	s.Colors[Pressed] = graphics.ColorLightGray
	s.Colors[Frame] = graphics.ColorDarkGray
	s.Colors[Highlight] = graphics.RGBA8(0xFF, 0xFF, 0xFF, 0x40)
	s.Colors[Shadow] = graphics.RGBA8(0x00, 0x00, 0x00, 0x60)
	s.Colors[Extra1] = graphics.RGB(0x4C, 0xAF, 0x50)
	s.Colors[Extra2] = graphics.RGB(0xFF, 0x98, 0x00)
	s.Colors[Extra3] = graphics.RGB(0xF4, 0x43, 0x36)
	s.Roundness = 0
	s.FrameThickness = 2
	s.ShadowOffset = 3
	s.DrawFrame = true
	s.DrawShadows = true
	return s
}

// Color returns the color for a role. Unknown roles fall back to the
// background slot.
func (s Spec) Color(role ColorRole) graphics.Color {
	if role < 0 || role >= NumRoles {
		return s.Colors[Background]
	}
	return s.Colors[role]
}

// WithColor returns a copy of the spec with one role replaced.
func (s Spec) WithColor(role ColorRole, c graphics.Color) Spec {
	if role >= 0 && role < NumRoles {
		s.Colors[role] = c
	}
	return s
}

// ParseColor reads a "#RRGGBB" or "#RRGGBBAA" hex string.
func ParseColor(text string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("style: color %q: want #RRGGBB or #RRGGBBAA", text)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("style: color %q: %w", text, err)
	}
	if len(hex) == 6 {
		return graphics.Color(0xFF000000 | uint32(v)), nil
	}
	// RRGGBBAA on the wire, ARGB internally.
	return graphics.RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// FormatColor writes a color as "#RRGGBBAA".
func FormatColor(c graphics.Color) string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}
