package graphics

import "fmt"

// BlendMode selects how a bitmap is composited over what is already drawn.
type BlendMode int

const (
	// BlendDefault is straight source-over compositing.
	BlendDefault BlendMode = iota
	// BlendClobber replaces the destination entirely.
	BlendClobber
	// BlendAdd sums source and destination channels.
	BlendAdd
	// BlendColorDodge brightens the destination by the source.
	BlendColorDodge
)

// String returns a human-readable representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendDefault:
		return "default"
	case BlendClobber:
		return "clobber"
	case BlendAdd:
		return "add"
	case BlendColorDodge:
		return "color-dodge"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// Blend pairs a compositing mode with an opacity weight.
type Blend struct {
	Mode BlendMode
	// Weight is the opacity applied to the source, 0-1.
	Weight float64
}

// DefaultBlend returns source-over compositing at full opacity.
func DefaultBlend() Blend {
	return Blend{Mode: BlendDefault, Weight: 1.0}
}
