package testing

import "github.com/go-fader/fader/pkg/graphics"

// DrawOp is one recorded renderer call.
type DrawOp struct {
	Kind  string
	Color graphics.Color
	Rect  graphics.Rect
	Text  string
	Frame int
}

// Renderer records every draw call for assertion. The zero value is ready
// to use.
type Renderer struct {
	Ops []DrawOp
}

var _ graphics.Renderer = (*Renderer)(nil)

// Reset discards recorded calls.
func (r *Renderer) Reset() { r.Ops = nil }

// CountKind returns how many recorded calls have the given kind.
func (r *Renderer) CountKind(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Renderer) FillRect(color graphics.Color, rect graphics.Rect) {
	r.Ops = append(r.Ops, DrawOp{Kind: "fillRect", Color: color, Rect: rect})
}

func (r *Renderer) StrokeRect(color graphics.Color, rect graphics.Rect, thickness float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: "strokeRect", Color: color, Rect: rect})
}

func (r *Renderer) FillRoundRect(color graphics.Color, rect graphics.Rect, radius float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: "fillRoundRect", Color: color, Rect: rect})
}

func (r *Renderer) StrokeRoundRect(color graphics.Color, rect graphics.Rect, radius, thickness float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: "strokeRoundRect", Color: color, Rect: rect})
}

func (r *Renderer) FillCircle(color graphics.Color, cx, cy, radius float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: "fillCircle", Color: color,
		Rect: graphics.Rect{Left: cx - radius, Top: cy - radius, Right: cx + radius, Bottom: cy + radius}})
}

func (r *Renderer) DrawLine(color graphics.Color, x1, y1, x2, y2, thickness float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: "drawLine", Color: color,
		Rect: graphics.Rect{Left: x1, Top: y1, Right: x2, Bottom: y2}})
}

func (r *Renderer) DrawBitmapFrame(bitmap graphics.Bitmap, rect graphics.Rect, frame int, blend graphics.Blend) {
	r.Ops = append(r.Ops, DrawOp{Kind: "drawBitmapFrame", Rect: rect, Frame: frame})
}

func (r *Renderer) DrawText(color graphics.Color, text string, rect graphics.Rect) {
	r.Ops = append(r.Ops, DrawOp{Kind: "drawText", Color: color, Rect: rect, Text: text})
}
