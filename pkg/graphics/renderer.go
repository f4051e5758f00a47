package graphics

// Renderer is the drawing backend a control paints itself through. The
// control core never owns a backend; the host supplies one per redraw tick.
// Implementations translate these primitives to whatever raster or vector
// API drives the screen (or record them, in tests).
type Renderer interface {
	// FillRect fills a rectangle with a solid color.
	FillRect(color Color, rect Rect)
	// StrokeRect outlines a rectangle with the given line thickness.
	StrokeRect(color Color, rect Rect, thickness float64)
	// FillRoundRect fills a rounded rectangle with uniform corner radius.
	FillRoundRect(color Color, rect Rect, radius float64)
	// StrokeRoundRect outlines a rounded rectangle.
	StrokeRoundRect(color Color, rect Rect, radius, thickness float64)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(color Color, cx, cy, radius float64)
	// DrawLine draws a straight line segment.
	DrawLine(color Color, x1, y1, x2, y2, thickness float64)
	// DrawBitmapFrame composites one frame of a bitmap into rect.
	DrawBitmapFrame(bitmap Bitmap, rect Rect, frame int, blend Blend)
	// DrawText draws a string inside rect. Layout details (font, alignment)
	// belong to the backend.
	DrawText(color Color, text string, rect Rect)
}
