package chart

import "image/color"

// Point is a position in plot pixels.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in plot pixels.
type Rect struct {
	X, Y, W, H float32
}

// Surface is the minimal paint target the renderer draws against. It mirrors
// a classic painter: a mutable stroke pen for lines, direct fills for
// rectangles, and a save/restore stack so a draw pass can scope its pen
// changes and never leak style into the next frame.
//
// Implementations: the Fyne widget builds canvas objects, ImageSurface
// rasterizes into an RGBA image, and tests record calls.
type Surface interface {
	// SetStroke sets the pen used by subsequent DrawLine calls.
	SetStroke(c color.Color, width float32)

	// DrawLine strokes a line between two points with the current pen.
	DrawLine(p1, p2 Point)

	// FillRect fills a rectangle. The fill color is passed per call and
	// does not touch the stroke pen.
	FillRect(r Rect, fill color.Color)

	// Save pushes the current pen state; Restore pops it.
	Save()
	Restore()
}
