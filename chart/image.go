package chart

import (
	"image"
	"image/color"
	"image/draw"
)

type strokeState struct {
	color color.Color
	width float32
}

// ImageSurface rasterizes draw calls into an RGBA image. It backs snapshot
// export; the live chart goes through the Fyne widget instead. Rendering is
// unantialiased nearest-pixel, which is plenty for candle bodies and wicks.
type ImageSurface struct {
	img    *image.RGBA
	stroke strokeState
	stack  []strokeState
}

// NewImageSurface returns a surface over a fresh RGBA image of the given
// size, filled with the background color.
func NewImageSurface(width, height int, background color.Color) *ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &ImageSurface{
		img:    img,
		stroke: strokeState{color: color.Black, width: 1},
	}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) SetStroke(c color.Color, width float32) {
	if width < 1 {
		width = 1
	}
	s.stroke = strokeState{color: c, width: width}
}

func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.stroke)
}

func (s *ImageSurface) Restore() {
	if n := len(s.stack); n > 0 {
		s.stroke = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

// DrawLine strokes a line with Bresenham stepping, stamping a square of the
// pen width at each step. Wicks are vertical and overlays are shallow
// diagonals, so this stays crisp without antialiasing.
func (s *ImageSurface) DrawLine(p1, p2 Point) {
	x1, y1 := int(p1.X+0.5), int(p1.Y+0.5)
	x2, y2 := int(p2.X+0.5), int(p2.Y+0.5)

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	pen := int(s.stroke.width + 0.5)
	for {
		s.stamp(x1, y1, pen)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// FillRect fills a rectangle, clipped to the image bounds.
func (s *ImageSurface) FillRect(r Rect, fill color.Color) {
	rect := image.Rect(int(r.X+0.5), int(r.Y+0.5), int(r.X+r.W+0.5), int(r.Y+r.H+0.5))
	rect = rect.Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(s.img, rect, image.NewUniform(fill), image.Point{}, draw.Src)
}

// stamp fills a pen-sized square centered on (x, y).
func (s *ImageSurface) stamp(x, y, pen int) {
	half := pen / 2
	for py := y - half; py < y-half+pen; py++ {
		for px := x - half; px < x-half+pen; px++ {
			if (image.Point{X: px, Y: py}).In(s.img.Bounds()) {
				s.img.Set(px, py, s.stroke.color)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
