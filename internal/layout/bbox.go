// Package layout holds the pure geometry and text layout used by card templates.
// Nothing in here rasterizes; text is measured through the Metrics interface.
package layout

import (
	"image"
	"math"
)

// BBox is an axis-aligned box given by its top-left (X1, Y1) and bottom-right (X2, Y2) corners.
type BBox struct {
	X1, Y1, X2, Y2 int
}

func Box(x1, y1, x2, y2 int) BBox {
	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (b BBox) Width() int  { return b.X2 - b.X1 }
func (b BBox) Height() int { return b.Y2 - b.Y1 }

// Center returns the integer midpoint, rounded towards the top-left.
func (b BBox) Center() (int, int) {
	return b.X1 + b.Width()/2, b.Y1 + b.Height()/2
}

func (b BBox) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

func (b BBox) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Circle is the disc inscribed in a card face.
type Circle struct {
	CX, CY, R float64
}

// InscribedCircle returns the largest circle centred in a w×h canvas that keeps inset pixels
// clear on the tighter axis.
func InscribedCircle(w, h, inset int) Circle {
	r := float64(min(w, h))/2 - float64(inset)
	if r < 0 {
		r = 0
	}
	return Circle{CX: float64(w) / 2, CY: float64(h) / 2, R: r}
}

// Chord returns the length of the horizontal chord at vertical distance dy from the centre.
// Outside the circle it is 0.
func (c Circle) Chord(dy float64) float64 {
	d := c.R*c.R - dy*dy
	if d <= 0 {
		return 0
	}
	return 2 * math.Sqrt(d)
}

func (c Circle) Bounds() BBox {
	return Box(
		int(math.Round(c.CX-c.R)), int(math.Round(c.CY-c.R)),
		int(math.Round(c.CX+c.R)), int(math.Round(c.CY+c.R)),
	)
}

// LineWidths returns a per-line width function for text stacked away from the circle's
// centre line. Line i occupies the band [gap+i*lineHeight, gap+(i+1)*lineHeight] from the
// centre; its usable width is the chord at the band's outer edge minus padding on both sides.
func (c Circle) LineWidths(lineHeight, gap, padding int) func(int) int {
	return func(i int) int {
		dy := float64(gap + (i+1)*lineHeight)
		w := int(c.Chord(dy)) - 2*padding
		if w < 0 {
			return 0
		}
		return w
	}
}
