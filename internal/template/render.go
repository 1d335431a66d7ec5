package template

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/awayteam/internal/layout"
)

var ErrNoFonts = errors.New("template has no fonts")

// Render draws c onto a fresh canvas. paint fills the icon region and may be nil.
//
// Rectangular variants draw, in order: background, type marker, description, title, icon
// region, then any overlay. The circular variant draws its own face instead.
func (t *Template) Render(c Content, paint Painter) (image.Image, error) {
	if t.Fonts == nil {
		return nil, ErrNoFonts
	}
	caps := t.Variant.Caps()

	dc := gg.NewContext(t.Width, t.Height)
	dc.SetColor(t.Background)
	dc.Clear()

	if caps.Has(IsCircular) {
		t.drawCircleFace(dc, c)
		return dc.Image(), nil
	}

	t.drawTypeMarker(dc, c.CardType())

	if caps.Has(HasText) {
		if box := t.TextBox(c); box.Height() > 0 {
			t.drawText(dc, c.Description(), box)
		}
	}

	if caps.Has(HasTitle) {
		t.drawTitle(dc, c.Title(), t.TitleBox(c.Title()))
	}

	if caps.Has(HasIcons) {
		box := t.ImageBox(c)
		t.drawRect(dc, box)
		if paint != nil {
			if err := paint(dc, box); err != nil {
				return nil, fmt.Errorf("paint icons for %q: %w", c.Title(), err)
			}
		}
	}

	if caps.Has(HasTriggerOverlay) {
		if tc, ok := c.(TriggerContent); ok {
			if err := t.drawTrigger(dc, tc); err != nil {
				return nil, err
			}
			t.drawRating(dc, tc)
		}
	}

	return dc.Image(), nil
}

func (t *Template) drawRect(dc *gg.Context, box layout.BBox) {
	dc.DrawRoundedRectangle(
		float64(box.X1), float64(box.Y1),
		float64(box.Width()), float64(box.Height()),
		float64(t.RectRadius),
	)
	dc.SetLineWidth(float64(t.RectStrokeWidth))
	dc.SetColor(t.Foreground)
	dc.Stroke()
}

func (t *Template) drawTitle(dc *gg.Context, title string, box layout.BBox) {
	t.drawRect(dc, box)

	face := t.Fonts.Face(t.TitleFontSizeFor(title))
	dc.SetColor(t.Foreground)
	drawTop(dc, face, title, box.X1+t.RectRadius+t.TitlePadding, box.Y1+t.TitlePadding)
}

// drawTypeMarker writes the upper-cased card type right-aligned in the footer strip.
func (t *Template) drawTypeMarker(dc *gg.Context, cardType string) {
	height := t.textHeight(t.TypeFontSize)
	x := t.Width - t.Inset
	y := t.Height - t.Inset - height/2 - t.TypePadding

	dc.SetColor(t.Foreground)
	drawMiddle(dc, t.Fonts.Face(t.TypeFontSize), strings.ToUpper(cardType), float64(x), float64(y), 1)
}

// drawText wraps text to the box less its padding and centres the block in the box.
func (t *Template) drawText(dc *gg.Context, text string, box layout.BBox) {
	t.drawRect(dc, box)

	metrics := t.Fonts.Metrics(t.TextFontSize)
	lines := layout.Wrap(text, metrics, box.Width()-2*t.TextPadding)
	cx, cy := box.Center()

	dc.SetColor(t.Foreground)
	drawLines(dc, t.Fonts.Face(t.TextFontSize), lines, float64(cx), float64(cy), metrics.Height())
}

// drawTop draws s with the top of its ascent at y.
func drawTop(dc *gg.Context, face font.Face, s string, x, y int) {
	dc.SetFontFace(face)
	dc.DrawString(s, float64(x), float64(y+face.Metrics().Ascent.Ceil()))
}

// drawMiddle draws s vertically centred on y. ax is the horizontal anchor: 0 puts the left
// edge at x, 0.5 the centre, 1 the right edge.
func drawMiddle(dc *gg.Context, face font.Face, s string, x, y, ax float64) {
	dc.SetFontFace(face)
	met := face.Metrics()
	w, _ := dc.MeasureString(s)
	baseline := y + float64(met.Ascent.Ceil()-met.Descent.Ceil())/2
	dc.DrawString(s, x-ax*w, baseline)
}

// drawLines centres a block of lines on (cx, cy), each line centred horizontally.
func drawLines(dc *gg.Context, face font.Face, lines []string, cx, cy float64, lineHeight int) {
	top := cy - float64(len(lines)*lineHeight)/2
	for i, line := range lines {
		y := top + float64(i*lineHeight) + float64(lineHeight)/2
		drawMiddle(dc, face, strings.TrimRight(line, " "), cx, y, 0.5)
	}
}
