package template

import (
	"strings"

	"github.com/youruser/awayteam/internal/layout"
)

func (t *Template) x1() int { return t.Inset }
func (t *Template) x2() int { return t.Width - t.Inset }

func (t *Template) textHeight(size int) int {
	return t.Fonts.Metrics(size).Height()
}

// titleWidth is the room a title has between the rounded corners of its box.
func (t *Template) titleWidth() int {
	return t.x2() - t.x1() - 2*(t.RectRadius+t.TitlePadding)
}

// TitleFontSizeFor is the size title is drawn at: the nominal size, shrunk a point at a time
// until the title fits its box or MinTitleFontSize is reached.
func (t *Template) TitleFontSizeFor(title string) int {
	return layout.FitSize(title, t.Fonts, t.TitleFontSize, t.MinTitleFontSize, t.titleWidth())
}

func (t *Template) circle() layout.Circle {
	return layout.InscribedCircle(t.Width, t.Height, t.Inset)
}

// circleGap is the distance between the centre line and the first title or text line.
func (t *Template) circleGap() int {
	return t.BoxSeparation / 2
}

// TitleBox is the title strip at the top of the card, as tall as the title at its fitted size.
func (t *Template) TitleBox(title string) layout.BBox {
	if t.Variant.Caps().Has(IsCircular) {
		b := t.circle().Bounds()
		_, cy := b.Center()
		return layout.Box(b.X1, b.Y1, b.X2, cy-t.circleGap())
	}
	height := t.textHeight(t.TitleFontSizeFor(title)) + 2*t.TitlePadding
	return layout.Box(t.x1(), t.Inset, t.x2(), t.Inset+height)
}

// TypeMarkerOffset is the height of the footer strip holding the card type.
func (t *Template) TypeMarkerOffset() int {
	return t.textHeight(t.TypeFontSize) + 2*t.TypePadding
}

// TextBox is the description region above the footer strip.
//
// Variants that draw icons give it TextBoxRows rows; without icons it stretches up to the
// title. When a variant has no description, or a variant with icons gets an empty one, the
// box collapses to zero height just below the footer line so the icon region takes its room.
func (t *Template) TextBox(c Content) layout.BBox {
	caps := t.Variant.Caps()
	if caps.Has(IsCircular) {
		b := t.circle().Bounds()
		_, cy := b.Center()
		return layout.Box(b.X1, cy+t.circleGap(), b.X2, b.Y2)
	}

	bottom := t.Height - t.Inset - t.TypeMarkerOffset()

	switch {
	case !caps.Has(HasText), caps.Has(HasIcons) && strings.TrimSpace(c.Description()) == "":
		y := bottom + t.BoxSeparation
		return layout.Box(t.x1(), y, t.x2(), y)
	case !caps.Has(HasIcons):
		top := t.TitleBox(c.Title()).Y2 + t.BoxSeparation
		return layout.Box(t.x1(), top, t.x2(), bottom)
	}

	height := t.TextBoxRows*t.textHeight(t.TextFontSize) + 2*t.TextPadding
	return layout.Box(t.x1(), bottom-height-t.BoxSeparation, t.x2(), bottom)
}

// ImageBox is the space left between the title and text boxes, less a separation margin on
// both sides. It never has negative height.
func (t *Template) ImageBox(c Content) layout.BBox {
	if t.Variant.Caps().Has(IsCircular) {
		cx, cy := t.circle().Bounds().Center()
		return layout.Box(cx, cy, cx, cy)
	}
	top := t.TitleBox(c.Title()).Y2 + t.BoxSeparation
	bottom := t.TextBox(c).Y1 - t.BoxSeparation
	if bottom < top {
		bottom = top
	}
	return layout.Box(t.x1(), top, t.x2(), bottom)
}
