package template

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/youruser/awayteam/internal/layout"
)

// badgeOffset keeps the rating badge off the text box's corner.
const badgeOffset = 8

var (
	badgeDefault  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	badgeNeutral  = color.NRGBA{R: 200, G: 200, B: 0, A: 255}
	badgeNegative = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	badgePositive = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
)

// BadgeColors picks the rating badge fill and text colour from a card's rating tags.
// The tags are checked neutral, negative, positive in that order and each match overwrites
// the previous one, so a card tagged both negative and positive gets a green badge that
// keeps the negative tag's white text.
func BadgeColors(tags []string) (fill, text color.Color) {
	fill, text = badgeDefault, color.Black
	if hasTag(tags, "neutral") {
		fill = badgeNeutral
	}
	if hasTag(tags, "negative") {
		fill = badgeNegative
		text = color.White
	}
	if hasTag(tags, "positive") {
		fill = badgePositive
	}
	return fill, text
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// BadgeBox is the square the rating badge circle is inscribed in, hanging off the top-right
// corner of the text box.
func (t *Template) BadgeBox(c Content) layout.BBox {
	box := t.TextBox(c)
	diameter := t.textHeight(t.TitleFontSize) + 2
	x1 := box.X2 - diameter - badgeOffset
	y1 := box.Y1 + badgeOffset
	return layout.Box(x1, y1, x1+diameter, y1+diameter)
}

func (t *Template) drawRating(dc *gg.Context, c TriggerContent) {
	box := t.BadgeBox(c)
	fill, text := BadgeColors(c.RatingTags())

	cx := float64(box.X1) + float64(box.Width())/2
	cy := float64(box.Y1) + float64(box.Height())/2
	dc.DrawCircle(cx, cy, float64(box.Width())/2)
	dc.SetColor(fill)
	dc.Fill()

	dc.SetColor(text)
	drawMiddle(dc, t.Fonts.Face(t.TitleFontSize), strconv.Itoa(c.Rating()), cx, cy, 0.5)
}

// TriggerLayout is where the trigger label and its icon go. IconSize is 0 when no icon is
// drawn.
type TriggerLayout struct {
	Label    string
	LabelX   int
	MiddleY  int
	IconX    int
	IconY    int
	IconSize int
}

// TriggerLayoutFor places the upper-cased trigger label in the bottom-left of the footer.
// A "before" trigger puts the icon left of the label, "after" puts it right of it.
func (t *Template) TriggerLayoutFor(c TriggerContent) TriggerLayout {
	label, timing := c.Trigger()
	label = strings.ToUpper(label)

	metrics := t.Fonts.Metrics(t.TypeFontSize)
	height := metrics.Height()

	left := t.x1() + t.RectRadius
	l := TriggerLayout{
		Label:   label,
		LabelX:  left,
		MiddleY: t.Height - t.Inset - height/2 - t.TypePadding,
	}

	switch timing {
	case Before:
		l.IconSize = height
		l.IconX = left
		l.LabelX = left + height + t.TypePadding
	case After:
		l.IconSize = height
		l.IconX = left + metrics.Width(label) + t.TypePadding
	}
	l.IconY = l.MiddleY - l.IconSize/2
	return l
}

func (t *Template) drawTrigger(dc *gg.Context, c TriggerContent) error {
	l := t.TriggerLayoutFor(c)

	dc.SetColor(t.Foreground)
	drawMiddle(dc, t.Fonts.Face(t.TypeFontSize), l.Label, float64(l.LabelX), float64(l.MiddleY), 0)

	if l.IconSize == 0 || t.Icons == nil || t.TriggerIcon == "" {
		return nil
	}
	img, err := t.Icons.Icon(t.TriggerIcon, l.IconSize)
	if err != nil {
		return fmt.Errorf("trigger icon: %w", err)
	}
	dc.DrawImage(img, l.IconX, l.IconY)
	return nil
}
