package template

import (
	"strings"

	"github.com/fogleman/gg"

	"github.com/youruser/awayteam/internal/layout"
)

// CircleLines wraps the title and description of a circular face. Each line may be as wide
// as the circle's chord at the line's outer edge. Title lines stack upwards from the centre
// line and description lines downwards; whatever does not fit before the chord runs out is
// dropped.
func (t *Template) CircleLines(c Content) (title, text []string) {
	circle := t.circle()
	gap := t.circleGap()

	tm := t.Fonts.Metrics(t.TitleFontSize)
	title = layout.WrapAbove(c.Title(), tm, circle.LineWidths(tm.Height(), gap, t.TextPadding))

	if desc := strings.TrimSpace(c.Description()); desc != "" {
		dm := t.Fonts.Metrics(t.TextFontSize)
		text = layout.WrapLines(desc, dm, circle.LineWidths(dm.Height(), gap, t.TextPadding))
	}
	return title, text
}

func (t *Template) drawCircleFace(dc *gg.Context, c Content) {
	circle := t.circle()
	gap := float64(t.circleGap())

	dc.DrawCircle(circle.CX, circle.CY, circle.R)
	dc.SetLineWidth(float64(t.RectStrokeWidth))
	dc.SetColor(t.Foreground)
	dc.Stroke()

	title, text := t.CircleLines(c)

	titleHeight := float64(t.textHeight(t.TitleFontSize))
	face := t.Fonts.Face(t.TitleFontSize)
	for i, line := range title {
		fromCentre := float64(len(title) - 1 - i)
		y := circle.CY - gap - fromCentre*titleHeight - titleHeight/2
		drawMiddle(dc, face, strings.TrimRight(line, " "), circle.CX, y, 0.5)
	}

	textHeight := float64(t.textHeight(t.TextFontSize))
	face = t.Fonts.Face(t.TextFontSize)
	for i, line := range text {
		y := circle.CY + gap + float64(i)*textHeight + textHeight/2
		drawMiddle(dc, face, strings.TrimRight(line, " "), circle.CX, y, 0.5)
	}
}
