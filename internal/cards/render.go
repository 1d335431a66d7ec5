package cards

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/youruser/awayteam/internal/icon"
	"github.com/youruser/awayteam/internal/layout"
	"github.com/youruser/awayteam/internal/template"
)

// Slots returns where each of the card's icons goes inside box.
func (c Card) Slots(box layout.BBox) []image.Rectangle {
	if len(c.Icons) == 0 {
		return nil
	}
	switch c.Arrangement {
	case Row:
		return layout.RowSlots(box, len(c.Icons))
	case Column:
		return layout.ColumnSlots(box, len(c.Icons))
	}
	return nil
}

// Painter draws the card's icons from src into the image box. It returns nil for a card
// without icons.
func (c Card) Painter(src icon.Source) template.Painter {
	if len(c.Icons) == 0 || c.Arrangement == NoIcons || src == nil {
		return nil
	}
	return func(dc *gg.Context, box layout.BBox) error {
		for i, slot := range c.Slots(box) {
			if slot.Dx() <= 0 {
				continue
			}
			img, err := src.Icon(c.Icons[i], slot.Dx())
			if err != nil {
				return err
			}
			dc.DrawImage(img, slot.Min.X, slot.Min.Y)
		}
		return nil
	}
}

// Render draws c with the template for its variant.
func (c Card) Render(set template.Set, src icon.Source) (image.Image, error) {
	t, ok := set[c.Variant]
	if !ok {
		return nil, fmt.Errorf("render %q: no %s template", c.Name, c.Variant)
	}
	return t.Render(c, c.Painter(src))
}
