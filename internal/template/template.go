// Package template lays out and draws card faces.
//
// A Template is plain configuration; every region box is derived from it arithmetically
// (and, for the title, from the title's measured size), so changing one constant moves
// every dependent box. Drawing happens on a fogleman/gg context.
package template

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/awayteam/internal/icon"
	"github.com/youruser/awayteam/internal/layout"
)

// Content is what a template needs from a card for one render.
type Content interface {
	Title() string
	Description() string
	CardType() string
}

// Timing says on which side of its label the trigger icon sits.
type Timing int

const (
	NoTiming Timing = iota
	Before
	After
)

// ParseTiming maps "before" and "after" (any case) to a Timing; anything else is NoTiming.
func ParseTiming(s string) Timing {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before":
		return Before
	case "after":
		return After
	}
	return NoTiming
}

// TriggerContent is what the trigger overlay reads on top of Content.
type TriggerContent interface {
	Content
	Trigger() (label string, timing Timing)
	Rating() int
	RatingTags() []string
}

// Painter fills the icon region of a card. It is supplied per render by whoever owns the
// card, so the template never needs to know how a card arranges its icons.
type Painter func(dc *gg.Context, box layout.BBox) error

// Typeface provides metrics and drawable faces at a pixel size.
type Typeface interface {
	layout.Sizer
	Face(size int) font.Face
}

type Template struct {
	Variant Variant

	Width  int
	Height int

	TextBoxRows int

	Inset         int
	BoxSeparation int

	RectRadius      int
	RectStrokeWidth int

	TitleFontSize    int
	MinTitleFontSize int
	TitlePadding     int

	TypeFontSize int
	TypePadding  int

	TextFontSize int
	TextPadding  int

	Background color.Color
	Foreground color.Color

	Fonts Typeface
	Icons icon.Source
	// TriggerIcon is the icon name drawn beside a trigger label.
	TriggerIcon string
}

// Default is the 407×585 card.
func Default() Template {
	return Template{
		Variant:          Standard,
		Width:            407,
		Height:           585,
		TextBoxRows:      8,
		Inset:            24,
		BoxSeparation:    8,
		RectRadius:       8,
		RectStrokeWidth:  3,
		TitleFontSize:    32,
		MinTitleFontSize: 16,
		TitlePadding:     4,
		TypeFontSize:     16,
		TypePadding:      2,
		TextFontSize:     24,
		TextPadding:      8,
		Background:       color.White,
		Foreground:       color.Black,
	}
}

// Poker is the 825×1125 print card: every size of Default doubled with a wider bleed inset.
func Poker() Template {
	t := Default()
	t.Width = 825
	t.Height = 1125
	t.Inset = 75
	t.BoxSeparation *= 2
	t.RectRadius *= 2
	t.RectStrokeWidth *= 2
	t.TitleFontSize *= 2
	t.MinTitleFontSize *= 2
	t.TitlePadding *= 2
	t.TypeFontSize *= 2
	t.TypePadding *= 2
	t.TextFontSize *= 2
	t.TextPadding *= 2
	return t
}

// Round returns a square copy of t, as tall as t, for circular faces.
func Round(t Template) Template {
	t.Variant = Circle
	t.Width = t.Height
	return t
}

// Preset looks a base template up by name.
func Preset(name string) (Template, error) {
	switch strings.ToLower(name) {
	case "", "standard":
		return Default(), nil
	case "poker":
		return Poker(), nil
	}
	return Template{}, fmt.Errorf("unknown template preset %q", name)
}

// Apply overrides numeric fields by their snake_case names.
func (t *Template) Apply(overrides map[string]int) error {
	fields := map[string]*int{
		"width":               &t.Width,
		"height":              &t.Height,
		"text_box_rows":       &t.TextBoxRows,
		"inset":               &t.Inset,
		"box_separation":      &t.BoxSeparation,
		"rect_radius":         &t.RectRadius,
		"rect_stroke_width":   &t.RectStrokeWidth,
		"title_font_size":     &t.TitleFontSize,
		"min_title_font_size": &t.MinTitleFontSize,
		"title_padding":       &t.TitlePadding,
		"type_font_size":      &t.TypeFontSize,
		"type_padding":        &t.TypePadding,
		"text_font_size":      &t.TextFontSize,
		"text_padding":        &t.TextPadding,
	}
	for name, v := range overrides {
		field, ok := fields[name]
		if !ok {
			return fmt.Errorf("unknown template field %q", name)
		}
		if v < 0 {
			return fmt.Errorf("template field %s: negative value %d", name, v)
		}
		*field = v
	}
	return nil
}

// With returns a copy of t drawing variant v.
func (t Template) With(v Variant) *Template {
	t.Variant = v
	return &t
}

// Set holds one template per variant, all sharing fonts and icons.
type Set map[Variant]*Template

// NewSet derives every variant from base. The circular variant gets a square canvas.
func NewSet(base Template) Set {
	set := Set{}
	for _, v := range Variants() {
		if v == Circle {
			round := Round(base)
			set[v] = &round
			continue
		}
		set[v] = base.With(v)
	}
	return set
}

// Base is the standard template the rest of the set was derived from.
func (s Set) Base() *Template {
	return s[Standard]
}
