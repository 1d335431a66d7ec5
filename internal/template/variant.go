package template

import (
	"fmt"
	"strings"
)

// Caps is the set of regions a variant draws and how it draws them.
type Caps uint8

const (
	HasTitle Caps = 1 << iota
	HasText
	HasIcons
	IsCircular
	HasTriggerOverlay
)

func (c Caps) Has(flag Caps) bool {
	return c&flag == flag
}

// Variant is one member of the closed template family.
type Variant int

const (
	// Standard draws title, description and icon regions.
	Standard Variant = iota
	// TextOnly gives the icon region's space to the description.
	TextOnly
	// ImageOnly drops the description and gives its space to the icon region.
	ImageOnly
	// Circle lays title and description out inside a circular face.
	Circle
	// Trigger is TextOnly plus a trigger label and a rating badge.
	Trigger
)

var variantCaps = map[Variant]Caps{
	Standard:  HasTitle | HasText | HasIcons,
	TextOnly:  HasTitle | HasText,
	ImageOnly: HasTitle | HasIcons,
	Circle:    HasTitle | HasText | IsCircular,
	Trigger:   HasTitle | HasText | HasTriggerOverlay,
}

var variantNames = map[Variant]string{
	Standard:  "standard",
	TextOnly:  "text",
	ImageOnly: "image",
	Circle:    "circle",
	Trigger:   "trigger",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Standard, TextOnly, ImageOnly, Circle, Trigger}
}

func (v Variant) Caps() Caps {
	return variantCaps[v]
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant accepts the names printed by String, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown template variant %q", s)
}
