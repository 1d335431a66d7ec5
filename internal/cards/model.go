// Package cards holds card data, the per-kind row loaders and the icon arrangements cards
// hand to templates.
package cards

import (
	"strings"

	"github.com/youruser/awayteam/internal/template"
)

type Kind string

const (
	KindElement   Kind = "Element"
	KindObstacle  Kind = "Obstacle"
	KindReward    Kind = "Reward"
	KindRole      Kind = "Role"
	KindMacguffin Kind = "Macguffin"
	KindHidden    Kind = "Hidden"
)

// ParseKind accepts a kind name in any case, with or without a trailing "Card".
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "card")
	for _, k := range []Kind{KindElement, KindObstacle, KindReward, KindRole, KindMacguffin, KindHidden} {
		if strings.ToLower(string(k)) == s {
			return k, true
		}
	}
	return "", false
}

// Arrangement is how a card lays its icons out in the image box.
type Arrangement int

const (
	NoIcons Arrangement = iota
	Row
	Column
)

// Card is one row of source data, ready to render. Cards are not modified after loading.
type Card struct {
	Name  string `json:"name"`
	Text  string `json:"description"`
	Count int    `json:"deck_count"`
	Kind  Kind   `json:"kind"`

	Icons       []string    `json:"icons,omitempty"`
	Arrangement Arrangement `json:"-"`

	Variant template.Variant `json:"-"`

	TriggerLabel  string          `json:"trigger,omitempty"`
	TriggerTiming template.Timing `json:"-"`
	PowerRating   int             `json:"power_rating,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
}

func (c Card) Title() string       { return c.Name }
func (c Card) Description() string { return c.Text }
func (c Card) CardType() string    { return string(c.Kind) }

func (c Card) Trigger() (string, template.Timing) { return c.TriggerLabel, c.TriggerTiming }
func (c Card) Rating() int                        { return c.PowerRating }
func (c Card) RatingTags() []string               { return c.Tags }

// InSheets reports whether the card gets a cell on the deck's sheets.
func (c Card) InSheets() bool {
	return c.Count > 0
}

// WithVariant returns a copy of c bound to v.
func (c Card) WithVariant(v template.Variant) Card {
	c.Variant = v
	return c
}

// Hidden is the placeholder drawn in the last cell of every sheet.
func Hidden(iconName string) Card {
	c := Card{Name: "???", Kind: KindHidden, Count: 1, Variant: template.Standard}
	if iconName != "" {
		c.Icons = []string{iconName}
		c.Arrangement = Column
	}
	return c
}
