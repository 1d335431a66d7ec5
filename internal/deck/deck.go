// Package deck groups cards into decks and splits decks into sheet-sized subdecks.
package deck

import (
	"fmt"
	"image"

	"github.com/youruser/awayteam/internal/cards"
	imagepkg "github.com/youruser/awayteam/internal/image"
	"github.com/youruser/awayteam/internal/spreadsheet"
	"github.com/youruser/awayteam/internal/template"
)

// FirstSubdeckIndex numbers a deck's first sheet. Card IDs are subdeck*100 + position, so the
// numbering must not change between runs.
const FirstSubdeckIndex = 10

// Definition is one row of the Decks sheet.
type Definition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	BackImage   string     `json:"back_image,omitempty"`
	Kind        cards.Kind `json:"kind"`
	// Template names a variant overriding the kind's default; empty keeps the default.
	Template string `json:"template,omitempty"`
}

// Defaults are used when the workbook has no Decks sheet.
func Defaults() []Definition {
	return []Definition{
		{Name: "element", Description: "Use these to overcome obstacles.", Kind: cards.KindElement},
		{Name: "obstacle", Description: "Overcome these to win rewards.", Kind: cards.KindObstacle},
		{Name: "reward", Description: "Bonuses to help overcome obstacles or give special abilities.", Kind: cards.KindReward},
		{Name: "role", Description: "Player-specific special abilities to help you in the game.", Kind: cards.KindRole},
		{Name: "macguffin", Description: "Problems to solve.", Kind: cards.KindMacguffin},
	}
}

// LoadDefinitions reads the Decks sheet. Rows without a name or with an unknown card class
// are skipped.
func LoadDefinitions(rows []spreadsheet.Row) []Definition {
	out := []Definition{}
	for _, row := range rows {
		name := row.Get("Name")
		kind, ok := cards.ParseKind(row.Get("Card Class"))
		if name == "" || !ok {
			continue
		}
		out = append(out, Definition{
			Name:        name,
			Description: row.Get("Description"),
			BackImage:   row.Get("Back Image"),
			Kind:        kind,
			Template:    row.Get("Template"),
		})
	}
	return out
}

// Variant resolves the definition's template override, falling back to def.
func (d Definition) Variant(def template.Variant) (template.Variant, error) {
	if d.Template == "" {
		return def, nil
	}
	v, err := template.ParseVariant(d.Template)
	if err != nil {
		return 0, fmt.Errorf("deck %s: %w", d.Name, err)
	}
	return v, nil
}

type Deck struct {
	Definition
	Cards []cards.Card `json:"cards"`
}

// Subdeck is one sheet's worth of a deck's cards.
type Subdeck struct {
	Index   int
	Cards   []cards.Card
	Columns int
	Rows    int
}

// CardID is the tabletop ID of the card at position i.
func (s Subdeck) CardID(i int) int {
	return s.Index*100 + i
}

// Subdecks splits the cards with a deck count above zero into sheets of at most
// imagepkg.Capacity(columns) cards, in order, numbered from FirstSubdeckIndex.
func (d Deck) Subdecks(columns int) []Subdeck {
	var sheetCards []cards.Card
	for _, c := range d.Cards {
		if c.InSheets() {
			sheetCards = append(sheetCards, c)
		}
	}

	capacity := imagepkg.Capacity(columns)
	if capacity <= 0 {
		return nil
	}
	var out []Subdeck
	for start := 0; start < len(sheetCards); start += capacity {
		chunk := sheetCards[start:min(start+capacity, len(sheetCards))]
		cols, rows := imagepkg.Grid(len(chunk), columns)
		out = append(out, Subdeck{
			Index:   FirstSubdeckIndex + len(out),
			Cards:   chunk,
			Columns: cols,
			Rows:    rows,
		})
	}
	return out
}

// SheetName is the file stem of subdeck s.
func (d Deck) SheetName(s Subdeck) string {
	return fmt.Sprintf("%s%d", d.Name, s.Index)
}

// Renderer draws one card.
type Renderer interface {
	Render(c cards.Card) (image.Image, error)
}

// Sheet renders every card of s and packs them with hidden in the reserved cell.
func (s Subdeck) Sheet(r Renderer, hidden image.Image) (*image.NRGBA, error) {
	images := make([]image.Image, 0, len(s.Cards))
	for _, c := range s.Cards {
		img, err := r.Render(c)
		if err != nil {
			return nil, fmt.Errorf("subdeck %d: %w", s.Index, err)
		}
		images = append(images, img)
	}
	sheet, err := imagepkg.Pack(images, hidden, s.Columns, s.Rows)
	if err != nil {
		return nil, fmt.Errorf("subdeck %d: %w", s.Index, err)
	}
	return sheet, nil
}
