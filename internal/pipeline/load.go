package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/youruser/awayteam/internal/cards"
	"github.com/youruser/awayteam/internal/config"
	"github.com/youruser/awayteam/internal/deck"
	"github.com/youruser/awayteam/internal/spreadsheet"
	"github.com/youruser/awayteam/internal/template"
)

const (
	elementsSheet = "Elements"
	decksSheet    = "Decks"
)

type kindEntry struct {
	kind    cards.Kind
	sheet   string
	load    cards.Loader
	variant template.Variant
}

// kinds is every card kind a workbook can hold, in load order. Elements come first: every
// other loader reads the registry they fill.
var kinds = []kindEntry{
	{kind: cards.KindElement, sheet: elementsSheet, load: cards.LoadElementCards, variant: template.Standard},
	{kind: cards.KindObstacle, sheet: "Obstacles", load: cards.LoadObstacles, variant: template.Standard},
	{kind: cards.KindReward, sheet: "Rewards", load: cards.LoadRewards, variant: template.Standard},
	{kind: cards.KindRole, sheet: "Roles", load: cards.LoadRoles, variant: template.Standard},
	{kind: cards.KindMacguffin, sheet: "MacGuffins", load: cards.LoadMacguffins, variant: template.Trigger},
}

// Catalog is everything loaded from one workbook.
type Catalog struct {
	Registry *cards.Registry
	Cards    map[cards.Kind][]cards.Card
	Decks    []deck.Deck
}

// Deck finds a deck by name.
func (c *Catalog) Deck(name string) (deck.Deck, bool) {
	for _, d := range c.Decks {
		if d.Name == name {
			return d, true
		}
	}
	return deck.Deck{}, false
}

// AllCards lists every deck's cards in deck order.
func (c *Catalog) AllCards() []cards.Card {
	var out []cards.Card
	for _, d := range c.Decks {
		out = append(out, d.Cards...)
	}
	return out
}

// rows reads a sheet, treating a missing sheet as empty.
func rows(wb spreadsheet.Workbook, sheet string) ([]spreadsheet.Row, error) {
	rs, err := wb.Rows(sheet)
	if errors.Is(err, spreadsheet.ErrNoSheet) {
		slog.Debug("sheet missing, skipping", "sheet", sheet)
		return nil, nil
	}
	return rs, err
}

// Load builds a fresh element registry, loads every card kind against it, then groups the
// cards into the decks the Decks sheet defines (or one deck per kind without it).
func Load(wb spreadsheet.Workbook, cfg *config.Config) (*Catalog, error) {
	elementRows, err := rows(wb, elementsSheet)
	if err != nil {
		return nil, err
	}
	cat := &Catalog{
		Registry: cards.LoadElements(elementRows),
		Cards:    map[cards.Kind][]cards.Card{},
	}

	opts := cards.LoadOptions{RoleIcon: cfg.RoleIcon}
	for _, k := range kinds {
		rs := elementRows
		if k.sheet != elementsSheet {
			if rs, err = rows(wb, k.sheet); err != nil {
				return nil, err
			}
		}
		variant, err := cfg.VariantFor(k.kind, k.variant)
		if err != nil {
			return nil, err
		}
		loaded := k.load(rs, cat.Registry, opts)
		for i := range loaded {
			loaded[i] = loaded[i].WithVariant(variant)
		}
		cat.Cards[k.kind] = loaded
		slog.Debug("cards loaded", "kind", k.kind, "count", len(loaded))
	}

	defRows, err := rows(wb, decksSheet)
	if err != nil {
		return nil, err
	}
	defs := deck.LoadDefinitions(defRows)
	if len(defs) == 0 {
		defs = deck.Defaults()
	}

	for _, def := range defs {
		d := deck.Deck{Definition: def}
		for _, c := range cat.Cards[def.Kind] {
			variant, err := def.Variant(c.Variant)
			if err != nil {
				return nil, err
			}
			d.Cards = append(d.Cards, c.WithVariant(variant))
		}
		cat.Decks = append(cat.Decks, d)
	}
	return cat, nil
}

// LoadFile opens the workbook at path and loads it.
func LoadFile(path string, cfg *config.Config) (*Catalog, error) {
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	cat, err := Load(wb, cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cat, nil
}
