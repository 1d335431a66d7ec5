package cards

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/youruser/awayteam/internal/spreadsheet"
	"github.com/youruser/awayteam/internal/template"
)

// LoadOptions carries the settings loaders need beyond the rows themselves.
type LoadOptions struct {
	// RoleIcon is drawn on every role card.
	RoleIcon string
}

// Loader turns the rows of one sheet into cards. Rows that reference unknown elements are
// skipped, not reported.
type Loader func(rows []spreadsheet.Row, reg *Registry, opts LoadOptions) []Card

// parseListCell splits a cell holding several values separated by "/" or ",".
func parseListCell(s string) []string {
	s = strings.ReplaceAll(s, "／", "/")
	s = strings.ReplaceAll(s, ",", "/")
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// parseInt reads a whole number, accepting spreadsheet floats such as "3.0". Blank cells
// give blank; anything unparseable gives 0.
func parseInt(s string, blank int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return blank
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}

func deckCount(row spreadsheet.Row) int {
	return parseInt(row.Get("Deck Count"), 1)
}

// LoadElements builds a fresh registry from the Elements sheet.
func LoadElements(rows []spreadsheet.Row) *Registry {
	reg := NewRegistry()
	for _, row := range rows {
		name := row.Get("Name")
		if name == "" {
			continue
		}
		reg.Add(Element{Name: name, Image: row.Get("Image"), Count: deckCount(row)})
	}
	return reg
}

// LoadElementCards makes one single-icon card per registered element named in rows.
func LoadElementCards(rows []spreadsheet.Row, reg *Registry, _ LoadOptions) []Card {
	out := []Card{}
	for _, row := range rows {
		e, ok := reg.Lookup(row.Get("Name"))
		if !ok {
			continue
		}
		out = append(out, Card{
			Name:        e.Name,
			Count:       e.Count,
			Kind:        KindElement,
			Icons:       iconList(e.Image),
			Arrangement: Column,
			Variant:     template.Standard,
		})
	}
	return out
}

// LoadObstacles needs Element 1 to be known; an unknown Element 2 is dropped.
func LoadObstacles(rows []spreadsheet.Row, reg *Registry, _ LoadOptions) []Card {
	out := []Card{}
	for _, row := range rows {
		name := row.Get("Name")
		if name == "" {
			continue
		}
		first, ok := reg.Lookup(row.Get("Element 1"))
		if !ok {
			slog.Debug("skipping obstacle with unknown element", "name", name, "element", row.Get("Element 1"))
			continue
		}
		icons := []string{first.Image}
		if second, ok := reg.Lookup(row.Get("Element 2")); ok {
			icons = append(icons, second.Image)
		}
		out = append(out, Card{
			Name:        name,
			Text:        row.Get("Description"),
			Count:       deckCount(row),
			Kind:        KindObstacle,
			Icons:       icons,
			Arrangement: Row,
			Variant:     template.Standard,
		})
	}
	return out
}

// LoadRewards reads every "Element…" column. Rows with no known element are skipped, as are
// the sheet's "Total" rows. A reward without a name is named after its elements.
func LoadRewards(rows []spreadsheet.Row, reg *Registry, _ LoadOptions) []Card {
	out := []Card{}
	for _, row := range rows {
		desc := row.Get("Description")
		if desc == "Total" {
			continue
		}

		var names, icons []string
		for _, ref := range row.WithPrefix("Element") {
			e, ok := reg.Lookup(ref)
			if !ok {
				continue
			}
			names = append(names, e.Name)
			icons = append(icons, e.Image)
		}
		if len(icons) == 0 {
			slog.Debug("skipping reward without known elements", "name", row.Get("Name"))
			continue
		}

		name := row.Get("Name")
		if name == "" {
			name = strings.Join(names, "/")
		}
		out = append(out, Card{
			Name:        name,
			Text:        desc,
			Count:       deckCount(row),
			Kind:        KindReward,
			Icons:       icons,
			Arrangement: Column,
			Variant:     template.Standard,
		})
	}
	return out
}

func LoadRoles(rows []spreadsheet.Row, _ *Registry, opts LoadOptions) []Card {
	out := []Card{}
	for _, row := range rows {
		name := row.Get("Name")
		if name == "" {
			continue
		}
		c := Card{
			Name:    name,
			Text:    row.Get("Description"),
			Count:   deckCount(row),
			Kind:    KindRole,
			Variant: template.Standard,
		}
		if opts.RoleIcon != "" {
			c.Icons = []string{opts.RoleIcon}
			c.Arrangement = Column
		}
		out = append(out, c)
	}
	return out
}

// LoadMacguffins reads trigger cards. A power rating that is not a number counts as 0.
func LoadMacguffins(rows []spreadsheet.Row, _ *Registry, _ LoadOptions) []Card {
	out := []Card{}
	for _, row := range rows {
		name := row.Get("Name")
		if name == "" {
			continue
		}
		out = append(out, Card{
			Name:          name,
			Text:          row.Get("Description"),
			Count:         deckCount(row),
			Kind:          KindMacguffin,
			Variant:       template.Trigger,
			TriggerLabel:  row.Get("Trigger"),
			TriggerTiming: template.ParseTiming(row.Get("Trigger Type")),
			PowerRating:   parseInt(row.Get("Power Rating"), 0),
			Tags:          parseListCell(row.Get("Rating")),
		})
	}
	return out
}

func iconList(name string) []string {
	if name == "" {
		return nil
	}
	return []string{name}
}
