package cards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youruser/awayteam/internal/cards"
)

func TestFilter(t *testing.T) {
	all := []cards.Card{
		{Name: "Fire", Kind: cards.KindElement, Count: 3, Icons: []string{"fire.svg"}},
		{Name: "Steam", Text: "Hot and wet", Kind: cards.KindObstacle, Count: 1, Icons: []string{"fire.svg", "water.svg"}},
		{Name: "Orb", Text: "Glows", Kind: cards.KindMacguffin, Count: 0, TriggerLabel: "On draw", Tags: []string{"negative"}},
	}

	names := func(cs []cards.Card) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.Name)
		}
		return out
	}

	testCases := []struct {
		name     string
		opt      cards.FilterOptions
		expected []string
	}{
		{name: "no filter", opt: cards.FilterOptions{}, expected: []string{"Fire", "Steam", "Orb"}},
		{name: "by kind", opt: cards.FilterOptions{Kinds: []string{"obstacle", "element"}}, expected: []string{"Fire", "Steam"}},
		{name: "by icon", opt: cards.FilterOptions{Icons: []string{"water"}}, expected: []string{"Steam"}},
		{name: "by tag", opt: cards.FilterOptions{Tags: []string{"Negative"}}, expected: []string{"Orb"}},
		{name: "free words", opt: cards.FilterOptions{FreeWords: "hot WET"}, expected: []string{"Steam"}},
		{name: "free words reach trigger", opt: cards.FilterOptions{FreeWords: "draw"}, expected: []string{"Orb"}},
		{name: "sheet cards only", opt: cards.FilterOptions{SheetMode: "sheet"}, expected: []string{"Fire", "Steam"}},
		{name: "list only cards", opt: cards.FilterOptions{SheetMode: "list"}, expected: []string{"Orb"}},
		{name: "nothing matches", opt: cards.FilterOptions{Kinds: []string{"role"}}, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, names(cards.Filter(all, tc.opt)))
		})
	}
}
