package deck_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/suite"

	"github.com/youruser/awayteam/internal/cards"
	"github.com/youruser/awayteam/internal/deck"
	imagepkg "github.com/youruser/awayteam/internal/image"
	"github.com/youruser/awayteam/internal/spreadsheet"
	"github.com/youruser/awayteam/internal/template"
)

const cell = 4

// indexRenderer draws card "cN" as a solid image whose red channel is N+1.
type indexRenderer struct{}

func (indexRenderer) Render(c cards.Card) (image.Image, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(c.Name, "c"))
	if err != nil {
		return nil, errors.New("bad card " + c.Name)
	}
	return imaging.New(cell, cell, color.NRGBA{R: uint8(n + 1), A: 255}), nil
}

func red(sheet image.Image, cols, idx int) uint8 {
	x := (idx%cols)*cell + cell/2
	y := (idx/cols)*cell + cell/2
	return color.NRGBAModel.Convert(sheet.At(x, y)).(color.NRGBA).R
}

func numbered(n int) []cards.Card {
	out := make([]cards.Card, n)
	for i := range out {
		out[i] = cards.Card{Name: fmt.Sprintf("c%d", i), Count: 1}
	}
	return out
}

type DeckTestSuite struct {
	suite.Suite
	hidden image.Image
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) SetupTest() {
	s.hidden = imaging.New(cell, cell, color.NRGBA{B: 255, A: 255})
}

func (s *DeckTestSuite) TestPaginationKeepsOrder() {
	d := deck.Deck{Definition: deck.Definition{Name: "obstacle"}, Cards: numbered(75)}

	subs := d.Subdecks(10)
	s.Require().Len(subs, 2)

	s.Equal(10, subs[0].Index)
	s.Len(subs[0].Cards, imagepkg.SheetCapacity)
	s.Equal(10, subs[0].Columns)
	s.Equal(7, subs[0].Rows)
	s.Equal("obstacle10", d.SheetName(subs[0]))

	s.Equal(11, subs[1].Index)
	s.Len(subs[1].Cards, 6)
	s.Equal(1, subs[1].Rows)
	s.Equal("obstacle11", d.SheetName(subs[1]))

	first, err := subs[0].Sheet(indexRenderer{}, s.hidden)
	s.Require().NoError(err)
	for i := 0; i < 69; i++ {
		s.Equal(uint8(i+1), red(first, 10, i), "first sheet cell %d", i)
	}
	s.Zero(red(first, 10, 69))

	second, err := subs[1].Sheet(indexRenderer{}, s.hidden)
	s.Require().NoError(err)
	for i := 0; i < 6; i++ {
		s.Equal(uint8(69+i+1), red(second, 10, i), "second sheet cell %d", i)
	}
	s.Zero(red(second, 10, 9))
}

func (s *DeckTestSuite) TestZeroCountCardsLeaveSheets() {
	cs := numbered(3)
	cs[1].Count = 0
	d := deck.Deck{Cards: cs}

	subs := d.Subdecks(10)
	s.Require().Len(subs, 1)
	s.Equal([]string{"c0", "c2"}, []string{subs[0].Cards[0].Name, subs[0].Cards[1].Name})
	s.Equal(1000, subs[0].CardID(0))
	s.Equal(1001, subs[0].CardID(1))

	s.Empty(deck.Deck{Cards: []cards.Card{{Name: "c0"}}}.Subdecks(10))
}

func (s *DeckTestSuite) TestSheetRenderError() {
	d := deck.Deck{Cards: []cards.Card{{Name: "broken", Count: 1}}}
	_, err := d.Subdecks(10)[0].Sheet(indexRenderer{}, s.hidden)
	s.Error(err)
}

func (s *DeckTestSuite) TestLoadDefinitions() {
	header := []string{"Name", "Description", "Back Image", "Card Class", "Template"}
	defs := deck.LoadDefinitions([]spreadsheet.Row{
		spreadsheet.NewRow(header, []string{"element", "Use these", "back.png", "ElementCard", ""}),
		spreadsheet.NewRow(header, []string{"spells", "", "", "Spell", ""}),
		spreadsheet.NewRow(header, []string{"", "", "", "Role", ""}),
		spreadsheet.NewRow(header, []string{"round", "", "", "Obstacle", "circle"}),
	})

	s.Require().Len(defs, 2)
	s.Equal(deck.Definition{Name: "element", Description: "Use these", BackImage: "back.png", Kind: cards.KindElement}, defs[0])

	v, err := defs[0].Variant(template.Standard)
	s.NoError(err)
	s.Equal(template.Standard, v)

	v, err = defs[1].Variant(template.Standard)
	s.NoError(err)
	s.Equal(template.Circle, v)

	_, err = deck.Definition{Template: "hexagon"}.Variant(template.Standard)
	s.Error(err)
}

func (s *DeckTestSuite) TestDefaultsCoverEveryKind() {
	kinds := map[cards.Kind]bool{}
	for _, d := range deck.Defaults() {
		kinds[d.Kind] = true
	}
	s.Len(kinds, 5)
	s.False(kinds[cards.KindHidden])
}

func (s *DeckTestSuite) TestExportDeckText() {
	d := deck.Deck{
		Definition: deck.Definition{Name: "reward"},
		Cards: []cards.Card{
			{Name: "Boost", Count: 2},
			{Name: "Spare", Count: 0},
		},
	}
	s.Equal("# reward\n2x Boost\n0x Spare\n", deck.ExportDeckText(d))
}
