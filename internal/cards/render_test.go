package cards_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/youruser/awayteam/internal/cards"
	"github.com/youruser/awayteam/internal/fonts"
	iconmock "github.com/youruser/awayteam/internal/icon/mock"
	"github.com/youruser/awayteam/internal/layout"
	"github.com/youruser/awayteam/internal/template"
)

type RenderTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	icons *iconmock.MockSource
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.icons = iconmock.NewMockSource(s.ctrl)
}

func (s *RenderTestSuite) TestRowPainterPlacesIcons() {
	red := imaging.New(50, 50, color.NRGBA{R: 255, A: 255})
	blue := imaging.New(50, 50, color.NRGBA{B: 255, A: 255})
	s.icons.EXPECT().Icon("fire.svg", 50).Return(red, nil)
	s.icons.EXPECT().Icon("water.svg", 50).Return(blue, nil)

	c := cards.Card{Name: "Steam", Icons: []string{"fire.svg", "water.svg"}, Arrangement: cards.Row}
	box := layout.Box(0, 0, 300, 100)
	s.Equal([]image.Rectangle{image.Rect(75, 25, 125, 75), image.Rect(200, 25, 250, 75)}, c.Slots(box))

	dc := gg.NewContext(300, 100)
	s.Require().NoError(c.Painter(s.icons)(dc, box))

	r, _, b, _ := dc.Image().At(100, 50).RGBA()
	s.Equal(uint32(0xffff), r)
	s.Zero(b)
	r, _, b, _ = dc.Image().At(225, 50).RGBA()
	s.Zero(r)
	s.Equal(uint32(0xffff), b)
}

func (s *RenderTestSuite) TestColumnSlots() {
	c := cards.Card{Icons: []string{"a", "b"}, Arrangement: cards.Column}
	s.Equal(
		[]image.Rectangle{image.Rect(34, 84, 67, 117), image.Rect(34, 217, 67, 250)},
		c.Slots(layout.Box(0, 0, 100, 300)),
	)
}

func (s *RenderTestSuite) TestNoIconsNoPainter() {
	s.Nil(cards.Card{Name: "Orb"}.Painter(s.icons))
	s.Nil(cards.Card{Icons: []string{"x"}}.Painter(s.icons))
}

func (s *RenderTestSuite) TestPainterError() {
	boom := errors.New("no such icon")
	s.icons.EXPECT().Icon("fire.svg", gomock.Any()).Return(nil, boom)

	c := cards.Card{Icons: []string{"fire.svg"}, Arrangement: cards.Column}
	err := c.Painter(s.icons)(gg.NewContext(100, 100), layout.Box(0, 0, 100, 100))
	s.ErrorIs(err, boom)
}

func (s *RenderTestSuite) TestRenderUsesCardVariant() {
	fm, err := fonts.NewManager("")
	s.Require().NoError(err)
	base := template.Default()
	base.Fonts = fm
	set := template.NewSet(base)

	s.icons.EXPECT().Icon("fire.svg", gomock.Any()).Return(imaging.New(10, 10, color.White), nil)

	c := cards.Card{Name: "Fire", Kind: cards.KindElement, Icons: []string{"fire.svg"}, Arrangement: cards.Column}
	img, err := c.Render(set, s.icons)
	s.Require().NoError(err)
	s.Equal(image.Rect(0, 0, 407, 585), img.Bounds())

	img, err = c.WithVariant(template.Circle).Render(set, s.icons)
	s.Require().NoError(err)
	s.Equal(image.Rect(0, 0, 585, 585), img.Bounds())

	_, err = c.WithVariant(template.Variant(42)).Render(set, s.icons)
	s.Error(err)
}
