package pipeline

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/youruser/awayteam/internal/deck"
	imagepkg "github.com/youruser/awayteam/internal/image"
	"github.com/youruser/awayteam/internal/tts"
	"github.com/youruser/awayteam/internal/util"
)

// CollectionFile is the tabletop JSON written next to the sheets.
const CollectionFile = "all.json"

// Summary lists what Generate wrote.
type Summary struct {
	Decks  int
	Sheets int
	Files  []string
}

// Sheet renders subdeck index of the named deck.
func (p *Pipeline) Sheet(cat *Catalog, deckName string, index int) (*image.NRGBA, error) {
	d, ok := cat.Deck(deckName)
	if !ok {
		return nil, fmt.Errorf("deck %q: %w", deckName, ErrNotFound)
	}
	for _, s := range d.Subdecks(p.Config.Columns) {
		if s.Index != index {
			continue
		}
		hidden, err := p.Hidden()
		if err != nil {
			return nil, err
		}
		return s.Sheet(p, hidden)
	}
	return nil, fmt.Errorf("deck %q sheet %d: %w", deckName, index, ErrNotFound)
}

// Card renders the card at position index of the named deck.
func (p *Pipeline) Card(cat *Catalog, deckName string, index int) (image.Image, error) {
	d, ok := cat.Deck(deckName)
	if !ok {
		return nil, fmt.Errorf("deck %q: %w", deckName, ErrNotFound)
	}
	if index < 0 || index >= len(d.Cards) {
		return nil, fmt.Errorf("deck %q card %d: %w", deckName, index, ErrNotFound)
	}
	return p.Render(d.Cards[index])
}

// Back draws a generated card back for d, linking to link.
func (p *Pipeline) Back(d deck.Deck, link string) (image.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t := p.Templates.Base()
	return imagepkg.CardBack(d.Name, link, t.Width, t.Height,
		p.Fonts.Face(t.TitleFontSize), t.Foreground, t.Background)
}

// Collection builds the tabletop JSON for every deck. Decks without a back image use the
// generated back's URL.
func (p *Pipeline) Collection(cat *Catalog) tts.Collection {
	decks := make([]tts.Deck, 0, len(cat.Decks))
	for _, d := range cat.Decks {
		decks = append(decks, p.Exporter.Deck(d, d.Subdecks(p.Config.Columns), p.backURL(d)))
	}
	return tts.NewCollection(decks...)
}

func backName(d deck.Deck) string {
	return d.Name + "_back"
}

func (p *Pipeline) backURL(d deck.Deck) string {
	if d.BackImage != "" {
		return d.BackImage
	}
	return p.Exporter.URL(backName(d))
}

// Generate writes every sheet, generated back, card list and the collection JSON to dir.
func (p *Pipeline) Generate(cat *Catalog, dir string) (*Summary, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, err
	}
	hidden, err := p.Hidden()
	if err != nil {
		return nil, err
	}

	sum := &Summary{}
	for _, d := range cat.Decks {
		subs := d.Subdecks(p.Config.Columns)
		for _, s := range subs {
			sheet, err := s.Sheet(p, hidden)
			if err != nil {
				return nil, fmt.Errorf("deck %s: %w", d.Name, err)
			}
			path := filepath.Join(dir, d.SheetName(s)+".png")
			if err := imagepkg.SaveImage(sheet, path); err != nil {
				return nil, err
			}
			slog.Info("sheet written", "deck", d.Name, "subdeck", s.Index, "cards", len(s.Cards), "path", path)
			sum.Sheets++
			sum.Files = append(sum.Files, path)
		}

		if d.BackImage == "" {
			link := ""
			if len(subs) > 0 {
				link = p.Exporter.URL(d.SheetName(subs[0]))
			}
			back, err := p.Back(d, link)
			if err != nil {
				return nil, fmt.Errorf("deck %s back: %w", d.Name, err)
			}
			path := filepath.Join(dir, backName(d)+".png")
			if err := imagepkg.SaveImage(back, path); err != nil {
				return nil, err
			}
			sum.Files = append(sum.Files, path)
		}

		listPath := filepath.Join(dir, d.Name+".txt")
		if err := util.WriteFile(listPath, []byte(deck.ExportDeckText(d))); err != nil {
			return nil, err
		}
		sum.Files = append(sum.Files, listPath)
		sum.Decks++
	}

	data, err := p.Collection(cat).MarshalIndent()
	if err != nil {
		return nil, err
	}
	jsonPath := filepath.Join(dir, CollectionFile)
	if err := util.WriteFile(jsonPath, data); err != nil {
		return nil, err
	}
	sum.Files = append(sum.Files, jsonPath)
	slog.Info("collection written", "decks", sum.Decks, "sheets", sum.Sheets, "path", jsonPath)
	return sum, nil
}
