// Package pipeline wires configuration, fonts, icons and templates together and runs a
// full load → render → pack → export pass over a workbook.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/youruser/awayteam/internal/cards"
	"github.com/youruser/awayteam/internal/config"
	"github.com/youruser/awayteam/internal/fonts"
	"github.com/youruser/awayteam/internal/icon"
	"github.com/youruser/awayteam/internal/template"
	"github.com/youruser/awayteam/internal/tts"
)

// ErrNotFound is returned for a deck, card or sheet the catalog does not have.
var ErrNotFound = errors.New("not found")

// Pipeline renders cards for one configuration. Drawing is serialized: font faces are not
// safe for concurrent use.
type Pipeline struct {
	Config    *config.Config
	Fonts     *fonts.Manager
	Icons     icon.Source
	Templates template.Set
	Exporter  *tts.Exporter

	mu     sync.Mutex
	hidden image.Image
}

func New(cfg *config.Config) (*Pipeline, error) {
	fm, err := fonts.NewManager(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	icons, err := icon.NewCache(icon.NewRasterizer(cfg.IconDir), cfg.IconCache)
	if err != nil {
		return nil, err
	}
	return NewWith(cfg, fm, icons)
}

// NewWith builds a pipeline around an existing font manager and icon source.
func NewWith(cfg *config.Config, fm *fonts.Manager, icons icon.Source) (*Pipeline, error) {
	base, err := cfg.BaseTemplate()
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	base.Fonts = fm
	base.Icons = icons

	return &Pipeline{
		Config:    cfg,
		Fonts:     fm,
		Icons:     icons,
		Templates: template.NewSet(base),
		Exporter:  tts.NewExporter(cfg.FaceURL),
	}, nil
}

// Render draws one card.
func (p *Pipeline) Render(c cards.Card) (image.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return c.Render(p.Templates, p.Icons)
}

// Hidden returns the placeholder card for the reserved sheet cell, rendering it once. When
// the hidden icon cannot be drawn the card is drawn without it.
func (p *Pipeline) Hidden() (image.Image, error) {
	p.mu.Lock()
	cached := p.hidden
	p.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	img, err := p.Render(cards.Hidden(p.Config.HiddenIcon))
	if err != nil {
		slog.Warn("hidden icon unavailable, drawing blank hidden card",
			"icon", filepath.Join(p.Config.IconDir, p.Config.HiddenIcon), "error", err)
		img, err = p.Render(cards.Hidden(""))
		if err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	p.hidden = img
	p.mu.Unlock()
	return img, nil
}
