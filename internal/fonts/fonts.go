// Package fonts loads the card typeface and hands out cached faces and metrics per pixel size.
package fonts

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/awayteam/internal/layout"
)

// Faces are rendered at 72 DPI so that a size in points is a size in pixels.
const dpi = 72

// Manager owns one parsed font and its faces.
type Manager struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

// NewManager loads the TTF at path. An empty or unreadable path falls back to Go Regular.
func NewManager(path string) (*Manager, error) {
	data := goregular.TTF
	if path != "" {
		custom, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("font unavailable, using default", "path", path, "error", err)
		} else {
			data = custom
		}
	}
	return NewManagerFromBytes(data)
}

// NewManagerFromBytes parses raw TTF data; nil or empty data selects Go Regular.
func NewManagerFromBytes(data []byte) (*Manager, error) {
	if len(data) == 0 {
		data = goregular.TTF
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Manager{font: f, faces: map[int]font.Face{}}, nil
}

// Face returns the face for size pixels, creating it on first use.
func (m *Manager) Face(size int) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(m.font, &truetype.Options{
		Size:    float64(size),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	m.faces[size] = face
	return face
}

func (m *Manager) Metrics(size int) layout.Metrics {
	return FaceMetrics{Face: m.Face(size)}
}

// FaceMetrics measures text with any font.Face.
type FaceMetrics struct {
	Face font.Face
}

func (fm FaceMetrics) Width(s string) int {
	return font.MeasureString(fm.Face, s).Ceil()
}

// Height is ascent plus descent, the box a capital with a descender such as 'Q' needs.
func (fm FaceMetrics) Height() int {
	met := fm.Face.Metrics()
	return (met.Ascent + met.Descent).Ceil()
}
