// Package config reads the cardgen TOML configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/youruser/awayteam/internal/cards"
	imagepkg "github.com/youruser/awayteam/internal/image"
	"github.com/youruser/awayteam/internal/template"
)

// Config represents the application configuration
type Config struct {
	OutputDir string `toml:"output_dir"`
	IconDir   string `toml:"icon_dir"`
	FontPath  string `toml:"font_path"`
	// FaceURL is where the tabletop fetches sheets from; {deck} is the sheet's file stem and
	// {cache} a timestamp.
	FaceURL string `toml:"face_url"`

	Preset  string `toml:"preset"`
	Columns int    `toml:"columns"`

	HiddenIcon  string `toml:"hidden_icon"`
	TriggerIcon string `toml:"trigger_icon"`
	RoleIcon    string `toml:"role_icon"`
	IconCache   int    `toml:"icon_cache"`

	Foreground string `toml:"foreground"`
	Background string `toml:"background"`

	// Templates maps a card kind to the variant its cards use.
	Templates map[string]string `toml:"templates"`
	// Template overrides numeric template fields, e.g. text_box_rows = 10.
	Template map[string]int `toml:"template"`

	Server ServerConfig `toml:"server"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

func Default() *Config {
	return &Config{
		OutputDir:   "generated",
		IconDir:     "icons",
		FaceURL:     "http://localhost:8080/generated/{deck}.png?{cache}",
		Preset:      "standard",
		Columns:     imagepkg.MaxColumns,
		HiddenIcon:  "hidden.svg",
		TriggerIcon: "trigger.svg",
		RoleIcon:    "role.svg",
		IconCache:   256,
		Foreground:  "#000000",
		Background:  "#ffffff",
		Templates:   map[string]string{},
		Template:    map[string]int{},
		Server:      ServerConfig{Addr: ":8080"},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "awayteam", "config.toml")
}

// Load reads the config at path, or at GetConfigFilePath when path is empty. A missing file
// is created with the defaults. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Columns < 1 || c.Columns > imagepkg.MaxColumns {
		return fmt.Errorf("columns must be between 1 and %d, got %d", imagepkg.MaxColumns, c.Columns)
	}
	if _, err := template.Preset(c.Preset); err != nil {
		return err
	}
	for kind, variant := range c.Templates {
		if _, ok := cards.ParseKind(kind); !ok {
			return fmt.Errorf("templates: unknown card kind %q", kind)
		}
		if _, err := template.ParseVariant(variant); err != nil {
			return fmt.Errorf("templates: %w", err)
		}
	}
	if _, err := parseColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := parseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// parseColor accepts "#rrggbb" or "#rgb", with or without the leading "#".
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	return c.Clamped(), nil
}

// BaseTemplate is the preset with the configured overrides and colours applied. Fonts and
// icons are left for the caller to attach.
func (c *Config) BaseTemplate() (template.Template, error) {
	t, err := template.Preset(c.Preset)
	if err != nil {
		return template.Template{}, err
	}
	if err := t.Apply(c.Template); err != nil {
		return template.Template{}, err
	}
	if t.Foreground, err = parseColor(c.Foreground); err != nil {
		return template.Template{}, fmt.Errorf("foreground: %w", err)
	}
	if t.Background, err = parseColor(c.Background); err != nil {
		return template.Template{}, fmt.Errorf("background: %w", err)
	}
	t.TriggerIcon = c.TriggerIcon
	return t, nil
}

// VariantFor returns the configured variant for kind, or def when none is set.
func (c *Config) VariantFor(kind cards.Kind, def template.Variant) (template.Variant, error) {
	for name, variant := range c.Templates {
		if k, ok := cards.ParseKind(name); ok && k == kind {
			return template.ParseVariant(variant)
		}
	}
	return def, nil
}
