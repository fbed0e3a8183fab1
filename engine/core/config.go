package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/unit"
	"github.com/pelletier/go-toml/v2"
)

// TerminalMode selects the host a Config launches on.
type TerminalMode string

const (
	// TerminalAuto uses the terminal when no display is reachable and
	// stdout is a terminal.
	TerminalAuto   TerminalMode = "auto"
	TerminalAlways TerminalMode = "always"
	TerminalNever  TerminalMode = "never"
)

// Config describes the window and runtime of an app. The zero value of a
// field means "use the default" unless noted otherwise.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// 0 leaves the bound unset.
	MinWidth  int `toml:"min_width"`
	MinHeight int `toml:"min_height"`
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`

	Decorations bool `toml:"decorations"`
	Transparent bool `toml:"transparent"`
	VSync       bool `toml:"vsync"`

	// Background is a hex color (#rgb, #rrggbb, #rrggbbaa) or a color name.
	Background string `toml:"background"`

	// Fonts are TTF files under assets/fonts. The first one becomes the
	// default font.
	Fonts    []string `toml:"fonts"`
	FontSize float32  `toml:"font_size"`

	// Density is pixels per dp; 0 asks the host.
	Density float32 `toml:"density"`

	Terminal TerminalMode `toml:"terminal"`
	Debug    bool         `toml:"debug"`

	OnSetup func(a *App) `toml:"-"`
	OnExit  func(a *App) `toml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Title:       "bloom",
		Width:       600,
		Height:      600,
		Decorations: true,
		VSync:       true,
		Background:  "white",
		FontSize:    16,
		Terminal:    TerminalAuto,
	}
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.MaxWidth > 0 && c.MaxWidth < c.MinWidth || c.MaxHeight > 0 && c.MaxHeight < c.MinHeight {
		return fmt.Errorf("max size %dx%d below min size %dx%d", c.MaxWidth, c.MaxHeight, c.MinWidth, c.MinHeight)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	switch c.Terminal {
	case TerminalAuto, TerminalAlways, TerminalNever:
	default:
		return fmt.Errorf("invalid terminal mode %q", c.Terminal)
	}
	return nil
}

func (c Config) BackgroundColor() (colors.Color, error) {
	col, err := colors.Parse(c.Background)
	if err != nil {
		return colors.Color{}, fmt.Errorf("background: %w", err)
	}
	return col, nil
}

// DensityOr returns the configured density, or host when none is set.
func (c Config) DensityOr(host unit.Density) unit.Density {
	if c.Density > 0 {
		return unit.Density(c.Density)
	}
	if host > 0 {
		return host
	}
	return unit.DefaultDensity
}

// LoadConfig reads a TOML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault is LoadConfig, except that a missing file yields
// DefaultConfig.
func LoadConfigOrDefault(path string) (Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
