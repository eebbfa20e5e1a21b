package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"LashMap/internal/state"

	"github.com/BurntSushi/toml"
)

const fileName = ".lashmap.toml"

type Config struct {
	Viewport   ViewportConfig `toml:"viewport"`
	Stroke     StrokeConfig   `toml:"stroke"`
	DebounceMS int            `toml:"debounce_ms"`
	SaveFile   string         `toml:"save_file"`
	ExportDir  string         `toml:"export_dir"`
	Background string         `toml:"background_image"`
	Mirror     MirrorConfig   `toml:"mirror"`
}

type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type StrokeConfig struct {
	Color string  `toml:"color"`
	Width float64 `toml:"width"`
}

type MirrorConfig struct {
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Viewport:   ViewportConfig{Width: state.DefaultViewport.Width, Height: state.DefaultViewport.Height},
		Stroke:     StrokeConfig{Color: "black", Width: 2},
		DebounceMS: int(state.DefaultDebounce / time.Millisecond),
		SaveFile:   filepath.Join(home, ".lashmap", "map.json"),
		ExportDir:  home,
		Mirror:     MirrorConfig{Port: 8888, Advertise: true},
	}
}

// Path is where the config lives unless LASHMAP_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("LASHMAP_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(home, fileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg.normalize(), nil
}

func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// normalize replaces values the editor cannot use with the defaults.
func (c Config) normalize() Config {
	d := Default()
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		c.Viewport = d.Viewport
	}
	if c.Stroke.Color == "" {
		c.Stroke.Color = d.Stroke.Color
	}
	if c.Stroke.Width <= 0 {
		c.Stroke.Width = d.Stroke.Width
	}
	if c.DebounceMS < 0 {
		c.DebounceMS = d.DebounceMS
	}
	if c.Mirror.Port <= 0 || c.Mirror.Port > 65535 {
		c.Mirror.Port = d.Mirror.Port
	}
	return c
}

func (c Config) ViewportSize() state.Viewport {
	return state.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
