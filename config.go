package jeweljam

import (
	"errors"
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"
)

// Size is a width/height pair as written in config files.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point converts the size to an image.Point.
func (s Size) Point() image.Point {
	return image.Pt(s.Width, s.Height)
}

// Config holds the start-up options of the game.
type Config struct {
	Title      string `yaml:"title"`
	Window     Size   `yaml:"window"`
	World      Size   `yaml:"world"` // zero means the size of the background sprite
	FullScreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
	TPS        int    `yaml:"tps"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:     "Jewel Jam",
		Window:    Size{Width: 1024, Height: 768},
		Resizable: true,
		TPS:       60,
	}
}

// LoadConfig reads a YAML config file on top of the defaults. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the sizes and tick rate.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.World.Width < 0 || c.World.Height < 0 || (c.World.Width == 0) != (c.World.Height == 0) {
		return fmt.Errorf("world size must be both zero or both positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}
