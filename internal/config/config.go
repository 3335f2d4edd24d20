package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"hovergrid/internal/grid"
)

// DefaultPath is relative to the process working directory.
const DefaultPath = "config/hovergrid.json"

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"target_fps"`
}

type Camera struct {
	Distance     float32 `json:"distance"`
	Fovy         float32 `json:"fovy"`
	Orthographic bool    `json:"orthographic,omitempty"`
}

type Config struct {
	GridSize           int      `json:"grid_size"`
	RandomnessFactor   float64  `json:"randomness_factor"`
	Textures           []string `json:"textures"`
	Seed               uint64   `json:"seed,omitempty"`
	PlaceholderOnError bool     `json:"placeholder_on_error,omitempty"`
	ClearColor         string   `json:"clear_color"`
	Window             Window   `json:"window"`
	Camera             Camera   `json:"camera"`
}

// Default returns the reference configuration: a 19×19 grid with a sharp disk
// edge and six texture slots, the last two sharing one image.
func Default() Config {
	return Config{
		GridSize:         19,
		RandomnessFactor: 0,
		Textures: []string{
			"assets/textures/model1.png",
			"assets/textures/model2.png",
			"assets/textures/model3.png",
			"assets/textures/model4.png",
			"assets/textures/model5.png",
			"assets/textures/model5.png",
		},
		ClearColor: "#ffffff",
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "hovergrid",
			TargetFPS: 60,
		},
		Camera: Camera{
			Distance: 24,
			Fovy:     45,
		},
	}
}

// Load reads the config at path on top of Default(). A missing file yields
// the defaults; a malformed or invalid one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as indented JSON, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Grid() grid.Config {
	return grid.Config{Size: c.GridSize, RandomnessFactor: c.RandomnessFactor}
}

func (c Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(c.Textures) == 0 {
		return fmt.Errorf("%w: no textures", ErrInvalid)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Distance <= 0 {
		return fmt.Errorf("%w: camera fovy %v distance %v", ErrInvalid, c.Camera.Fovy, c.Camera.Distance)
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
