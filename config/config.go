// Package config holds the viewer settings. Everything has a default; a
// YAML or TOML file may override any subset of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/dataset"
)

type Margin struct {
	Top    float64 `yaml:"top" toml:"top"`
	Right  float64 `yaml:"right" toml:"right"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
	Left   float64 `yaml:"left" toml:"left"`
}

type Geometry struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Margin      Margin  `yaml:"margin" toml:"margin"`
	TickSpacing float64 `yaml:"tick_spacing" toml:"tick_spacing"`
}

type Colors struct {
	Male       string `yaml:"male" toml:"male"`
	Female     string `yaml:"female" toml:"female"`
	Difference string `yaml:"difference" toml:"difference"`
	Axis       string `yaml:"axis" toml:"axis"`
	Brush      string `yaml:"brush" toml:"brush"`
}

type Animation struct {
	Enabled   bool    `yaml:"enabled" toml:"enabled"`
	FPS       int     `yaml:"fps" toml:"fps"`
	Frequency float64 `yaml:"frequency" toml:"frequency"`
	Damping   float64 `yaml:"damping" toml:"damping"`
}

type Config struct {
	DataSource   string    `yaml:"data_source" toml:"data_source"`
	BaseURL      string    `yaml:"base_url" toml:"base_url"`
	LogLevel     string    `yaml:"log_level" toml:"log_level"`
	FetchTimeout string    `yaml:"fetch_timeout" toml:"fetch_timeout"`
	Activity     Geometry  `yaml:"activity" toml:"activity"`
	Difference   Geometry  `yaml:"difference" toml:"difference"`
	Colors       Colors    `yaml:"colors" toml:"colors"`
	Animation    Animation `yaml:"animation" toml:"animation"`
}

func fromLayout(l chart.Layout) Geometry {
	return Geometry{
		Width:       l.Width,
		Height:      l.Height,
		Margin:      Margin{Top: l.Margin.Top, Right: l.Margin.Right, Bottom: l.Margin.Bottom, Left: l.Margin.Left},
		TickSpacing: l.TickSpacing,
	}
}

func Default() Config {
	pal := chart.DefaultPalette()
	return Config{
		DataSource:   dataset.DefaultSource,
		LogLevel:     "debug",
		FetchTimeout: "10s",
		Activity:     fromLayout(chart.ActivityLayout()),
		Difference:   fromLayout(chart.DifferenceLayout()),
		Colors: Colors{
			Male:       pal.Male,
			Female:     pal.Female,
			Difference: pal.Diff,
			Axis:       "#8a8f98",
			Brush:      "#5a5f6a",
		},
		Animation: Animation{Enabled: true, FPS: 30, Frequency: 7.0, Damping: 1.0},
	}
}

// Load reads path on top of Default. The format follows the extension.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (g Geometry) validate(name string) error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%s: width and height must be positive", name)
	}
	if g.Margin.Left+g.Margin.Right >= g.Width || g.Margin.Top+g.Margin.Bottom >= g.Height {
		return fmt.Errorf("%s: margins leave no plot area", name)
	}
	if g.TickSpacing <= 0 {
		return fmt.Errorf("%s: tick_spacing must be positive", name)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if err := c.Activity.validate("activity"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Difference.validate("difference"); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Timeout(); err != nil {
		errs = append(errs, err)
	}
	for name, hex := range map[string]string{
		"male": c.Colors.Male, "female": c.Colors.Female, "difference": c.Colors.Difference,
		"axis": c.Colors.Axis, "brush": c.Colors.Brush,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", name, err))
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel))
	}
	if c.Animation.Enabled && (c.Animation.FPS <= 0 || c.Animation.Frequency <= 0 || c.Animation.Damping < 0) {
		errs = append(errs, errors.New("animation: fps and frequency must be positive"))
	}
	return errors.Join(errs...)
}

// Timeout parses FetchTimeout. Empty means no timeout.
func (c Config) Timeout() (time.Duration, error) {
	if c.FetchTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("fetch_timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("fetch_timeout: negative duration %s", d)
	}
	return d, nil
}

func (g Geometry) Layout() chart.Layout {
	return chart.Layout{
		Width:       g.Width,
		Height:      g.Height,
		Margin:      chart.Margin{Top: g.Margin.Top, Right: g.Margin.Right, Bottom: g.Margin.Bottom, Left: g.Margin.Left},
		TickSpacing: g.TickSpacing,
	}
}

func (c Config) Palette() chart.Palette {
	return chart.Palette{Male: c.Colors.Male, Female: c.Colors.Female, Diff: c.Colors.Difference}
}
