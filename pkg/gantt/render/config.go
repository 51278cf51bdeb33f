// Package render turns a RenderPlan into an SVG document. Geometry
// and fonts are configurable through a YAML file; colors always come
// from the plan's theme.
package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LayoutConfig controls the chart's pixel geometry.
type LayoutConfig struct {
	// Width is the total image width in pixels.
	Width int `yaml:"width"`
	// MarginLeft reserves room for task names.
	MarginLeft int `yaml:"margin_left"`
	// MarginRight reserves room past the last bar.
	MarginRight int `yaml:"margin_right"`
	// MarginTop reserves room for the title and legend.
	MarginTop int `yaml:"margin_top"`
	// MarginBottom reserves room for the date axis labels.
	MarginBottom int `yaml:"margin_bottom"`
	// RowHeight is the vertical space per task row.
	RowHeight int `yaml:"row_height"`
	// BarHeight is the bar thickness within a row.
	BarHeight int `yaml:"bar_height"`
}

// FontConfig controls text rendering.
type FontConfig struct {
	// Family is the font family name.
	Family string `yaml:"family"`
	// Size is the base font size in pixels.
	Size int `yaml:"size"`
}

// Config holds all render settings.
type Config struct {
	// Layout holds the pixel geometry.
	Layout LayoutConfig `yaml:"layout"`
	// Font holds the text settings.
	Font FontConfig `yaml:"font"`
	// Title is the chart heading.
	Title string `yaml:"title"`
}

// DefaultConfig returns the settings used when no config file is
// given.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			Width:        1200,
			MarginLeft:   180,
			MarginRight:  40,
			MarginTop:    60,
			MarginBottom: 50,
			RowHeight:    36,
			BarHeight:    18,
		},
		Font: FontConfig{
			Family: "Arial, sans-serif",
			Size:   12,
		},
		Title: "Project Timeline",
	}
}

// LoadConfig reads a YAML config file over the defaults, so a partial
// file only overrides the keys it sets.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}
