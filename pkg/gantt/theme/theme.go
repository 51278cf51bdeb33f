// Package theme handles chart color settings: canonical color
// normalization, preset palettes, and the saved-theme store. The
// layout engine consumes theme values but never touches this package's
// storage; persistence belongs to the calling layer.
package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tiendc/go-deepcopy"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

// Default color values matching the application presets.
const (
	DarkBackground  = "#1f2937"
	DarkGrid        = "#ffffff"
	LightBackground = "#f8f9fa"
	LightGrid       = "#333333"
)

// Default returns the dark preset with no phase colors assigned.
func Default() models.Theme {
	return models.Theme{
		Background: DarkBackground,
		Grid:       DarkGrid,
	}
}

// Light returns the light preset with no phase colors assigned.
func Light() models.Theme {
	return models.Theme{
		Background: LightBackground,
		Grid:       LightGrid,
	}
}

// Normalize converts a color string to the canonical lowercase
// "#rrggbb" form. Both "#rgb" and "#rrggbb" inputs are accepted,
// case-insensitively.
func Normalize(color string) (string, error) {
	c, err := colorful.Hex(strings.TrimSpace(strings.ToLower(color)))
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", color, err)
	}
	return c.Hex(), nil
}

// NormalizeTheme returns a copy of t with every color in canonical
// form. The input theme is not modified.
func NormalizeTheme(t models.Theme) (models.Theme, error) {
	out, err := Clone(t)
	if err != nil {
		return models.Theme{}, err
	}

	if out.Background, err = Normalize(out.Background); err != nil {
		return models.Theme{}, err
	}
	if out.Grid, err = Normalize(out.Grid); err != nil {
		return models.Theme{}, err
	}
	for phase, color := range out.PhaseColors {
		normalized, err := Normalize(color)
		if err != nil {
			return models.Theme{}, fmt.Errorf("phase %q: %w", phase, err)
		}
		out.PhaseColors[phase] = normalized
	}
	return out, nil
}

// Clone deep-copies a theme so adjusting one never mutates another's
// phase color map.
func Clone(t models.Theme) (models.Theme, error) {
	var out models.Theme
	if err := deepcopy.Copy(&out, &t); err != nil {
		return models.Theme{}, err
	}
	return out, nil
}

// Apply assigns palette colors to the given phases on a copy of t,
// preserving any colors t already assigns. Phases receive palette
// entries by their position in the given order, cycling when the
// palette is shorter than the phase list.
func Apply(t models.Theme, phases []string, palette []string) (models.Theme, error) {
	if len(palette) == 0 {
		return models.Theme{}, fmt.Errorf("empty palette")
	}

	out, err := Clone(t)
	if err != nil {
		return models.Theme{}, err
	}
	if out.PhaseColors == nil {
		out.PhaseColors = make(map[string]string, len(phases))
	}
	for i, phase := range phases {
		if _, ok := out.PhaseColors[phase]; !ok {
			out.PhaseColors[phase] = palette[i%len(palette)]
		}
	}
	return out, nil
}
