package theme

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Palettes holds the named preset palettes offered for phase coloring.
// "classic" is the application's original three-color scheme; the rest
// mirror common qualitative colormaps.
var Palettes = map[string][]string{
	"classic": {"#90c144", "#00b2d4", "#9b59b6"},
	"dark2": {
		"#1b9e77", "#d95f02", "#7570b3", "#e7298a",
		"#66a61e", "#e6ab02", "#a6761d", "#666666",
	},
	"set1": {
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3",
		"#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999",
	},
	"set2": {
		"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3",
		"#a6d854", "#ffd92f", "#e5c494", "#b3b3b3",
	},
	"paired": {
		"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c",
		"#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00",
		"#cab2d6", "#6a3d9a", "#ffff99", "#b15928",
	},
	"pastel1": {
		"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4",
		"#fed9a6", "#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2",
	},
}

// DefaultPalette is the palette used when none is named.
const DefaultPalette = "dark2"

// PaletteNames lists the available palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette returns the named palette, or an error naming the valid
// choices.
func Palette(name string) ([]string, error) {
	if colors, ok := Palettes[name]; ok {
		return colors, nil
	}
	return nil, fmt.Errorf("unknown palette %q (available: %v)", name, PaletteNames())
}

// Generate produces n visually distinct colors by stepping hue evenly
// around the HSV wheel at fixed saturation and value. The result is
// deterministic for a given n, so regenerated charts keep their
// colors. Useful when a sheet has more phases than any preset covers.
func Generate(n int) []string {
	if n <= 0 {
		return nil
	}
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		h := float64(i) * 360.0 / float64(n)
		colors[i] = colorful.Hsv(h, 0.55, 0.78).Hex()
	}
	return colors
}
