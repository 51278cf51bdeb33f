// Package gantt assembles the chart pipeline: load an xlsx task
// table, resolve column roles, build task records, and lay out a
// render plan.
package gantt

import (
	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/theme"
)

// Options configures chart generation.
type Options struct {
	// Theme supplies the chart colors. If nil, the dark preset is
	// used.
	Theme *models.Theme
	// Palette names a preset palette used to assign colors to phases
	// the theme does not cover before layout. Empty means the layout
	// engine's own defaults apply instead.
	Palette string
}

// DefaultOptions returns the options used by the CLI when no flags
// are set: dark theme, dark2 palette.
func DefaultOptions() Options {
	return Options{
		Palette: theme.DefaultPalette,
	}
}
