package gantt

import (
	"github.com/quickgantt/quickgantt-go/pkg/gantt/layout"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/loader"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/schema"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/theme"
)

// Generate produces a render plan from an xlsx task list.
func Generate(path string, opts Options) (*models.RenderPlan, error) {
	table, err := loader.Open(path)
	if err != nil {
		return nil, stageError(path, "load", err)
	}

	mapping, err := schema.Resolve(table.Columns)
	if err != nil {
		return nil, stageError(path, "schema", err)
	}

	tasks, err := loader.BuildTasks(table, mapping)
	if err != nil {
		return nil, stageError(path, "tasks", err)
	}

	th, err := effectiveTheme(table, mapping, opts)
	if err != nil {
		return nil, stageError(path, "theme", err)
	}

	plan, err := layout.Layout(tasks, th)
	if err != nil {
		return nil, stageError(path, "layout", err)
	}
	return plan, nil
}

// Phases lists the distinct phase values in an xlsx task list, sorted
// ascending. Used to assign colors before generating a chart.
func Phases(path string) ([]string, error) {
	table, err := loader.Open(path)
	if err != nil {
		return nil, stageError(path, "load", err)
	}
	mapping, err := schema.Resolve(table.Columns)
	if err != nil {
		return nil, stageError(path, "schema", err)
	}
	return loader.ExtractPhases(table, mapping), nil
}

// effectiveTheme merges the options' theme with palette-assigned
// phase colors and normalizes every color to canonical form.
func effectiveTheme(table *models.Table, mapping schema.RoleMapping, opts Options) (models.Theme, error) {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}

	if opts.Palette != "" {
		colors, err := theme.Palette(opts.Palette)
		if err != nil {
			return models.Theme{}, err
		}
		phases := loader.ExtractPhases(table, mapping)
		th, err = theme.Apply(th, phases, colors)
		if err != nil {
			return models.Theme{}, err
		}
	}

	return theme.NormalizeTheme(th)
}
