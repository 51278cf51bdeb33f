// Package main provides the CLI entry point for quickgantt-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickgantt/quickgantt-go/pkg/gantt"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/loader"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/render"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/theme"
)

var (
	outputPath  string
	themeName   string
	saveTheme   string
	listThemes  bool
	background  string
	gridColor   string
	paletteName string
	configPath  string
	planJSON    bool
	samplePath  string
	debug       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickgantt [input.xlsx]",
		Short: "Render Gantt charts from spreadsheet task lists",
		Long: `quickgantt reads a task table from an Excel file, detects the task,
date, phase, and duration columns by name, and renders a themed Gantt
chart as SVG.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with .svg)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Load a saved color theme by name")
	rootCmd.Flags().StringVar(&saveTheme, "save-theme", "", "Save the effective colors under this theme name")
	rootCmd.Flags().BoolVar(&listThemes, "list-themes", false, "List saved color themes and exit")
	rootCmd.Flags().StringVar(&background, "background", "", "Background color override (#rrggbb)")
	rootCmd.Flags().StringVar(&gridColor, "grid", "", "Gridline color override (#rrggbb)")
	rootCmd.Flags().StringVar(&paletteName, "palette", theme.DefaultPalette,
		fmt.Sprintf("Phase color palette: %s", strings.Join(theme.PaletteNames(), ", ")))
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML render configuration file")
	rootCmd.Flags().BoolVar(&planJSON, "plan-json", false, "Output the render plan as JSON instead of SVG")
	rootCmd.Flags().StringVar(&samplePath, "sample", "", "Write a sample task workbook to this path and exit")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func debugPrint(format string, args ...interface{}) {
	if debug {
		fmt.Fprintf(os.Stderr, "DEBUG: "+format+"\n", args...)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if listThemes {
		return printThemes()
	}

	if samplePath != "" {
		if err := loader.WriteSample(samplePath); err != nil {
			return fmt.Errorf("failed to write sample workbook: %w", err)
		}
		fmt.Printf("Sample workbook written to %s\n", samplePath)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("input file required (or use --sample / --list-themes)")
	}
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", gantt.ErrFileNotFound, inputPath)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}
	debugPrint("options: palette=%s theme=%q", opts.Palette, themeName)

	plan, err := gantt.Generate(inputPath, opts)
	if err != nil {
		return err
	}
	debugPrint("plan: %d bars, %d gridlines, %d legend entries",
		len(plan.Bars), len(plan.Gridlines), len(plan.Legend))

	if saveTheme != "" {
		if err := persistTheme(saveTheme, plan); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
		debugPrint("saved theme %q", saveTheme)
	}

	if planJSON {
		return writePlanJSON(plan)
	}

	cfg := render.DefaultConfig()
	if configPath != "" {
		if cfg, err = render.LoadConfig(configPath); err != nil {
			return err
		}
	}

	out := outputFilename(inputPath, outputPath)
	if err := os.WriteFile(out, []byte(render.SVG(plan, cfg)), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Chart written to %s\n", out)
	return nil
}

// buildOptions merges the saved theme, color overrides, and palette
// choice into generation options.
func buildOptions() (gantt.Options, error) {
	opts := gantt.DefaultOptions()
	opts.Palette = paletteName

	var th *models.Theme
	if themeName != "" {
		store, err := theme.NewStore()
		if err != nil {
			return opts, err
		}
		saved, err := store.Get(themeName)
		if err != nil {
			return opts, err
		}
		th = &saved
	}

	if background != "" || gridColor != "" {
		if th == nil {
			base := theme.Default()
			th = &base
		}
		if background != "" {
			th.Background = background
		}
		if gridColor != "" {
			th.Grid = gridColor
		}
	}

	opts.Theme = th
	return opts, nil
}

// persistTheme stores the colors actually used for the chart: the
// plan's background and grid plus one entry per legend phase.
func persistTheme(name string, plan *models.RenderPlan) error {
	store, err := theme.NewStore()
	if err != nil {
		return err
	}

	saved := models.Theme{
		Background:  plan.Background,
		Grid:        plan.GridColor,
		PhaseColors: make(map[string]string, len(plan.Legend)),
	}
	for _, entry := range plan.Legend {
		saved.PhaseColors[entry.Phase] = entry.Color
	}

	store.Put(name, saved)
	return store.Save()
}

func printThemes() error {
	store, err := theme.NewStore()
	if err != nil {
		return err
	}
	names := store.List()
	if len(names) == 0 {
		fmt.Println("No saved themes.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func writePlanJSON(plan *models.RenderPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}

// outputFilename picks the SVG output path: the explicit flag when
// set, otherwise the input name with its extension replaced by .svg.
func outputFilename(inputPath, explicit string) string {
	if explicit != "" {
		return explicit
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
}
