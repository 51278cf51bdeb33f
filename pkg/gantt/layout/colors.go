package layout

import (
	"sort"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

// defaultPalette supplies deterministic colors for phases the caller's
// assignment does not cover, cycled by the phase's position in sorted
// phase order.
var defaultPalette = []string{
	"#1b9e77", "#d95f02", "#7570b3", "#e7298a",
	"#66a61e", "#e6ab02", "#a6761d", "#666666",
}

// phases returns the distinct non-empty phase values in ascending
// lexical order.
func phases(tasks []models.TaskRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, task := range tasks {
		if task.Phase == "" || seen[task.Phase] {
			continue
		}
		seen[task.Phase] = true
		out = append(out, task.Phase)
	}
	sort.Strings(out)
	return out
}

// resolvePhaseColors completes a possibly partial phase color
// assignment: every phase present in tasks gets exactly one color,
// with missing entries filled from the default palette. The supplied
// map is never mutated.
func resolvePhaseColors(tasks []models.TaskRecord, assigned map[string]string) map[string]string {
	resolved := make(map[string]string)
	for i, phase := range phases(tasks) {
		if color, ok := assigned[phase]; ok && color != "" {
			resolved[phase] = color
			continue
		}
		resolved[phase] = defaultPalette[i%len(defaultPalette)]
	}
	return resolved
}

// legend builds one entry per distinct phase, in ascending lexical
// order.
func legend(tasks []models.TaskRecord, colors map[string]string) []models.LegendEntry {
	var entries []models.LegendEntry
	for _, phase := range phases(tasks) {
		entries = append(entries, models.LegendEntry{Phase: phase, Color: colors[phase]})
	}
	return entries
}
