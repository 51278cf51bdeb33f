package loader

import (
	"sort"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
	"github.com/quickgantt/quickgantt-go/pkg/gantt/schema"
)

// BuildTasks converts table rows into task records using the resolved
// role mapping. Rows with an empty task name are skipped; a start or
// end cell that cannot be parsed as a date fails the whole build with
// a *InvalidDateError. Records keep the table's row order.
func BuildTasks(table *models.Table, mapping schema.RoleMapping) ([]models.TaskRecord, error) {
	taskCol := mapping.Column(schema.RoleTask)
	startCol := mapping.Column(schema.RoleStartDate)
	endCol := mapping.Column(schema.RoleEndDate)
	phaseCol := mapping.Column(schema.RolePhase)
	durationCol := mapping.Column(schema.RoleDuration)

	var tasks []models.TaskRecord
	for i, row := range table.Rows {
		name := cellString(row[taskCol])
		if name == "" {
			continue
		}

		start, err := ParseDate(row[startCol])
		if err != nil {
			return nil, &InvalidDateError{Row: i + 1, Column: startCol, Value: row[startCol]}
		}
		end, err := ParseDate(row[endCol])
		if err != nil {
			return nil, &InvalidDateError{Row: i + 1, Column: endCol, Value: row[endCol]}
		}

		task := models.TaskRecord{
			Name:  name,
			Start: start,
			End:   end,
		}
		if phaseCol != "" {
			task.Phase = cellString(row[phaseCol])
		}
		if durationCol != "" {
			task.DurationLabel = cellString(row[durationCol])
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// ExtractPhases returns the distinct non-empty phase values in the
// table, sorted ascending. An unmapped phase role yields nil.
func ExtractPhases(table *models.Table, mapping schema.RoleMapping) []string {
	phaseCol := mapping.Column(schema.RolePhase)
	if phaseCol == "" {
		return nil
	}

	seen := make(map[string]bool)
	var phases []string
	for _, row := range table.Rows {
		phase := cellString(row[phaseCol])
		if phase == "" || seen[phase] {
			continue
		}
		seen[phase] = true
		phases = append(phases, phase)
	}
	sort.Strings(phases)
	return phases
}
