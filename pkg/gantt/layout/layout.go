// Package layout computes the drawing plan for a Gantt chart: bar
// geometry, colors, gridlines, axis labels, and legend. It is a pure
// function over its inputs and performs no I/O.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

// ErrEmptyDataset indicates layout was invoked with zero tasks.
var ErrEmptyDataset = errors.New("no tasks to chart")

// InvalidDateRangeError indicates a task whose dates cannot be placed
// on the axis at all. A negative span is not an error; it is clamped
// to one displayed day instead.
type InvalidDateRangeError struct {
	// Task is the name of the offending task.
	Task string
	// Err is the underlying cause, if any.
	Err error
}

func (e *InvalidDateRangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task %q has an invalid date range: %v", e.Task, e.Err)
	}
	return fmt.Sprintf("task %q has an invalid date range", e.Task)
}

func (e *InvalidDateRangeError) Unwrap() error {
	return e.Err
}

// Fixed gridline opacities: weekly lines are lighter than monthly.
const (
	weeklyOpacity  = 0.2
	monthlyOpacity = 0.35
)

// fallbackColor fills bars whose task carries no phase.
const fallbackColor = "#4682b4"

// dayUnit suffixes computed day counts on bar labels.
const dayUnit = "d"

// Layout converts tasks into a RenderPlan using the theme's colors.
//
// Tasks are stably sorted ascending by start date and stacked so the
// chronologically earliest task occupies the top row: with N tasks the
// i-th sorted task gets vertical slot N-1-i. Bar widths clamp to a
// minimum of one day; stored dates are never altered.
//
// Layout fails with ErrEmptyDataset when tasks is empty and with a
// *InvalidDateRangeError when a task's start or end date is unset.
func Layout(tasks []models.TaskRecord, theme models.Theme) (*models.RenderPlan, error) {
	if len(tasks) == 0 {
		return nil, ErrEmptyDataset
	}

	for _, task := range tasks {
		if task.Start.IsZero() || task.End.IsZero() {
			return nil, &InvalidDateRangeError{Task: task.Name}
		}
	}

	sorted := make([]models.TaskRecord, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	colors := resolvePhaseColors(sorted, theme.PhaseColors)

	n := len(sorted)
	plan := &models.RenderPlan{
		Bars:       make([]models.Bar, 0, n),
		AxisLabels: make([]string, n),
		Background: theme.Background,
		GridColor:  theme.Grid,
		MinStart:   sorted[0].Start,
		MaxEnd:     sorted[0].End,
	}

	for i, task := range sorted {
		slot := n - 1 - i
		days := task.Days()

		color := fallbackColor
		if task.Phase != "" {
			color = colors[task.Phase]
		}

		label := task.DurationLabel
		if label == "" {
			label = fmt.Sprintf("%d%s", days, dayUnit)
		}

		plan.Bars = append(plan.Bars, models.Bar{
			Slot:      slot,
			Start:     task.Start,
			End:       task.End,
			WidthDays: days,
			Color:     color,
			Label:     label,
			LabelDate: task.Start.Add(time.Duration(days) * 24 * time.Hour / 2),
		})
		plan.AxisLabels[slot] = task.Name

		if task.End.After(plan.MaxEnd) {
			plan.MaxEnd = task.End
		}
	}

	plan.Gridlines = gridlines(plan.MinStart, plan.MaxEnd)
	plan.Legend = legend(sorted, colors)

	return plan, nil
}
