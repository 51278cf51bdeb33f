package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testTheme() models.Theme {
	return models.Theme{Background: "#1f2937", Grid: "#ffffff"}
}

func TestLayoutEmptyDataset(t *testing.T) {
	_, err := Layout(nil, testTheme())
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLayoutUnsetDate(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "broken", Start: date(2025, 1, 1)},
	}
	_, err := Layout(tasks, testTheme())
	var rangeErr *InvalidDateRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "broken", rangeErr.Task)
}

func TestLayoutSingleDayTask(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "kickoff", Start: date(2025, 1, 1), End: date(2025, 1, 1)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)
	require.Len(t, plan.Bars, 1)

	bar := plan.Bars[0]
	assert.Equal(t, 0, bar.Slot)
	assert.Equal(t, 1, bar.WidthDays)
	assert.Equal(t, "1d", bar.Label)
	assert.Equal(t, []string{"kickoff"}, plan.AxisLabels)
}

func TestLayoutEarliestAtTop(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "A", Start: date(2025, 3, 1), End: date(2025, 3, 10)},
		{Name: "B", Start: date(2025, 2, 1), End: date(2025, 2, 5)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)
	require.Len(t, plan.Bars, 2)

	// B starts earlier, so it is sorted first and takes the top slot.
	assert.Equal(t, 1, plan.Bars[0].Slot)
	assert.Equal(t, date(2025, 2, 1), plan.Bars[0].Start)
	assert.Equal(t, 0, plan.Bars[1].Slot)
	assert.Equal(t, []string{"A", "B"}, plan.AxisLabels)
}

func TestLayoutSlotOrderInvariant(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "t1", Start: date(2025, 5, 19), End: date(2025, 6, 2)},
		{Name: "t2", Start: date(2025, 6, 2), End: date(2025, 6, 23)},
		{Name: "t3", Start: date(2025, 5, 1), End: date(2025, 5, 10)},
		{Name: "t4", Start: date(2025, 7, 28), End: date(2025, 9, 8)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)

	// Bars come back in sorted order; slots must strictly descend.
	for i := 1; i < len(plan.Bars); i++ {
		assert.False(t, plan.Bars[i].Start.Before(plan.Bars[i-1].Start))
		assert.Equal(t, plan.Bars[i-1].Slot-1, plan.Bars[i].Slot)
	}
}

func TestLayoutStableTieOrder(t *testing.T) {
	start := date(2025, 5, 19)
	tasks := []models.TaskRecord{
		{Name: "first", Start: start, End: date(2025, 6, 2)},
		{Name: "second", Start: start, End: date(2025, 6, 2)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)

	// Equal start dates keep original row order: first stays on top.
	assert.Equal(t, []string{"second", "first"}, plan.AxisLabels)
}

func TestLayoutDurationClamp(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"zero span", date(2025, 1, 1), date(2025, 1, 1), 1},
		{"negative span", date(2025, 1, 10), date(2025, 1, 1), 1},
		{"one day", date(2025, 1, 1), date(2025, 1, 2), 1},
		{"ten days", date(2025, 1, 1), date(2025, 1, 11), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Layout([]models.TaskRecord{
				{Name: "t", Start: tt.start, End: tt.end},
			}, testTheme())
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Bars[0].WidthDays)
			// The clamp never rewrites the stored dates.
			assert.Equal(t, tt.start, plan.Bars[0].Start)
			assert.Equal(t, tt.end, plan.Bars[0].End)
		})
	}
}

func TestLayoutLabels(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "a", Start: date(2025, 1, 1), End: date(2025, 1, 11), DurationLabel: "1.5 weeks"},
		{Name: "b", Start: date(2025, 1, 1), End: date(2025, 1, 5)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)

	assert.Equal(t, "1.5 weeks", plan.Bars[0].Label)
	assert.Equal(t, "4d", plan.Bars[1].Label)
	// Labels center at the midpoint of the displayed span.
	assert.Equal(t, date(2025, 1, 6), plan.Bars[0].LabelDate)
	assert.Equal(t, date(2025, 1, 3), plan.Bars[1].LabelDate)
}

func TestLayoutPhaseColors(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "a", Start: date(2025, 1, 1), End: date(2025, 1, 5), Phase: "Phase 2"},
		{Name: "b", Start: date(2025, 1, 2), End: date(2025, 1, 6), Phase: "Phase 1"},
		{Name: "c", Start: date(2025, 1, 3), End: date(2025, 1, 7)},
	}
	theme := testTheme()
	theme.PhaseColors = map[string]string{"Phase 1": "#90c144"}

	plan, err := Layout(tasks, theme)
	require.NoError(t, err)

	assert.Equal(t, "#90c144", plan.Bars[1].Color)
	// Phase 2 was not assigned: second slot of the default palette
	// (phases sort lexically, Phase 2 is index 1).
	assert.Equal(t, defaultPalette[1], plan.Bars[0].Color)
	// Phaseless tasks always use the fixed fallback.
	assert.Equal(t, fallbackColor, plan.Bars[2].Color)
}

func TestLayoutLegend(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "a", Start: date(2025, 1, 1), End: date(2025, 1, 5), Phase: "Build"},
		{Name: "b", Start: date(2025, 1, 2), End: date(2025, 1, 6), Phase: "Analysis"},
		{Name: "c", Start: date(2025, 1, 3), End: date(2025, 1, 7), Phase: "Build"},
		{Name: "d", Start: date(2025, 1, 4), End: date(2025, 1, 8)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)

	require.Len(t, plan.Legend, 2)
	assert.Equal(t, "Analysis", plan.Legend[0].Phase)
	assert.Equal(t, "Build", plan.Legend[1].Phase)
	for _, entry := range plan.Legend {
		assert.NotEmpty(t, entry.Color)
	}
}

func TestLayoutGridlines(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "a", Start: date(2025, 1, 1), End: date(2025, 2, 15)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)

	var weekly, monthly []time.Time
	for _, line := range plan.Gridlines {
		switch line.Weight {
		case models.GridWeekly:
			assert.Equal(t, weeklyOpacity, line.Opacity)
			weekly = append(weekly, line.Date)
		case models.GridMonthly:
			assert.Equal(t, monthlyOpacity, line.Opacity)
			monthly = append(monthly, line.Date)
		}
	}

	assert.Equal(t, []time.Time{
		date(2025, 1, 8), date(2025, 1, 15), date(2025, 1, 22),
		date(2025, 1, 29), date(2025, 2, 5), date(2025, 2, 12),
	}, weekly)
	assert.Equal(t, []time.Time{date(2025, 1, 1), date(2025, 2, 1)}, monthly)
}

func TestLayoutDateRange(t *testing.T) {
	tasks := []models.TaskRecord{
		{Name: "a", Start: date(2025, 3, 1), End: date(2025, 3, 10)},
		{Name: "b", Start: date(2025, 2, 1), End: date(2025, 4, 20)},
	}
	plan, err := Layout(tasks, testTheme())
	require.NoError(t, err)

	assert.Equal(t, date(2025, 2, 1), plan.MinStart)
	assert.Equal(t, date(2025, 4, 20), plan.MaxEnd)
}
