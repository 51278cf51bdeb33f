package models

import "time"

// GridWeight classifies a gridline's visual weight.
type GridWeight string

const (
	// GridWeekly marks the light gridline drawn at 7-day boundaries.
	GridWeekly GridWeight = "weekly"
	// GridMonthly marks the darker gridline drawn at month starts.
	GridMonthly GridWeight = "monthly"
)

// Bar represents one positioned task bar.
type Bar struct {
	// Slot is the vertical slot index: 0 is the bottom row, the
	// highest slot is the top row.
	Slot int `json:"slot"`
	// Start is the bar's left edge on the date axis.
	Start time.Time `json:"start"`
	// End is the stored end date (may precede Start; see WidthDays).
	End time.Time `json:"end"`
	// WidthDays is the displayed width in days, clamped to >= 1.
	WidthDays int `json:"width_days"`
	// Color is the bar fill color as "#rrggbb".
	Color string `json:"color"`
	// Label is the text drawn on the bar.
	Label string `json:"label"`
	// LabelDate is the date at which the label is horizontally centered.
	LabelDate time.Time `json:"label_date"`
}

// Gridline represents one vertical gridline on the date axis.
type Gridline struct {
	// Date is the gridline position.
	Date time.Time `json:"date"`
	// Weight is the gridline weight class.
	Weight GridWeight `json:"weight"`
	// Opacity is the fixed opacity for the weight class.
	Opacity float64 `json:"opacity"`
}

// LegendEntry represents one phase swatch in the chart legend.
type LegendEntry struct {
	// Phase is the phase value.
	Phase string `json:"phase"`
	// Color is the swatch color as "#rrggbb".
	Color string `json:"color"`
}

// RenderPlan is the complete drawing description of one chart: every
// primitive carries final positions and colors, so renderers need no
// further date arithmetic.
type RenderPlan struct {
	// Bars contains one bar per task, in sorted task order.
	Bars []Bar `json:"bars"`
	// Gridlines contains weekly and monthly gridlines across the
	// chart's date range.
	Gridlines []Gridline `json:"gridlines,omitempty"`
	// AxisLabels lists the task name per vertical slot, indexed by
	// slot (element 0 labels the bottom row).
	AxisLabels []string `json:"axis_labels"`
	// Legend lists distinct phases in ascending lexical order.
	Legend []LegendEntry `json:"legend,omitempty"`
	// MinStart is the earliest start date across all tasks.
	MinStart time.Time `json:"min_start"`
	// MaxEnd is the latest end date across all tasks.
	MaxEnd time.Time `json:"max_end"`
	// Background is the chart background color from the theme.
	Background string `json:"background"`
	// GridColor is the gridline/axis color from the theme.
	GridColor string `json:"grid_color"`
}
