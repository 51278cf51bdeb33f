package models

import "time"

// TaskRecord represents a single task derived from one table row.
// Records are constructed once after role resolution and date
// normalization and are not modified afterwards.
type TaskRecord struct {
	// Name is the task display name.
	Name string `json:"name"`
	// Start is the task start date.
	Start time.Time `json:"start"`
	// End is the task end date. End < Start is allowed; rendering
	// clamps the displayed width, never the stored dates.
	End time.Time `json:"end"`
	// Phase is the optional grouping label used for coloring and the
	// legend. Empty means the task has no phase.
	Phase string `json:"phase,omitempty"`
	// DurationLabel is the optional display-only duration text taken
	// from the source table (e.g., "3.5" weeks). Empty means the bar
	// label is derived from the date span instead.
	DurationLabel string `json:"duration_label,omitempty"`
}

// Days returns the displayed bar width in days: the date span clamped
// to a minimum of one day so zero and negative spans stay visible.
func (t TaskRecord) Days() int {
	days := int(t.End.Sub(t.Start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
