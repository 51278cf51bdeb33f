package layout

import (
	"time"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

// gridlines produces the weekly and monthly gridlines for the chart's
// date range. Weekly lines fall on every 7-day boundary after the
// minimum start date; monthly lines fall on every first-of-month
// within the range, inclusive of both ends.
func gridlines(minStart, maxEnd time.Time) []models.Gridline {
	var lines []models.Gridline

	for d := minStart.AddDate(0, 0, 7); !d.After(maxEnd); d = d.AddDate(0, 0, 7) {
		lines = append(lines, models.Gridline{
			Date:    d,
			Weight:  models.GridWeekly,
			Opacity: weeklyOpacity,
		})
	}

	month := time.Date(minStart.Year(), minStart.Month(), 1, 0, 0, 0, 0, minStart.Location())
	if month.Before(minStart) {
		month = month.AddDate(0, 1, 0)
	}
	for ; !month.After(maxEnd); month = month.AddDate(0, 1, 0) {
		lines = append(lines, models.Gridline{
			Date:    month,
			Weight:  models.GridMonthly,
			Opacity: monthlyOpacity,
		})
	}

	return lines
}
