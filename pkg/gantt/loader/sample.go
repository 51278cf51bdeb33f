package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type sampleTask struct {
	name     string
	duration interface{}
	phase    string
	start    string
	end      string
}

// sampleTasks is a two-phase example project small enough to read in
// one screen but long enough to exercise sorting, phases, and the
// monthly gridlines.
var sampleTasks = []sampleTask{
	{"Task 1", 2, "Phase 1", "5/19/2025", "6/2/2025"},
	{"Task 2", 2, "Phase 1", "5/19/2025", "6/2/2025"},
	{"Task 3", 3, "Phase 1", "6/2/2025", "6/23/2025"},
	{"Task 4", 3, "Phase 1", "6/2/2025", "6/23/2025"},
	{"Task 5", 5, "Phase 1", "6/23/2025", "7/28/2025"},
	{"Task 6", 6, "Phase 1", "7/28/2025", "9/8/2025"},
	{"Task 7", 4, "Phase 1", "8/25/2025", "9/22/2025"},
	{"Task 8", 4, "Phase 1", "6/2/2025", "6/30/2025"},
	{"Task 9", 3.5, "Phase 1", "9/29/2025", "10/22/2025"},
	{"Task 10", 6, "Phase 2", "9/29/2025", "11/10/2025"},
	{"Task 11", 8, "Phase 2", "11/10/2025", "1/5/2026"},
	{"Task 12", 10, "Phase 2", "1/5/2026", "3/16/2026"},
	{"Task 13", 9, "Phase 2", "3/23/2026", "5/25/2026"},
	{"Task 14", 9, "Phase 2", "6/8/2026", "8/10/2026"},
}

// WriteSample writes an example task workbook that resolves and
// charts out of the box, for users who want a starting template.
func WriteSample(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Task", "Duration (weeks)", "Phase", "Start Date", "End Date"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, task := range sampleTasks {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{task.name, task.duration, task.phase, task.start, task.end}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
