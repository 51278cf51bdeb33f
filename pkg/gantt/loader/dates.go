package loader

import (
	"fmt"
	"time"
)

// dateFormats lists the accepted date layouts, tried in order. The
// slash forms cover the common US spreadsheet styles excelize emits
// for date-styled cells; the rest cover ISO and written-out dates.
var dateFormats = []string{
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
	"1-2-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
}

// excelEpoch is day zero of the 1900 date system. Serial 1 is
// 1899-12-31, so the epoch sits one day earlier.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// InvalidDateError reports a cell that cannot be interpreted as a
// date at all.
type InvalidDateError struct {
	// Row is the 1-based data row number.
	Row int
	// Column is the column name holding the bad value.
	Column string
	// Value is the offending cell value.
	Value interface{}
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %v in column %q as a date", e.Row, e.Value, e.Column)
}

// ParseDate interprets a raw cell value as a calendar date. Strings
// are tried against the known layouts; numbers are treated as Excel
// serial dates.
func ParseDate(v interface{}) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		for _, layout := range dateFormats {
			if t, err := time.Parse(layout, val); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", val)
	case int64:
		return serialDate(float64(val))
	case float64:
		return serialDate(val)
	default:
		return time.Time{}, fmt.Errorf("unrecognized date value %v", v)
	}
}

func serialDate(serial float64) (time.Time, error) {
	if serial <= 0 {
		return time.Time{}, fmt.Errorf("serial date %v out of range", serial)
	}
	return excelEpoch.AddDate(0, 0, int(serial)), nil
}
