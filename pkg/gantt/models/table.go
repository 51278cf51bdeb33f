// Package models defines data structures for Gantt chart generation.
package models

// Row maps a column name to the raw cell value of one table row.
type Row map[string]interface{}

// Table represents tabular data loaded from a spreadsheet.
// Column order follows the source header row and is significant:
// schema resolution scans columns in this order.
type Table struct {
	// Columns is the ordered list of column names from the header row.
	Columns []string `json:"columns"`
	// Rows contains the data rows below the header, in sheet order.
	Rows []Row `json:"rows"`
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
