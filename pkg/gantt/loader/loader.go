// Package loader reads task tables from Excel workbooks and turns
// resolved rows into task records. It is the only package that opens
// files on the ingestion side; the schema and layout cores stay pure.
package loader

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

// ErrNoData indicates the sheet has no usable rows below the header.
var ErrNoData = errors.New("no data rows found")

// Open reads the first sheet of an xlsx file into a Table. The first
// non-empty row inside the sheet's data region becomes the header;
// every later row becomes a data row keyed by header name. Column
// order follows the header row.
func Open(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return tableFromRows(rows)
}

// tableFromRows builds a Table out of raw sheet rows, skipping any
// blank rows and columns around the data region.
func tableFromRows(rows [][]string) (*models.Table, error) {
	bounds, ok := dataBounds(rows)
	if !ok {
		return nil, ErrNoData
	}

	// Header: names come from the first row of the region; unnamed
	// columns are addressed by their sheet position.
	var columns []string
	colIdx := make([]int, 0, bounds.maxCol-bounds.minCol+1)
	header := rows[bounds.minRow]
	for c := bounds.minCol; c <= bounds.maxCol; c++ {
		name := ""
		if c < len(header) {
			name = header[c]
		}
		if name == "" {
			name = fmt.Sprintf("column %d", c+1)
		}
		columns = append(columns, name)
		colIdx = append(colIdx, c)
	}

	table := &models.Table{Columns: columns}
	for r := bounds.minRow + 1; r <= bounds.maxRow; r++ {
		row := rows[r]
		record := make(models.Row, len(columns))
		hasData := false
		for i, c := range colIdx {
			if c >= len(row) || row[c] == "" {
				continue
			}
			record[columns[i]] = parseValue(row[c])
			hasData = true
		}
		if hasData {
			table.Rows = append(table.Rows, record)
		}
	}

	if len(table.Rows) == 0 {
		return nil, ErrNoData
	}
	return table, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// cellString renders a raw cell value for display.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
