package loader

// bounds is the bounding box of non-empty cells in a sheet, all
// indices zero-based and inclusive.
type bounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

// dataBounds finds the bounding box of non-empty cells so the loader
// tolerates blank rows and columns before the header. Returns false
// when the sheet is entirely empty.
func dataBounds(rows [][]string) (bounds, bool) {
	b := bounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}
