package parser

// dataBounds is the bounding box of non-empty cells, 0-based and inclusive.
type dataBounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Empty reports whether no non-empty cell was found.
func (b dataBounds) Empty() bool {
	return b.MinRow < 0
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) dataBounds {
	b := dataBounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if b.MinRow < 0 || rowIdx < b.MinRow {
					b.MinRow = rowIdx
				}
				if b.MaxRow < 0 || rowIdx > b.MaxRow {
					b.MaxRow = rowIdx
				}
				if b.MinCol < 0 || colIdx < b.MinCol {
					b.MinCol = colIdx
				}
				if b.MaxCol < 0 || colIdx > b.MaxCol {
					b.MaxCol = colIdx
				}
			}
		}
	}

	return b
}

// countNonEmptyCells counts non-empty cells of one row within the column bounds.
func countNonEmptyCells(row []string, minCol, maxCol int) int {
	count := 0
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
		if row[colIdx] != "" {
			count++
		}
	}
	return count
}

// cellAt returns rows[r][c], or "" when the row is shorter.
func cellAt(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}
