package models

import "strconv"

// Row holds cell values positionally aligned with Table.Columns.
type Row []Value

// Table is an in-memory sheet keyed by its header row.
type Table struct {
	// Columns are the header names in sheet order.
	Columns []string
	// Rows are the data rows below the header.
	Rows []Row
}

// NewTable creates a table with the given headers.
// Duplicate headers are disambiguated with ".1", ".2" suffixes; the first
// occurrence keeps the plain name.
func NewTable(headers []string) *Table {
	used := make(map[string]bool, len(headers))
	counts := make(map[string]int)
	cols := make([]string, len(headers))
	for i, h := range headers {
		name := h
		for used[name] {
			counts[h]++
			name = h + "." + strconv.Itoa(counts[h])
		}
		used[name] = true
		cols[i] = name
	}
	return &Table{Columns: cols}
}

// Index returns the position of a column, or -1 when absent.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	return t.Index(name) >= 0
}

// AddRow appends a row, padding or truncating it to the column count.
func (t *Table) AddRow(values []Value) {
	row := make(Row, len(t.Columns))
	copy(row, values)
	t.Rows = append(t.Rows, row)
}

// Value returns the cell at (row, column index), or nil when out of range.
func (t *Table) Value(row, col int) Value {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// Filter returns a table sharing the columns with only rows where keep is true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{Columns: t.Columns}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
