package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/xuri/excelize/v2"
)

// ExtractTable reads a sheet into a Table.
// The first non-empty row is the header; rows with no data are skipped.
func ExtractTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	bounds := findDataBounds(rows)
	if bounds.Empty() {
		return models.NewTable(nil), nil
	}

	headers := make([]string, 0, bounds.MaxCol-bounds.MinCol+1)
	for colIdx := bounds.MinCol; colIdx <= bounds.MaxCol; colIdx++ {
		headers = append(headers, cellAt(rows, bounds.MinRow, colIdx))
	}
	table := models.NewTable(headers)

	for rowIdx := bounds.MinRow + 1; rowIdx <= bounds.MaxRow; rowIdx++ {
		if countNonEmptyCells(rows[rowIdx], bounds.MinCol, bounds.MaxCol) == 0 {
			continue
		}
		values := make([]models.Value, len(headers))
		for i := range headers {
			colIdx := bounds.MinCol + i
			formatted := cellAt(rows, rowIdx, colIdx)
			if formatted == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			values[i] = typedValue(f, sheetName, cellName, formatted, cellAt(raw, rowIdx, colIdx))
		}
		table.AddRow(values)
	}

	return table, nil
}

// typedValue converts a cell to int64, float64 or bool when the workbook stores
// it as such, and keeps the displayed text otherwise. Dates keep their
// formatted text.
func typedValue(f *excelize.File, sheetName, cellName, formatted, raw string) models.Value {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return formatted
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeFormula:
		v := parseValue(raw)
		if _, isText := v.(string); isText {
			return formatted
		}
		if isDateCell(f, sheetName, cellName) {
			return formatted
		}
		return v
	default:
		return formatted
	}
}

// builtInDateFormats are the built-in number format ids that render dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// isDateCell reports whether the cell's number format renders a date or time.
func isDateCell(f *excelize.File, sheetName, cellName string) bool {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtInDateFormats[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date or time
// tokens outside quoted literals.
func isDateFormatCode(code string) bool {
	inQuote := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '\\':
			i++
		case c == '[':
			// Skip colour and locale sections such as [Red] or [$-409].
			if end := strings.IndexByte(code[i:], ']'); end >= 0 {
				i += end
			}
		case strings.IndexByte("yYmMdDhHsS", c) >= 0:
			return true
		}
	}
	return false
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and infinities have no JSON form and stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
