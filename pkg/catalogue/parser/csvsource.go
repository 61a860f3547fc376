package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV reads every record of a CSV file.
// A UTF-8 or UTF-16 byte-order mark is honoured and stripped; input that is
// not valid UTF-8 is decoded as Windows-1252.
func ReadCSV(path string) ([][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
		}
		return nil, err
	}

	text, err := decodeText(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidFormat, path, err)
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidFormat, path, err)
	}
	return records, nil
}

// decodeText converts raw file bytes to UTF-8 without a byte-order mark.
func decodeText(b []byte) ([]byte, error) {
	if utf8.Valid(b) || hasUTF16BOM(b) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b)
		return out, err
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), b)
	return out, err
}

func hasUTF16BOM(b []byte) bool {
	return bytes.HasPrefix(b, []byte{0xFF, 0xFE}) || bytes.HasPrefix(b, []byte{0xFE, 0xFF})
}

// TableFromRecords builds a table from CSV records whose first record is the header.
// Empty cells become missing values and numeric text is typed.
func TableFromRecords(records [][]string) *models.Table {
	if len(records) == 0 {
		return models.NewTable(nil)
	}
	t := models.NewTable(records[0])
	for _, rec := range records[1:] {
		values := make([]models.Value, len(rec))
		hasData := false
		for i, cell := range rec {
			if cell == "" {
				continue
			}
			hasData = true
			values[i] = parseValue(cell)
		}
		if hasData {
			t.AddRow(values)
		}
	}
	return t
}
