package output

import (
	"bytes"
	"encoding/csv"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToCSV serializes t with a UTF-8 byte-order mark and a header row.
// Missing values become empty fields.
func ToCSV(t *models.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			var v models.Value
			if i < len(row) {
				v = row[i]
			}
			record[i] = models.FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
