package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

// ToJSON serializes t as an array of objects, one per row, with keys in
// column order. Non-ASCII and HTML characters are written unescaped and
// missing values become null.
func ToJSON(t *models.Table, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		if pretty {
			buf.WriteString("\n  ")
		}
		if err := writeObject(&buf, t.Columns, row, pretty); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	if pretty && len(t.Rows) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func writeObject(buf *bytes.Buffer, keys []string, row models.Row, pretty bool) error {
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if pretty {
			buf.WriteString("\n    ")
		}
		if err := writeScalar(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if pretty {
			buf.WriteByte(' ')
		}
		var v models.Value
		if i < len(row) {
			v = row[i]
		}
		if err := writeScalar(buf, v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	if pretty && len(keys) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteByte('}')
	return nil
}

// writeScalar encodes v without HTML escaping.
func writeScalar(buf *bytes.Buffer, v interface{}) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
