// Package output projects catalogue tables and serializes them to JSON and CSV.
package output

import (
	"fmt"
	"strings"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

// Project selects m.Sources from t, in order, and renames them positionally
// to m.Targets. The i-th source becomes the i-th header regardless of names,
// so a repeated source is emitted twice.
func Project(t *models.Table, m models.FieldMapping) (*models.Table, error) {
	if len(m.Sources) != len(m.Targets) {
		return nil, fmt.Errorf("%w: %d source columns but %d target headers",
			models.ErrInvalidConfig, len(m.Sources), len(m.Targets))
	}

	idx := make([]int, len(m.Sources))
	var missing []string
	for i, name := range m.Sources {
		idx[i] = t.Index(name)
		if idx[i] < 0 {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: columns not found in export: %s",
			models.ErrInvalidConfig, strings.Join(missing, ", "))
	}

	out := &models.Table{
		Columns: append([]string(nil), m.Targets...),
		Rows:    make([]models.Row, 0, len(t.Rows)),
	}
	for _, r := range t.Rows {
		row := make(models.Row, len(idx))
		for i, src := range idx {
			row[i] = r[src]
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
