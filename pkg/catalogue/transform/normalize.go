// Package transform cleans catalogue rows and cells before serialization.
package transform

import (
	"regexp"
	"strings"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

// LineBreak is the marker that replaces line breaks in cell text.
const LineBreak = "<br>"

var (
	lineBreakRun = regexp.MustCompile(`(\r\n|\n|\r|_x000d_|_x000a_)+`)
	bulletGlyph  = regexp.MustCompile(`[•▪]`)
	markerRun    = regexp.MustCompile(`(<br>)+`)
)

// NormalizeCell cleans the text of a string cell. Other values are returned unchanged.
//
// Line breaks (including the _x000d_/_x000a_ escapes Excel leaves behind)
// become a single <br>, bullet glyphs become "- ", whitespace runs collapse
// to one space, and repeated <br> markers collapse to one.
func NormalizeCell(v models.Value) models.Value {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return NormalizeText(s)
}

// NormalizeText applies the cell cleaning rules to s. It is idempotent.
func NormalizeText(s string) string {
	s = lineBreakRun.ReplaceAllString(s, LineBreak)
	s = bulletGlyph.ReplaceAllString(s, "- ")
	s = strings.Join(strings.Fields(s), " ")
	return markerRun.ReplaceAllString(s, LineBreak)
}

// NormalizeTable normalizes every cell of t in place.
func NormalizeTable(t *models.Table) {
	for _, row := range t.Rows {
		for i, v := range row {
			row[i] = NormalizeCell(v)
		}
	}
}
