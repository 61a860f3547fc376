package transform

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

var (
	linkSeparator = regexp.MustCompile(`,|\r\n|\n|\r|<br>`)
	linkHost      = regexp.MustCompile(`(?i)https?://([^/\s?#"'<>]+)(/[^\s"'<>]*)?`)
)

// LinkColumns names the columns hyperlink enrichment reads.
type LinkColumns struct {
	// Hyperlinks is the column holding raw link text.
	Hyperlinks string
	// Dataset is the renamed column holding the dataset name.
	Dataset string
}

// DefaultLinkColumns returns the post-rename column names for lang.
func DefaultLinkColumns(lang models.Language) LinkColumns {
	if lang == models.LangFrench {
		return LinkColumns{Hyperlinks: "Hyperliens", Dataset: "Ensemble de données"}
	}
	return LinkColumns{Hyperlinks: "Hyperlinks", Dataset: "Dataset"}
}

// EnrichHyperlinks rewrites the hyperlink column of t into anchor tags in place.
// It does nothing when either column is absent and reports whether it ran.
func EnrichHyperlinks(t *models.Table, cols LinkColumns, allowed models.DomainSet) bool {
	linkIdx := t.Index(cols.Hyperlinks)
	nameIdx := t.Index(cols.Dataset)
	if linkIdx < 0 || nameIdx < 0 {
		return false
	}
	for _, row := range t.Rows {
		row[linkIdx] = RenderLinks(row[linkIdx], models.FormatValue(row[nameIdx]), allowed)
	}
	return true
}

// RenderLinks turns a raw hyperlink cell into concatenated anchor tags.
// Fragments are separated by commas or line breaks; only https links to an
// allowed host survive. The URL stops at a quote or angle bracket, and URL
// and dataset name are HTML-escaped. A missing cell yields "".
func RenderLinks(cell models.Value, datasetName string, allowed models.DomainSet) string {
	raw := models.FormatValue(cell)
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, fragment := range linkSeparator.Split(raw, -1) {
		link := strings.TrimSpace(fragment)
		if !strings.Contains(strings.ToLower(link), "https://") {
			continue
		}
		m := linkHost.FindStringSubmatch(link)
		if m == nil || !allowed.Contains(m[1]) {
			continue
		}
		fmt.Fprintf(&b, `<a href="%s" target="_blank">%s dataset on %s</a><br>`,
			html.EscapeString(m[0]), html.EscapeString(datasetName), html.EscapeString(m[1]))
	}
	return b.String()
}
