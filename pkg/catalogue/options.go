// Package catalogue converts data catalogue exports into the JSON and CSV
// files served to the catalogue table.
package catalogue

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/transform"
)

// Paths locates the inputs and outputs of one language run.
type Paths struct {
	// Export is the raw catalogue export (.xlsx or .csv).
	Export string
	// Approved is the headerless approved-dataset list (ID, Acronym).
	Approved string
	// Fields is the field-mapping table.
	Fields string
	// JSON is the JSON output path.
	JSON string
	// CSV is the CSV output path.
	CSV string
}

// DefaultPaths returns the conventional layout under root for lang.
func DefaultPaths(root string, lang models.Language) Paths {
	return Paths{
		Export:   filepath.Join(root, "put data catalogue extracts here", fmt.Sprintf("export-%s.xlsx", lang)),
		Approved: filepath.Join(root, "approved-datasets.txt"),
		Fields:   filepath.Join(root, "data", "dictionary.csv"),
		JSON:     filepath.Join(root, "data", fmt.Sprintf("output-%s.json", lang)),
		CSV:      filepath.Join(root, "data", fmt.Sprintf("output-%s.csv", lang)),
	}
}

// Options configures an extraction run.
type Options struct {
	// Language selects the mapping columns and link column names.
	Language models.Language
	// Paths locates inputs and outputs.
	Paths Paths
	// Sheet is the workbook sheet to read. Empty means the first sheet.
	Sheet string
	// AllowedDomains lists hosts permitted in hyperlinks.
	// If nil, models.DefaultAllowedDomains is used.
	AllowedDomains []string
	// LinkColumns names the hyperlink and dataset columns after renaming.
	// If nil, transform.DefaultLinkColumns(Language) is used.
	LinkColumns *transform.LinkColumns
	// Pretty indents the JSON output.
	Pretty bool
	// Logger receives progress records. If nil, logging is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns options for lang using the conventional layout under root.
func DefaultOptions(root string, lang models.Language) Options {
	return Options{
		Language: lang,
		Paths:    DefaultPaths(root, lang),
	}
}

// Domains returns the allow-listed host set.
func (o Options) Domains() models.DomainSet {
	if o.AllowedDomains != nil {
		return models.NewDomainSet(o.AllowedDomains...)
	}
	return models.NewDomainSet(models.DefaultAllowedDomains...)
}

// Links returns the hyperlink and dataset column names.
func (o Options) Links() transform.LinkColumns {
	if o.LinkColumns != nil {
		return *o.LinkColumns
	}
	return transform.DefaultLinkColumns(o.Language)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
