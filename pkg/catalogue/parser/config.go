package parser

import (
	"fmt"
	"strings"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"golang.org/x/text/unicode/norm"
)

// Column positions of the field-mapping table.
const (
	mappingEnglishSource = 0
	mappingFrenchSource  = 1
	mappingEnglishTarget = 2
	mappingFrenchTarget  = 3
	mappingColumns       = 4
)

// LoadApprovedIDs reads the headerless approved-dataset list (ID, Acronym).
func LoadApprovedIDs(path string) (*models.ApprovedIDSet, error) {
	records, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}

	set := models.NewApprovedIDSet()
	for _, rec := range records {
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		label := ""
		if len(rec) > 1 {
			label = strings.TrimSpace(rec[1])
		}
		set.Add(rec[0], label)
	}
	return set, nil
}

// LoadFieldMapping reads the field-mapping table and selects the columns for lang.
// The first record is a header and is ignored; columns are positional.
func LoadFieldMapping(path string, lang models.Language) (models.FieldMapping, error) {
	records, err := ReadCSV(path)
	if err != nil {
		return models.FieldMapping{}, err
	}
	return MappingFromRecords(records, lang)
}

// MappingFromRecords builds a FieldMapping from mapping-table records.
// Source and target names are gathered independently, skipping blanks, and
// must pair up one to one.
func MappingFromRecords(records [][]string, lang models.Language) (models.FieldMapping, error) {
	var srcCol, dstCol int
	switch lang {
	case models.LangEnglish:
		srcCol, dstCol = mappingEnglishSource, mappingEnglishTarget
	case models.LangFrench:
		srcCol, dstCol = mappingFrenchSource, mappingFrenchTarget
	default:
		return models.FieldMapping{}, fmt.Errorf("%w: unsupported language %q", models.ErrInvalidConfig, lang)
	}

	if len(records) == 0 || len(records[0]) < mappingColumns {
		return models.FieldMapping{}, fmt.Errorf("%w: field mapping needs %d columns (English source, French source, English target, French target)",
			models.ErrInvalidConfig, mappingColumns)
	}

	m := models.FieldMapping{Language: lang}
	for _, rec := range records[1:] {
		if name := field(rec, srcCol); name != "" {
			m.Sources = append(m.Sources, name)
		}
		// Headers are composed like dictionary terms so the two stay keyed alike.
		if name := field(rec, dstCol); name != "" {
			m.Targets = append(m.Targets, norm.NFC.String(name))
		}
	}

	if len(m.Sources) != len(m.Targets) {
		return models.FieldMapping{}, fmt.Errorf("%w: %s mapping has %d source columns but %d target headers",
			models.ErrInvalidConfig, lang, len(m.Sources), len(m.Targets))
	}
	if len(m.Sources) == 0 {
		return models.FieldMapping{}, fmt.Errorf("%w: %s mapping selects no columns", models.ErrInvalidConfig, lang)
	}
	return m, nil
}

// field returns the i-th field of rec, or "" when the record is short.
// Whitespace-only names count as blank; other names are kept verbatim.
func field(rec []string, i int) string {
	if i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
		return ""
	}
	return rec[i]
}
