// Package dictionary builds the plain-language lookup files from the dictionary CSV.
package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/parser"
	"golang.org/x/text/unicode/norm"
)

// Column headers of the dictionary CSV.
const (
	FrenchTermColumn         = "French Plainlanguage"
	FrenchDescriptionColumn  = "French Description"
	EnglishTermColumn        = "English Plainlanguage"
	EnglishDescriptionColumn = "English Description"
)

// Entry is a term with its plain-language description.
type Entry struct {
	Term        string
	Description string
}

// Lookup is a term to description mapping that remembers first insertion order.
type Lookup struct {
	index   map[string]int
	entries []Entry
}

// NewLookup creates an empty lookup.
func NewLookup() *Lookup {
	return &Lookup{index: make(map[string]int)}
}

// Set records a description. A repeated term keeps its position and takes the new description.
func (l *Lookup) Set(term, description string) {
	if i, ok := l.index[term]; ok {
		l.entries[i].Description = description
		return
	}
	l.index[term] = len(l.entries)
	l.entries = append(l.entries, Entry{Term: term, Description: description})
}

// Get returns the description of term.
func (l *Lookup) Get(term string) (string, bool) {
	i, ok := l.index[term]
	if !ok {
		return "", false
	}
	return l.entries[i].Description, true
}

// Len returns the number of distinct terms.
func (l *Lookup) Len() int {
	return len(l.entries)
}

// Entries returns the entries in insertion order.
func (l *Lookup) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// MarshalJSON writes the lookup as a flat JSON object in insertion order.
func (l *Lookup) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range l.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(&buf, e.Term); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeString(&buf, e.Description); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// Indent renders the lookup with four-space indentation and unescaped non-ASCII text.
func (l *Lookup) Indent() ([]byte, error) {
	compact, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Dictionaries holds the lookups for both languages.
type Dictionaries struct {
	English *Lookup
	French  *Lookup
}

// For returns the lookup of lang.
func (d Dictionaries) For(lang models.Language) *Lookup {
	if lang == models.LangFrench {
		return d.French
	}
	return d.English
}

// Build collapses dictionary CSV records (header first) into per-language lookups.
// Rows missing a term or description are dropped for that language only.
func Build(records [][]string) (Dictionaries, error) {
	if len(records) == 0 {
		return Dictionaries{}, fmt.Errorf("%w: dictionary is empty", models.ErrInvalidConfig)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		if _, dup := header[name]; !dup {
			header[name] = i
		}
	}

	required := []string{FrenchTermColumn, FrenchDescriptionColumn, EnglishTermColumn, EnglishDescriptionColumn}
	var missing []string
	for _, name := range required {
		if _, ok := header[name]; !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return Dictionaries{}, fmt.Errorf("%w: missing expected columns in dictionary: %s",
			models.ErrInvalidConfig, strings.Join(missing, ", "))
	}

	d := Dictionaries{English: NewLookup(), French: NewLookup()}
	for _, rec := range records[1:] {
		addEntry(d.French, rec, header[FrenchTermColumn], header[FrenchDescriptionColumn])
		addEntry(d.English, rec, header[EnglishTermColumn], header[EnglishDescriptionColumn])
	}
	return d, nil
}

func addEntry(l *Lookup, rec []string, termCol, descCol int) {
	if termCol >= len(rec) || descCol >= len(rec) {
		return
	}
	term, desc := rec[termCol], rec[descCol]
	if term == "" || desc == "" {
		return
	}
	// Composed form so "é" typed two ways is one term.
	l.Set(norm.NFC.String(term), desc)
}

// Load reads and builds the dictionaries from a CSV file.
func Load(path string) (Dictionaries, error) {
	records, err := parser.ReadCSV(path)
	if err != nil {
		return Dictionaries{}, err
	}
	return Build(records)
}
