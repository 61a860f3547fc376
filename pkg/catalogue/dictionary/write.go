package dictionary

import (
	"fmt"
	"path/filepath"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/output"
)

// FileName returns the output file name for lang, e.g. dictionary_en.json.
func FileName(lang models.Language) string {
	return fmt.Sprintf("dictionary_%s.json", lang)
}

// Write renders both lookups and writes them into dir.
// It returns the written paths, English first.
func Write(d Dictionaries, dir string) ([]string, error) {
	var files []output.File
	for _, lang := range models.Languages {
		data, err := d.For(lang).Indent()
		if err != nil {
			return nil, fmt.Errorf("%s dictionary: %w", lang, err)
		}
		files = append(files, output.File{Path: filepath.Join(dir, FileName(lang)), Data: data})
	}
	if err := output.WriteFiles(files); err != nil {
		return nil, err
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, nil
}
