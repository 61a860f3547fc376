package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

// File is a rendered artifact waiting to be written.
type File struct {
	Path string
	Data []byte
}

// Render serializes t to JSON and CSV without touching the filesystem.
func Render(t *models.Table, jsonPath, csvPath string, pretty bool) ([]File, error) {
	jsonData, err := ToJSON(t, pretty)
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	csvData, err := ToCSV(t)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return []File{
		{Path: jsonPath, Data: jsonData},
		{Path: csvPath, Data: csvData},
	}, nil
}

// rename is swapped in tests to simulate a failed commit.
var rename = os.Rename

// WriteFiles writes every file through a temporary sibling and a rename.
// All temporaries are written before any rename. Existing outputs are moved
// aside while the set is committed and put back if any rename fails, so the
// files are replaced together or not at all.
func WriteFiles(files []File) error {
	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range temps {
			os.Remove(tmp)
		}
	}

	for _, f := range files {
		dir := filepath.Dir(f.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			cleanup()
			return err
		}
		tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
		if err != nil {
			cleanup()
			return err
		}
		temps = append(temps, tmp.Name())
		if _, err := tmp.Write(f.Data); err != nil {
			tmp.Close()
			cleanup()
			return err
		}
		if err := tmp.Close(); err != nil {
			cleanup()
			return err
		}
		if err := os.Chmod(tmp.Name(), 0644); err != nil {
			cleanup()
			return err
		}
	}

	backups := make([]string, len(files))
	// restore undoes the first n commits and puts back the backup of file n, if any.
	restore := func(n int) {
		if n < len(files) && backups[n] != "" {
			rename(backups[n], files[n].Path)
		}
		for j := n - 1; j >= 0; j-- {
			if backups[j] != "" {
				rename(backups[j], files[j].Path)
			} else {
				os.Remove(files[j].Path)
			}
		}
	}

	for i, f := range files {
		if _, err := os.Lstat(f.Path); err == nil {
			bak := temps[i] + ".bak"
			if err := rename(f.Path, bak); err != nil {
				restore(i)
				cleanup()
				return err
			}
			backups[i] = bak
		}
		if err := rename(temps[i], f.Path); err != nil {
			restore(i)
			cleanup()
			return err
		}
	}

	for _, bak := range backups {
		if bak != "" {
			os.Remove(bak)
		}
	}
	return nil
}
