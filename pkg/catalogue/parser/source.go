// Package parser reads catalogue exports and run configuration tables.
package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/xuri/excelize/v2"
)

// ReadSource loads a catalogue export into a table keyed by its header row.
// Workbooks use sheetName, or their first sheet when sheetName is empty.
func ReadSource(path, sheetName string) (*models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, sheetName)
	case ".csv", ".txt":
		records, err := ReadCSV(path)
		if err != nil {
			return nil, err
		}
		return TableFromRecords(records), nil
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", models.ErrInvalidFormat, filepath.Ext(path))
	}
}

func readWorkbook(path, sheetName string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidFormat, path, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s: workbook has no sheets", models.ErrInvalidFormat, path)
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s: sheet %q not found", models.ErrInvalidFormat, path, sheetName)
	}

	table, err := ExtractTable(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidFormat, path, err)
	}
	return table, nil
}
