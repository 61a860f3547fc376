package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/xuri/excelize/v2"
)

func TestReadSource_Workbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "ID")
	f.SetCellValue("Sheet1", "A2", 5)
	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Other", "A1", "Name")
	f.SetCellValue("Other", "A2", "x")

	path := filepath.Join(t.TempDir(), "export-en.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	table, err := ReadSource(path, "")
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if table.Columns[0] != "ID" || table.Rows[0][0] != int64(5) {
		t.Errorf("Expected first sheet, got %v %v", table.Columns, table.Rows)
	}

	table, err = ReadSource(path, "Other")
	if err != nil {
		t.Fatalf("ReadSource(Other) failed: %v", err)
	}
	if table.Columns[0] != "Name" {
		t.Errorf("Expected sheet 'Other', got %v", table.Columns)
	}

	_, err = ReadSource(path, "Missing")
	if !errors.Is(err, models.ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for unknown sheet, got %v", err)
	}
}

func TestReadSource_CSV(t *testing.T) {
	path := writeFile(t, "export.csv", []byte("ID,Hyperlinks\n1,https://www.canada.ca/x\n"))

	table, err := ReadSource(path, "")
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0][1] != "https://www.canada.ca/x" {
		t.Errorf("Unexpected table: %v %v", table.Columns, table.Rows)
	}
}

func TestReadSource_Errors(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	if !errors.Is(err, models.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	path := writeFile(t, "broken.xlsx", []byte("not a zip archive"))
	_, err = ReadSource(path, "")
	if !errors.Is(err, models.ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}

	path = writeFile(t, "export.pdf", []byte("%PDF"))
	_, err = ReadSource(path, "")
	if !errors.Is(err, models.ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for unsupported type, got %v", err)
	}
}
