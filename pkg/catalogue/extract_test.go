package catalogue

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/xuri/excelize/v2"
)

const fieldsCSV = "English Original,French Original,English Plainlanguage,French Plainlanguage\n" +
	"Database/Dataset/System Name (English),Nom de la base de données (français),Dataset,Ensemble de données\n" +
	"ID,ID,ID,ID\n" +
	"Description (English),Description (français),Description,Description\n" +
	"Hyperlinks,Hyperliens,Hyperlinks,Hyperliens\n"

// setupRoot lays out the conventional inputs under a temporary root.
func setupRoot(t *testing.T, withID bool) string {
	t.Helper()
	root := t.TempDir()

	mustWrite(t, filepath.Join(root, "approved-datasets.txt"), "1,CCHS\n3,CHMS\n")
	mustWrite(t, filepath.Join(root, "data", "dictionary.csv"), fieldsCSV)

	f := excelize.NewFile()
	defer f.Close()

	headers := []interface{}{"Database/Dataset/System Name (English)", "Description (English)", "Hyperlinks", "Unused"}
	if withID {
		headers = append([]interface{}{"ID"}, headers...)
	}
	rows := [][]interface{}{
		{"Census", "• first\r\n• second", "https://www.canada.ca/x, not-a-link", "u"},
		{"Secret", "hidden", "https://www.canada.ca/y", "u"},
		{"Survey", "  spaced   out ", "https://evil.example.com/z\nhttps://open.canada.ca/w", "u"},
	}
	if err := f.SetSheetRow("Sheet1", "A1", &headers); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}
	for i, r := range rows {
		if withID {
			r = append([]interface{}{i + 1}, r...)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	dir := filepath.Join(root, "put data catalogue extracts here")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := f.SaveAs(filepath.Join(dir, "export-en.xlsx")); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return root
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestExtract(t *testing.T) {
	root := setupRoot(t, true)

	res, err := Extract(DefaultOptions(root, models.LangEnglish))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !res.Filtered || !res.Linked {
		t.Errorf("Expected filtering and linking, got %+v", res)
	}
	if res.SourceRows != 3 || res.Rows != 2 {
		t.Errorf("Expected 3 source rows and 2 written, got %d and %d", res.SourceRows, res.Rows)
	}

	data, err := os.ReadFile(res.JSONPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	expected := `[{"Dataset":"Census","ID":1,"Description":"- first<br>- second",` +
		`"Hyperlinks":"<a href=\"https://www.canada.ca/x\" target=\"_blank\">Census dataset on www.canada.ca</a><br>"},` +
		`{"Dataset":"Survey","ID":3,"Description":"spaced out",` +
		`"Hyperlinks":"<a href=\"https://open.canada.ca/w\" target=\"_blank\">Survey dataset on open.canada.ca</a><br>"}]`
	if string(data) != expected {
		t.Errorf("JSON output =\n%s\nexpected\n%s", data, expected)
	}

	csvData, err := os.ReadFile(res.CSVPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(csvData, []byte("\xEF\xBB\xBF")) {
		t.Error("Expected CSV BOM")
	}
	records, err := csv.NewReader(bytes.NewReader(csvData[3:])).ReadAll()
	if err != nil {
		t.Fatalf("CSV read failed: %v", err)
	}
	var objects []map[string]interface{}
	if err := json.Unmarshal(data, &objects); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(records)-1 != len(objects) {
		t.Errorf("CSV has %d rows, JSON has %d", len(records)-1, len(objects))
	}
	if records[0][0] != "Dataset" || records[1][0] != "Census" || records[2][1] != "3" {
		t.Errorf("Unexpected CSV: %v", records)
	}
}

func TestExtract_NoIDColumn(t *testing.T) {
	root := setupRoot(t, false)
	mustWrite(t, filepath.Join(root, "data", "dictionary.csv"),
		"a,b,c,d\nDatabase/Dataset/System Name (English),,Dataset,\n")

	res, err := Extract(DefaultOptions(root, models.LangEnglish))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Filtered {
		t.Error("Expected filtering to be skipped without an ID column")
	}
	if res.Rows != 3 {
		t.Errorf("Expected all 3 rows, got %d", res.Rows)
	}
	if res.Linked {
		t.Error("Expected enrichment skipped without a hyperlink column")
	}
}

func TestExtract_Errors(t *testing.T) {
	t.Run("missing export", func(t *testing.T) {
		root := setupRoot(t, true)
		opts := DefaultOptions(root, models.LangFrench)

		_, err := Extract(opts)
		var stageErr *StageError
		if !errors.As(err, &stageErr) || stageErr.Stage != StageSource {
			t.Fatalf("Expected source StageError, got %v", err)
		}
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("Expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("mapping names unknown column", func(t *testing.T) {
		root := setupRoot(t, true)
		mustWrite(t, filepath.Join(root, "data", "dictionary.csv"), "a,b,c,d\nNot There,,Nope,\n")
		opts := DefaultOptions(root, models.LangEnglish)

		_, err := Extract(opts)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("Expected ErrInvalidConfig, got %v", err)
		}
		if _, statErr := os.Stat(opts.Paths.JSON); !os.IsNotExist(statErr) {
			t.Error("Expected no JSON output after a configuration error")
		}
		if _, statErr := os.Stat(opts.Paths.CSV); !os.IsNotExist(statErr) {
			t.Error("Expected no CSV output after a configuration error")
		}
	})

	t.Run("mismatched mapping", func(t *testing.T) {
		root := setupRoot(t, true)
		mustWrite(t, filepath.Join(root, "data", "dictionary.csv"), "a,b,c,d\nID,,,\n")

		_, err := Extract(DefaultOptions(root, models.LangEnglish))
		var stageErr *StageError
		if !errors.As(err, &stageErr) || stageErr.Stage != StageConfig {
			t.Fatalf("Expected config StageError, got %v", err)
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := Extract(Options{Language: "de"})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}
