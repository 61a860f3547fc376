package transform

import (
	"testing"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"• first\r\n• second", "- first<br>- second"},
		{"a\n\n\nb", "a<br>b"},
		{"a_x000d__x000a_b", "a<br>b"},
		{"▪ one\r▪ two", "- one<br>- two"},
		{"  lots   of\tspace  ", "lots of space"},
		{"a\n<br>\nb", "a<br>b"},
		{"a <br> \n b", "a <br> <br> b"},
		{" padded ", "padded"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.input); got != tt.expected {
			t.Errorf("NormalizeText(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"• first\r\n• second",
		"a <br> \n b",
		"_x000d_x000a_",
		"••\n\n  ▪",
		"<br><br>\r\n<br>",
		"x\r\n\r\n \r\n y",
	}

	for _, in := range inputs {
		once := NormalizeText(in)
		if twice := NormalizeText(once); twice != once {
			t.Errorf("NormalizeText not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeCell_NonString(t *testing.T) {
	values := []models.Value{int64(4), 2.5, true, nil}
	for _, v := range values {
		if got := NormalizeCell(v); got != v {
			t.Errorf("NormalizeCell(%v) = %v, expected unchanged", v, got)
		}
	}
}

func TestNormalizeTable(t *testing.T) {
	table := models.NewTable([]string{"A", "B"})
	table.AddRow([]models.Value{" x\ny ", int64(1)})

	NormalizeTable(table)

	if table.Rows[0][0] != "x<br>y" {
		t.Errorf("Expected 'x<br>y', got %q", table.Rows[0][0])
	}
	if table.Rows[0][1] != int64(1) {
		t.Errorf("Expected int64(1) unchanged, got %v", table.Rows[0][1])
	}
}
