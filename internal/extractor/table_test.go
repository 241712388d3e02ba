package extractor

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCSV(t *testing.T) {
	data := []byte("item,qty,price\nwidget,2,19.99\nlong widget name,1,5.00\n")

	text, err := ExtractCSV(data)
	if err != nil {
		t.Fatalf("ExtractCSV returned error: %v", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), text)
	}
	if !strings.Contains(lines[0], "item") || !strings.Contains(lines[0], "price") {
		t.Errorf("header row not rendered: %q", lines[0])
	}
	if !strings.Contains(lines[2], "long widget name") {
		t.Errorf("data row not rendered: %q", lines[2])
	}

	// Columns are aligned: "qty" starts at the same offset in every line.
	col := strings.Index(lines[0], "qty")
	if col < 0 {
		t.Fatalf("qty not found in header %q", lines[0])
	}
	if lines[2][col-1] != ' ' {
		t.Errorf("columns not aligned:\n%s", text)
	}
}

func TestExtractCSVRaggedRows(t *testing.T) {
	data := []byte("a,b,c\n1,2\nx,y,z,extra\n")

	if _, err := ExtractCSV(data); err != nil {
		t.Fatalf("ExtractCSV rejected ragged rows: %v", err)
	}
}

func TestExtractCSVInvalid(t *testing.T) {
	if _, err := ExtractCSV([]byte("\"unterminated")); err == nil {
		t.Error("ExtractCSV accepted malformed CSV")
	}
}

func TestExtractXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := map[string]string{
		"A1": "item", "B1": "amount",
		"A2": "consulting", "B2": "1200",
		"A3": "hosting", "B3": "80",
	}
	for cell, val := range cells {
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			t.Fatalf("SetCellValue(%s): %v", cell, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	text, err := ExtractXLSX(buf.Bytes())
	if err != nil {
		t.Fatalf("ExtractXLSX returned error: %v", err)
	}

	for _, want := range []string{"item", "amount", "consulting", "1200", "hosting", "80"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered sheet missing %q:\n%s", want, text)
		}
	}
}

func TestExtractXLSXInvalid(t *testing.T) {
	if _, err := ExtractXLSX([]byte("not a workbook")); err == nil {
		t.Error("ExtractXLSX accepted garbage input")
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := renderTable(nil); got != "" {
		t.Errorf("renderTable(nil) = %q, want empty", got)
	}
}
