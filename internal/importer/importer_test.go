package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/tagcloud/internal/export"
	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func labels(words []model.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Label
	}
	return out
}

// ─── Delimiter Detection ───────────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "label,width,height\ngo,60,20\n", ','},
		{"semicolon", "label;width;height\ngo;60;20\n", ';'},
		{"tab", "label\twidth\theight\ngo\t60\t20\n", '\t'},
		{"pipe", "label|width|height\ngo|60|20\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("DetectCSVDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ─── Column Detection ──────────────────────────────────────

func TestDetectColumns_Header(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Height", "Word", "W", "Qty"})
	if !ok {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{Label: 1, Width: 2, Height: 0, Count: 3}
	if mapping != want {
		t.Errorf("got %+v, want %+v", mapping, want)
	}
}

func TestDetectColumns_Positional(t *testing.T) {
	mapping, ok := DetectColumns([]string{"go", "60", "20"})
	if ok {
		t.Fatal("data row should not be detected as header")
	}
	want := ColumnMapping{Label: 0, Width: 1, Height: 2, Count: 3}
	if mapping != want {
		t.Errorf("got %+v, want %+v", mapping, want)
	}
}

// ─── CSV Import ────────────────────────────────────────────

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTempFile(t, "words.csv", "Label,Width,Height,Count\ngolang,120,40,1\ncloud,80,30,2\n")

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if got := strings.Join(labels(result.Words), ","); got != "golang,cloud,cloud" {
		t.Errorf("unexpected words %s", got)
	}
	if result.Words[1].Size != (model.Size{Width: 80, Height: 30}) {
		t.Errorf("unexpected size %s", result.Words[1].Size)
	}
	if result.Words[1].ID == result.Words[2].ID {
		t.Error("repeated words must get distinct IDs")
	}
	if !result.OK() {
		t.Error("result should be OK")
	}
}

func TestImportCSV_Positional(t *testing.T) {
	path := writeTempFile(t, "words.csv", "go,60,20\nrust,70,20,3\n")

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Words) != 4 {
		t.Fatalf("expected 4 words, got %d", len(result.Words))
	}
}

func TestImportCSV_Semicolon(t *testing.T) {
	path := writeTempFile(t, "words.csv", "word;w;h\ngo;60;20\n")

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_RowErrors(t *testing.T) {
	path := writeTempFile(t, "words.csv", "label,width,height\ngood,10,10\nbad,abc,10\nflat,10,0\nmissing,10,\n\n")

	result := ImportCSV(path)
	if len(result.Words) != 1 {
		t.Errorf("expected 1 valid word, got %d", len(result.Words))
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if result.OK() {
		t.Error("result with errors should not be OK")
	}
}

func TestImportCSV_FractionalSizesRoundUp(t *testing.T) {
	path := writeTempFile(t, "words.csv", "label,width,height\ngo,60.2,19.5\n")

	result := ImportCSV(path)
	if len(result.Words) != 1 {
		t.Fatalf("expected 1 word, got %d (%v)", len(result.Words), result.Errors)
	}
	if result.Words[0].Size != (model.Size{Width: 61, Height: 20}) {
		t.Errorf("unexpected size %s", result.Words[0].Size)
	}
	if len(result.Warnings) < 2 {
		t.Errorf("expected rounding warning, got %v", result.Warnings)
	}
}

func TestImportCSV_MissingRequiredColumns(t *testing.T) {
	path := writeTempFile(t, "words.csv", "label,width\ngo,60\n")

	result := ImportCSV(path)
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Height") {
		t.Errorf("expected missing Height error, got %v", result.Errors)
	}
}

func TestImportCSV_EmptyAndMissing(t *testing.T) {
	if r := ImportCSV(writeTempFile(t, "empty.csv", "  \n")); len(r.Errors) == 0 {
		t.Error("expected error for empty file")
	}
	if r := ImportCSV(filepath.Join(t.TempDir(), "nope.csv")); len(r.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportCSVFromReader(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("a|5|5\nb|6|6\n"), '|')
	if len(result.Words) != 2 {
		t.Fatalf("expected 2 words, got %d (%v)", len(result.Words), result.Errors)
	}
}

// ─── Excel Import ──────────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Word", "Width", "Height", "Count"},
		{"layout", 90, 30, 1},
		{"spiral", 70, 25, 2},
	})

	result := ImportExcel(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if got := strings.Join(labels(result.Words), ","); got != "layout,spiral,spiral" {
		t.Errorf("unexpected words %s", got)
	}
}

func TestImportExcel_ReadsExportedWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.xlsx")
	result := model.LayoutResult{Placements: []model.Placement{
		{Word: model.Word{ID: "a", Label: "alpha"}, Rect: model.Rect(-5, -5, 10, 10)},
		{Word: model.Word{ID: "b", Label: "beta"}, Rect: model.Rect(5, -5, 12, 8)},
	}}
	if err := export.ExportXLSX(path, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	imported := ImportExcel(path)
	if len(imported.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", imported.Errors)
	}
	if len(imported.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(imported.Words))
	}
	if imported.Words[1].Label != "beta" || imported.Words[1].Size != (model.Size{Width: 12, Height: 8}) {
		t.Errorf("unexpected word %+v", imported.Words[1])
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	if r := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx")); len(r.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

// ─── Dispatch ──────────────────────────────────────────────

func TestImportFile_Dispatch(t *testing.T) {
	csvPath := writeTempFile(t, "words.CSV", "go,10,10\n")
	if r := ImportFile(csvPath); len(r.Words) != 1 {
		t.Errorf("csv dispatch failed: %+v", r)
	}

	tomlPath := writeTempFile(t, "words.toml", "[[word]]\nlabel = \"go\"\nwidth = 10\nheight = 5\n")
	if r := ImportFile(tomlPath); len(r.Words) != 1 {
		t.Errorf("toml dispatch failed: %+v", r)
	}

	yamlPath := writeTempFile(t, "words.yml", "words:\n  - label: go\n    width: 10\n    height: 5\n")
	if r := ImportFile(yamlPath); len(r.Words) != 1 {
		t.Errorf("yaml dispatch failed: %+v", r)
	}

	if r := ImportFile(writeTempFile(t, "words.doc", "")); len(r.Errors) == 0 {
		t.Error("expected error for unsupported extension")
	}
}
