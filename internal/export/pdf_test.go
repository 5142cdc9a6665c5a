package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
)

// buildTestResult creates a small hand-made cloud for testing.
func buildTestResult() model.LayoutResult {
	return model.LayoutResult{
		Center: model.Point{},
		Placements: []model.Placement{
			{Word: model.Word{ID: "w1", Label: "golang", Size: model.Size{Width: 60, Height: 20}}, Rect: model.Rect(-30, -10, 60, 20)},
			{Word: model.Word{ID: "w2", Label: "cloud", Size: model.Size{Width: 40, Height: 16}}, Rect: model.Rect(-20, -26, 40, 16)},
			{Word: model.Word{ID: "w3", Label: "spiral", Size: model.Size{Width: 30, Height: 12}}, Rect: model.Rect(30, -6, 30, 12)},
			{Word: model.Word{ID: "w4", Label: "tag", Size: model.Size{Width: 16, Height: 10}}, Rect: model.Rect(-46, -5, 16, 10)},
		},
	}
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	return info.Size()
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.pdf")

	if err := ExportPDF(path, buildTestResult(), model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	if size := fileSize(t, path); size < 500 {
		t.Errorf("PDF file seems too small: %d bytes", size)
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportPDF(path, model.LayoutResult{}, model.DefaultSettings()); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written for an empty result")
	}
}

func TestExportPDF_ManyPlacementsSpansPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	result := model.LayoutResult{}
	for i := 0; i < 120; i++ {
		result.Placements = append(result.Placements, model.Placement{
			Word: model.Word{ID: fmt.Sprintf("w%d", i), Label: fmt.Sprintf("word-%d", i)},
			Rect: model.Rect(i*10, (i%7)*10, 10, 10),
		})
	}
	settings := model.DefaultSettings()
	settings.MaxRadius = 500

	if err := ExportPDF(path, result, settings); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if size := fileSize(t, path); size == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 30, 8},
		{50, 15, 7},
		{8, 30, 5},
	}
	for _, tt := range tests {
		if got := labelFontSize(tt.w, tt.h); got != tt.want {
			t.Errorf("labelFontSize(%.0f, %.0f) = %.0f, want %.0f", tt.w, tt.h, got, tt.want)
		}
	}
}
