package export

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if size := fileSize(t, path); size < 500 {
		t.Errorf("labels PDF seems too small: %d bytes", size)
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	result := model.LayoutResult{}
	for i := 0; i < labelsPerPage+5; i++ {
		result.Placements = append(result.Placements, model.Placement{
			Word: model.Word{Label: "a rather long word label that needs truncating"},
			Rect: model.Rect(i*4, 0, 4, 4),
		})
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportLabels(path, model.LayoutResult{}); err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())

	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.Index != 1 || first.Label != "golang" || first.WordID != "w1" {
		t.Errorf("unexpected first label: %+v", first)
	}
	if first.X != -30 || first.Y != -10 || first.Width != 60 || first.Height != 20 {
		t.Errorf("wrong geometry: got (%d,%d) %dx%d", first.X, first.Y, first.Width, first.Height)
	}
	if labels[3].Index != 4 {
		t.Errorf("expected index 4 for last label, got %d", labels[3].Index)
	}
}

func TestLabelInfo_JSONFields(t *testing.T) {
	data, err := json.Marshal(LabelInfo{Index: 2, WordID: "abc", Label: "go", X: -1, Y: 3, Width: 10, Height: 5})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"index", "id", "label", "x", "y", "width", "height"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing JSON field %q in %s", key, data)
		}
	}
}
