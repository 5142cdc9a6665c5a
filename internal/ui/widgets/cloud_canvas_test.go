package widgets

import (
	"strings"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
)

func TestScale(t *testing.T) {
	box := model.Rect(-48, -23, 96, 46) // 100 x 50 with margin
	if got := Scale(box, 200, 200); got != 2 {
		t.Errorf("Scale() = %v, want 2 (width bound)", got)
	}
	if got := Scale(box, 1000, 100); got != 2 {
		t.Errorf("Scale() = %v, want 2 (height bound)", got)
	}
}

func TestSummary(t *testing.T) {
	result := model.LayoutResult{
		Placements: []model.Placement{
			{Word: model.Word{Label: "a"}, Rect: model.Rect(-5, -5, 10, 10)},
			{Word: model.Word{Label: "b"}, Rect: model.Rect(5, -5, 10, 10)},
		},
		Skipped: []model.Word{{Label: "flat"}},
	}
	s := Summary(result)
	for _, want := range []string{"2 words", "20 × 10", "circularity 0.50", "1 skipped"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() = %q, missing %q", s, want)
		}
	}
}
