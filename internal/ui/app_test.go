package ui

import (
	"math"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
)

func TestParseWordSize(t *testing.T) {
	size, err := parseWordSize(" 60", "20 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != (model.Size{Width: 60, Height: 20}) {
		t.Errorf("got %v", size)
	}

	for _, tc := range [][2]string{{"0", "10"}, {"10", "-1"}, {"ten", "10"}, {"", ""}} {
		if _, err := parseWordSize(tc[0], tc[1]); err == nil {
			t.Errorf("parseWordSize(%q, %q) should fail", tc[0], tc[1])
		}
	}
}

func TestAngleDivisions(t *testing.T) {
	if got := angleDivisions(math.Pi / 120); got != 120 {
		t.Errorf("angleDivisions(pi/120) = %d", got)
	}
	if got := angleDivisions(math.Pi / 7); got != 7 {
		t.Errorf("angleDivisions(pi/7) = %d", got)
	}
	if got := angleDivisions(0); got != model.DefaultAngleDivisions {
		t.Errorf("angleDivisions(0) = %d", got)
	}
}
