package export

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tagcloud/internal/model"
)

func TestRenderPNG_SizeIsBoundingBoxPlusMargin(t *testing.T) {
	result := buildTestResult()
	box := result.BoundingBox()

	img, err := RenderPNG(result, DefaultRenderOptions())
	if err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != box.Size.Width+4 || b.Dy() != box.Size.Height+4 {
		t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), box.Size.Width+4, box.Size.Height+4)
	}
}

func TestRenderPNG_Scale(t *testing.T) {
	result := model.LayoutResult{Placements: []model.Placement{{Rect: model.Rect(-5, -5, 10, 10)}}}

	img, err := RenderPNG(result, RenderOptions{Margin: 0, Scale: 3, Fill: true, Labels: true})
	if err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Errorf("image is %dx%d, want 30x30", b.Dx(), b.Dy())
	}
}

func TestRenderPNG_StrokesOutline(t *testing.T) {
	result := model.LayoutResult{Placements: []model.Placement{{Rect: model.Rect(0, 0, 20, 20)}}}

	img, err := RenderPNG(result, RenderOptions{Margin: 5, Scale: 1})
	if err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}

	// Outside the rectangle stays transparent, the left edge is drawn.
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("margin pixel should be transparent, alpha=%d", a)
	}
	if _, _, _, a := img.At(5, 15).RGBA(); a == 0 {
		t.Error("expected outline pixel on the left edge")
	}
}

func TestRenderPNG_Empty(t *testing.T) {
	if _, err := RenderPNG(model.LayoutResult{}, DefaultRenderOptions()); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestWritePNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, buildTestResult(), DefaultRenderOptions()); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
}

func TestExportPNG_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.png")
	if err := ExportPNG(path, buildTestResult(), DefaultRenderOptions()); err != nil {
		t.Fatalf("ExportPNG returned error: %v", err)
	}
	if fileSize(t, path) == 0 {
		t.Fatal("PNG file is empty")
	}
}

func TestRenderOptionsFromConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.RenderMargin = 10
	cfg.RenderScale = 2
	cfg.RenderFill = true

	opts := RenderOptionsFromConfig(cfg)
	if opts.Margin != 10 || opts.Scale != 2 || !opts.Fill {
		t.Errorf("unexpected options: %+v", opts)
	}

	cfg.RenderScale = 0
	if got := RenderOptionsFromConfig(cfg).Scale; got != 1 {
		t.Errorf("non-positive scale should fall back to 1, got %v", got)
	}
}

func TestRenderPNG_RejectsOversizedCanvas(t *testing.T) {
	big := model.LayoutResult{Placements: []model.Placement{
		{Word: model.Word{Label: "huge"}, Rect: model.Rect(-5000, -5000, 10000, 10000)},
	}}
	if _, err := RenderPNG(big, DefaultRenderOptions()); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}

	// A small layout blown up by the scale is rejected as well.
	if _, err := RenderPNG(buildTestResult(), RenderOptions{Margin: 2, Scale: 1000}); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge for large scale, got %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, big, DefaultRenderOptions()); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("WritePNG: expected ErrImageTooLarge, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for a rejected image")
	}
}
