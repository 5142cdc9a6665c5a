package export

import (
	"fmt"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/yofu/dxf"
)

// DXF layer names used by ExportDXF.
const (
	dxfLayerWords  = "words"
	dxfLayerLabels = "labels"
)

// ExportDXF writes every placed rectangle as a closed LWPOLYLINE on the
// "words" layer and its label as TEXT on the "labels" layer. DXF's Y axis
// points up, so layout Y coordinates are negated.
func ExportDXF(path string, result model.LayoutResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(dxfLayerLabels, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("adding layer %s: %w", dxfLayerLabels, err)
	}
	if _, err := d.AddLayer(dxfLayerWords, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding layer %s: %w", dxfLayerWords, err)
	}

	for _, p := range result.Placements {
		if _, err := d.LwPolyline(true, rectVertices(p.Rect)...); err != nil {
			return fmt.Errorf("writing %q: %w", p.Word.Label, err)
		}
	}

	if err := d.ChangeLayer(dxfLayerLabels); err != nil {
		return err
	}
	for _, p := range result.Placements {
		if p.Word.Label == "" {
			continue
		}
		r := p.Rect
		height := float64(min(r.Size.Height, r.Size.Width)) / 2
		if _, err := d.Text(p.Word.Label, float64(r.Left())+1, -float64(r.Bottom())+1, 0, height); err != nil {
			return fmt.Errorf("writing label %q: %w", p.Word.Label, err)
		}
	}

	return d.SaveAs(path)
}

// rectVertices returns the four corners of r in DXF space (Y up),
// counter-clockwise from the lower-left corner.
func rectVertices(r model.Rectangle) [][]float64 {
	l, t := float64(r.Left()), -float64(r.Top())
	rt, b := float64(r.Right()), -float64(r.Bottom())
	return [][]float64{
		{l, b},
		{rt, b},
		{rt, t},
		{l, t},
	}
}
