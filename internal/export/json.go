package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/tagcloud/internal/model"
)

// cloudDocument is the JSON shape of an exported layout.
type cloudDocument struct {
	model.LayoutResult
	BoundingBox model.Rectangle `json:"bounding_box"`
	UsedArea    int             `json:"used_area"`
	Circularity float64         `json:"circularity"`
	FillRatio   float64         `json:"fill_ratio"`
}

// WriteJSON encodes the layout with its metrics as indented JSON.
func WriteJSON(w io.Writer, result model.LayoutResult) error {
	doc := cloudDocument{
		LayoutResult: result,
		BoundingBox:  result.BoundingBox(),
		UsedArea:     result.UsedArea(),
		Circularity:  result.Circularity(),
		FillRatio:    result.FillRatio(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportJSON writes the layout as JSON to path.
func ExportJSON(path string, result model.LayoutResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteJSON(f, result); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return f.Close()
}
