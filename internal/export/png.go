package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/piwi3910/tagcloud/internal/model"
)

// RenderOptions controls how a layout is drawn as a raster image.
type RenderOptions struct {
	Margin int     // pixels added on every side of the bounding box
	Scale  float64 // output pixels per layout unit
	Fill   bool    // fill rectangles with the palette colour as well as outlining them
	Labels bool    // draw word labels inside rectangles that are large enough
}

// DefaultRenderOptions reproduces the classic look: gold outlines on a
// transparent canvas with a two pixel margin.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Margin: 2, Scale: 1}
}

// RenderOptionsFromConfig builds render options from the user's preferences.
func RenderOptionsFromConfig(cfg model.AppConfig) RenderOptions {
	opts := DefaultRenderOptions()
	if cfg.RenderMargin >= 0 {
		opts.Margin = cfg.RenderMargin
	}
	if cfg.RenderScale > 0 {
		opts.Scale = cfg.RenderScale
	}
	opts.Fill = cfg.RenderFill
	return opts
}

// MaxRenderPixels caps the canvas RenderPNG will allocate.
const MaxRenderPixels = 1 << 25

// ErrImageTooLarge is returned when a rendering would exceed MaxRenderPixels.
var ErrImageTooLarge = errors.New("rendered image exceeds the pixel budget")

// outlineColor is the stroke used for every rectangle (gold).
var outlineColor = partColor{R: 255, G: 215, B: 0}

// RenderPNG draws the layout into an image whose size is the bounding box
// plus the margin on every side, both multiplied by the scale. The
// bounding box's top-left corner maps to (margin, margin).
func RenderPNG(result model.LayoutResult, opts RenderOptions) (image.Image, error) {
	if len(result.Placements) == 0 {
		return nil, fmt.Errorf("no placements to render")
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}

	box := result.BoundingBox()
	wf := math.Ceil((float64(box.Size.Width) + 2*float64(opts.Margin)) * opts.Scale)
	hf := math.Ceil((float64(box.Size.Height) + 2*float64(opts.Margin)) * opts.Scale)
	if wf*hf > MaxRenderPixels {
		return nil, fmt.Errorf("%w: %.0fx%.0f", ErrImageTooLarge, wf, hf)
	}
	w, h := int(wf), int(hf)

	dc := gg.NewContext(w, h)
	dc.Scale(opts.Scale, opts.Scale)
	dc.Translate(float64(opts.Margin-box.Left()), float64(opts.Margin-box.Top()))

	dc.SetLineWidth(1)
	for i, p := range result.Placements {
		r := p.Rect
		x, y := float64(r.Left()), float64(r.Top())
		rw, rh := float64(r.Size.Width), float64(r.Size.Height)

		if opts.Fill {
			col := partColors[i%len(partColors)]
			dc.SetRGBA255(col.R, col.G, col.B, 160)
			dc.DrawRectangle(x, y, rw, rh)
			dc.Fill()
		}

		dc.SetRGB255(outlineColor.R, outlineColor.G, outlineColor.B)
		dc.DrawRectangle(x, y, rw, rh)
		dc.Stroke()

		if opts.Labels && p.Word.Label != "" {
			tw, th := dc.MeasureString(p.Word.Label)
			if tw < rw-2 && th < rh-2 {
				dc.SetRGB(0, 0, 0)
				dc.DrawStringAnchored(p.Word.Label, x+rw/2, y+rh/2, 0.5, 0.5)
			}
		}
	}

	return dc.Image(), nil
}

// WritePNG renders the layout and encodes it as PNG to w.
func WritePNG(w io.Writer, result model.LayoutResult, opts RenderOptions) error {
	img, err := RenderPNG(result, opts)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	return dc.EncodePNG(w)
}

// ExportPNG renders the layout to a PNG file at path.
func ExportPNG(path string, result model.LayoutResult, opts RenderOptions) error {
	img, err := RenderPNG(result, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
