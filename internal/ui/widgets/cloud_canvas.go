package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tagcloud/internal/model"
)

// wordColors cycle per placement.
var wordColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// canvasMargin is the padding around the cloud in layout units.
const canvasMargin = 2

// CloudCanvas renders a laid out cloud scaled to fit a maximum size.
type CloudCanvas struct {
	widget.BaseWidget
	result     model.LayoutResult
	maxWidth   float32
	maxHeight  float32
	showLabels bool
}

func NewCloudCanvas(result model.LayoutResult, maxW, maxH float32) *CloudCanvas {
	cc := &CloudCanvas{
		result:     result,
		maxWidth:   maxW,
		maxHeight:  maxH,
		showLabels: true,
	}
	cc.ExtendBaseWidget(cc)
	return cc
}

// SetShowLabels toggles word labels and redraws.
func (cc *CloudCanvas) SetShowLabels(show bool) {
	cc.showLabels = show
	cc.Refresh()
}

func (cc *CloudCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newCloudCanvasRenderer(cc)
}

// Scale returns the factor that fits the cloud's bounding box plus margin
// into maxW x maxH.
func Scale(box model.Rectangle, maxW, maxH float32) float32 {
	w := float32(box.Size.Width + 2*canvasMargin)
	h := float32(box.Size.Height + 2*canvasMargin)
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	return scale
}

type cloudCanvasRenderer struct {
	cc      *CloudCanvas
	objects []fyne.CanvasObject
}

func newCloudCanvasRenderer(cc *CloudCanvas) *cloudCanvasRenderer {
	r := &cloudCanvasRenderer{cc: cc}
	r.rebuild()
	return r
}

func (r *cloudCanvasRenderer) rebuild() {
	r.objects = nil

	result := r.cc.result
	if len(result.Placements) == 0 {
		return
	}

	box := result.BoundingBox()
	scale := Scale(box, r.cc.maxWidth, r.cc.maxHeight)
	canvasW := float32(box.Size.Width+2*canvasMargin) * scale
	canvasH := float32(box.Size.Height+2*canvasMargin) * scale

	// translates a layout coordinate to canvas space
	toCanvas := func(x, y int) fyne.Position {
		return fyne.NewPos(
			float32(x-box.Left()+canvasMargin)*scale,
			float32(y-box.Top()+canvasMargin)*scale,
		)
	}

	bg := canvas.NewRectangle(color.NRGBA{R: 250, G: 250, B: 245, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	for i, p := range result.Placements {
		col := wordColors[i%len(wordColors)]
		pos := toCanvas(p.Rect.Left(), p.Rect.Top())
		pw := float32(p.Rect.Size.Width) * scale
		ph := float32(p.Rect.Size.Height) * scale

		wordRect := canvas.NewRectangle(col)
		wordRect.Resize(fyne.NewSize(pw, ph))
		wordRect.Move(pos)
		r.objects = append(r.objects, wordRect)

		wordBorder := canvas.NewRectangle(color.Transparent)
		wordBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		wordBorder.StrokeWidth = 1
		wordBorder.Resize(fyne.NewSize(pw, ph))
		wordBorder.Move(pos)
		r.objects = append(r.objects, wordBorder)

		// Label (only if big enough)
		if r.cc.showLabels && pw > 30 && ph > 14 {
			label := canvas.NewText(p.Word.Label, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(pos.X+3, pos.Y+2))
			r.objects = append(r.objects, label)
		}
	}

	// Centre marker
	c := toCanvas(result.Center.X, result.Center.Y)
	h := canvas.NewLine(color.NRGBA{R: 200, G: 0, B: 0, A: 255})
	h.Position1 = fyne.NewPos(c.X-5, c.Y)
	h.Position2 = fyne.NewPos(c.X+5, c.Y)
	v := canvas.NewLine(color.NRGBA{R: 200, G: 0, B: 0, A: 255})
	v.Position1 = fyne.NewPos(c.X, c.Y-5)
	v.Position2 = fyne.NewPos(c.X, c.Y+5)
	r.objects = append(r.objects, h, v)
}

func (r *cloudCanvasRenderer) Layout(size fyne.Size)        {}
func (r *cloudCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *cloudCanvasRenderer) Destroy()                     {}
func (r *cloudCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *cloudCanvasRenderer) MinSize() fyne.Size {
	result := r.cc.result
	if len(result.Placements) == 0 {
		return fyne.NewSize(0, 0)
	}
	box := result.BoundingBox()
	scale := Scale(box, r.cc.maxWidth, r.cc.maxHeight)
	return fyne.NewSize(float32(box.Size.Width+2*canvasMargin)*scale, float32(box.Size.Height+2*canvasMargin)*scale)
}

// Summary describes a result in one line.
func Summary(result model.LayoutResult) string {
	box := result.BoundingBox()
	s := fmt.Sprintf("%d words, bounding box %d × %d, circularity %.2f, fill %.1f%%",
		len(result.Placements), box.Size.Width, box.Size.Height,
		result.Circularity(), result.FillRatio()*100)
	if len(result.Skipped) > 0 {
		s += fmt.Sprintf(", %d skipped", len(result.Skipped))
	}
	return s
}

// RenderCloudResult creates the cloud view with its summary line.
func RenderCloudResult(result *model.LayoutResult) fyne.CanvasObject {
	if result == nil || len(result.Placements) == 0 {
		return widget.NewLabel("No cloud yet. Add or import words, then click Lay Out.")
	}

	header := widget.NewLabel(Summary(*result))
	header.TextStyle = fyne.TextStyle{Bold: true}

	items := []fyne.CanvasObject{header, NewCloudCanvas(*result, 900, 600)}

	if len(result.Skipped) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d words have a non-positive size and were not placed.",
			len(result.Skipped),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	return container.NewScroll(container.NewVBox(items...))
}
