// Package export provides functionality for exporting cloud layouts
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/tagcloud/internal/model"
)

// partColor represents an RGB color for a placed word.
type partColor struct {
	R, G, B int
}

// partColors mirrors the color scheme used in the UI cloud canvas widget.
var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 10.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	rowHeight    = 5.0
)

// ExportPDF generates a PDF document for a cloud layout: a drawing of the
// cloud scaled to fit the page, followed by a summary page with quality
// metrics, the settings used and a table of every placement.
func ExportPDF(path string, result model.LayoutResult, settings model.LayoutSettings) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderCloudPage(pdf, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

// renderCloudPage draws the cloud on the current PDF page.
func renderCloudPage(pdf *fpdf.Fpdf, result model.LayoutResult) {
	box := result.BoundingBox()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Tag Cloud: %d words (%d x %d)", len(result.Placements), box.Size.Width, box.Size.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Center: %s | Used area: %d | Circularity: %.2f | Fill ratio: %.2f",
		result.Center, result.UsedArea(), result.Circularity(), result.FillRatio())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scale := math.Min(drawWidth/float64(box.Size.Width), drawHeight/float64(box.Size.Height))
	canvasW := float64(box.Size.Width) * scale
	canvasH := float64(box.Size.Height) * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Bounding box frame
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "D")

	toPage := func(p model.Point) (float64, float64) {
		return offsetX + float64(p.X-box.Left())*scale, offsetY + float64(p.Y-box.Top())*scale
	}

	for i, p := range result.Placements {
		col := partColors[i%len(partColors)]
		px, py := toPage(p.Rect.Location)
		pw := float64(p.Rect.Size.Width) * scale
		ph := float64(p.Rect.Size.Height) * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 8 && ph > 4 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			label := p.Word.Label
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-1 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	// Centre marker
	cx, cy := toPage(result.Center)
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(cx-2, cy, cx+2, cy)
	pdf.Line(cx, cy-2, cx, cy+2)

	drawDimensionAnnotations(pdf, box, offsetX, offsetY, canvasW, canvasH)
}

// drawDimensionAnnotations adds width and height labels outside the bounding box.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, box model.Rectangle, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d", box.Size.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d", box.Size.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the metrics, settings and placement table. The
// table continues on extra pages when it does not fit.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.LayoutResult, settings model.LayoutSettings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	box := result.BoundingBox()

	y = drawKeyValues(pdf, y, "Overall Statistics", []keyValue{
		{"Words Placed", fmt.Sprintf("%d", len(result.Placements))},
		{"Words Skipped", fmt.Sprintf("%d", len(result.Skipped))},
		{"Bounding Box", box.String()},
		{"Used Area", fmt.Sprintf("%d", result.UsedArea())},
		{"Circularity", fmt.Sprintf("%.3f", result.Circularity())},
		{"Fill Ratio", fmt.Sprintf("%.3f", result.FillRatio())},
	})

	maxRadius := "auto"
	if settings.MaxRadius > 0 {
		maxRadius = fmt.Sprintf("%d", settings.MaxRadius)
	}
	y = drawKeyValues(pdf, y+5, "Layout Settings", []keyValue{
		{"Center", settings.Center.String()},
		{"Angle Step", fmt.Sprintf("%.4f rad", settings.AngleStep)},
		{"Distance Step", fmt.Sprintf("%d", settings.DistanceStep)},
		{"Max Radius", maxRadius},
		{"Largest First", fmt.Sprintf("%t", settings.SortLargestFirst)},
	})

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Placements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 80, 40, 40, 40, 40}
	headers := []string{"#", "Word", "X", "Y", "Width", "Height"}
	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], rowHeight+1, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += rowHeight + 1
		pdf.SetFont("Helvetica", "", 9)
	}
	drawHeader()

	for i, p := range result.Placements {
		if y+rowHeight > pageHeight-marginBottom-5 {
			pdf.AddPage()
			y = marginTop
			drawHeader()
		}

		rowData := []string{
			fmt.Sprintf("%d", i+1),
			p.Word.Label,
			fmt.Sprintf("%d", p.Rect.Left()),
			fmt.Sprintf("%d", p.Rect.Top()),
			fmt.Sprintf("%d", p.Rect.Size.Width),
			fmt.Sprintf("%d", p.Rect.Size.Height),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by tagcloud - Circular Tag Cloud Layouter", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

type keyValue struct {
	label string
	value string
}

// drawKeyValues renders a titled block of label/value rows and returns the
// y position below it.
func drawKeyValues(pdf *fpdf.Fpdf, y float64, title string, items []keyValue) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}
	return y
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 20:
		return 8
	case minDim > 10:
		return 7
	default:
		return 5
	}
}
