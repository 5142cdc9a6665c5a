package export

import (
	"fmt"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by ExportXLSX.
const (
	SheetPlacements = "Placements"
	SheetSummary    = "Summary"
)

var placementHeaders = []interface{}{"Index", "Label", "ID", "X", "Y", "Width", "Height"}

// ExportXLSX writes the placements and a metrics summary to an Excel workbook.
// The Placements sheet uses the same Label/Width/Height headers the importer
// recognizes, so the workbook can be re-imported as a word list.
func ExportXLSX(path string, result model.LayoutResult) error {
	f, err := buildWorkbook(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func buildWorkbook(result model.LayoutResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetPlacements); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	if err := writePlacementsSheet(f, result); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, result); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writePlacementsSheet(f *excelize.File, result model.LayoutResult) error {
	if err := f.SetSheetRow(SheetPlacements, "A1", &placementHeaders); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetCellStyle(SheetPlacements, "A1", "G1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(SheetPlacements, "B", "C", 20); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	for i, p := range result.Placements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			i + 1,
			p.Word.Label,
			p.Word.ID,
			p.Rect.Left(),
			p.Rect.Top(),
			p.Rect.Size.Width,
			p.Rect.Size.Height,
		}
		if err := f.SetSheetRow(SheetPlacements, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result model.LayoutResult) error {
	box := result.BoundingBox()
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Center X", result.Center.X},
		{"Center Y", result.Center.Y},
		{"Words Placed", len(result.Placements)},
		{"Words Skipped", len(result.Skipped)},
		{"Bounding Box X", box.Left()},
		{"Bounding Box Y", box.Top()},
		{"Bounding Box Width", box.Size.Width},
		{"Bounding Box Height", box.Size.Height},
		{"Used Area", result.UsedArea()},
		{"Circularity", result.Circularity()},
		{"Fill Ratio", result.FillRatio()},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SheetSummary, "A", "A", 22)
}
