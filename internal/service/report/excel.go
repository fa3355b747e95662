package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fireapi/internal/service/classify"
	"fireapi/internal/service/estimate"
)

var excelHeaders = []string{
	"Phase", "Category", "Description", "Hours", "Rate",
	"Quantity", "Unit", "Unit Cost", "Waste Factor", "Cost",
}

// Excel renders an estimate into a single-sheet xlsx workbook: one row per
// line item followed by the totals block.
func Excel(params classify.Params, est *estimate.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Estimate"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, name := range excelHeaders {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(excelHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, item := range est.LineItems {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), item.Phase)
		f.SetCellValue(sheet, cellName(2, rowNum), item.Category)
		f.SetCellValue(sheet, cellName(3, rowNum), item.Description)
		if item.Category == estimate.CategoryLabor {
			f.SetCellValue(sheet, cellName(4, rowNum), item.Hours)
			f.SetCellValue(sheet, cellName(5, rowNum), item.Rate)
		} else {
			f.SetCellValue(sheet, cellName(6, rowNum), item.Quantity)
			f.SetCellValue(sheet, cellName(7, rowNum), item.Unit)
			f.SetCellValue(sheet, cellName(8, rowNum), item.UnitCost)
			f.SetCellValue(sheet, cellName(9, rowNum), item.WasteFactor)
		}
		f.SetCellValue(sheet, cellName(10, rowNum), item.Cost)
	}

	t := est.Totals
	row := len(est.LineItems) + 3
	summary := []struct {
		label string
		value interface{}
	}{
		{"Parameters", fmt.Sprintf("%s / %s / %s", params.Size, params.Scope, params.Quality)},
		{"Base Labor Hours", t.RawHours},
		{"Complexity Multiplier", t.Complexity},
		{"Adjusted Labor Hours", t.AdjustedHours},
		{"Labor Cost", t.LaborCost},
		{"Base Material Cost", t.RawMaterialCost},
		{"Quality Multiplier", t.QualityMultiplier},
		{"Adjusted Materials", t.MaterialCost},
		{"TOTAL PROJECT COST", t.TotalCost},
	}
	for i, line := range summary {
		f.SetCellValue(sheet, cellName(1, row+i), line.label)
		f.SetCellValue(sheet, cellName(2, row+i), line.value)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
