package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
)

const excelSheet = "Checklists"

// ExportExcel renders checklist records as a styled XLSX workbook with the
// same columns as the CSV export.
func ExportExcel(records []models.ChecklistRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range ExportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(excelSheet, cell, col)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(ExportColumns), 1)
	f.SetCellStyle(excelSheet, "A1", lastHeader, headerStyle)

	for rowIdx, rec := range records {
		row := []interface{}{
			rec.ID,
			exportDate(rec.Date),
			rec.VehiclePlate,
			rec.DriverName,
			string(rec.Status),
			rec.Odometer,
			rec.Unit,
			rec.Sector,
		}
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(excelSheet, cell, value)
		}
	}

	f.SetColWidth(excelSheet, "A", "A", 28)
	f.SetColWidth(excelSheet, "B", "H", 18)
	return f, nil
}
