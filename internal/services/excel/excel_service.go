package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Anieto86/LabLink/internal/models"

	"github.com/xuri/excelize/v2"
)

// Service builds Excel workbooks for inventory exports
type Service struct{}

func NewExcelService() *Service {
	return &Service{}
}

var equipmentHeaders = []string{"ID", "Name", "Type", "Laboratory ID", "Status", "Created At"}

// ExportEquipment renders the equipment inventory as an .xlsx workbook
func (s *Service) ExportEquipment(items []models.Equipment) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Equipment"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9E1F2"},
			Pattern: 1,
		},
	})

	for col, header := range equipmentHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, item := range items {
		values := []interface{}{
			item.ID,
			item.Name,
			item.Type,
			item.LaboratoryID,
			string(item.Status),
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	for col := range equipmentHeaders {
		name, _ := excelize.ColumnNumberToName(col + 1)
		f.SetColWidth(sheet, name, name, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// ExportFilename returns a timestamped attachment filename
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("equipment_inventory_%d.xlsx", now.Unix())
}
