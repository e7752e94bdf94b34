package excel_test

import (
	"testing"
	"time"

	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/services/excel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportEquipment(t *testing.T) {
	svc := excel.NewExcelService()

	items := []models.Equipment{
		{
			ID:           1,
			Name:         "Centrifuge",
			Type:         "separator",
			LaboratoryID: 2,
			Status:       models.EquipmentAvailable,
			CreatedAt:    time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           2,
			Name:         "Spectrometer",
			Type:         "analyzer",
			LaboratoryID: 2,
			Status:       models.EquipmentMaintenance,
			CreatedAt:    time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		},
	}

	buf, err := svc.ExportEquipment(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Equipment")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Name", "Type", "Laboratory ID", "Status", "Created At"}, rows[0])
	assert.Equal(t, "Centrifuge", rows[1][1])
	assert.Equal(t, "maintenance", rows[2][4])
}

func TestExportEquipmentEmpty(t *testing.T) {
	svc := excel.NewExcelService()

	buf, err := svc.ExportEquipment(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Equipment")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
