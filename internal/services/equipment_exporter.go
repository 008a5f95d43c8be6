package services

import (
	"time"

	"github.com/xuri/excelize/v2"

	"gestion-medios/internal/entities"
)

var exportHeaders = []interface{}{
	"Número de Inventario", "Nombre", "Tipo", "Marca", "Modelo",
	"Especificaciones", "Estado", "Región", "Asignado a", "Ubicación",
	"Creado", "Actualizado",
}

const exportSheet = "Equipos"

// BuildEquipmentWorkbook arma el libro de exportación con el conjunto
// filtrado completo.
func BuildEquipmentWorkbook(list []entities.Equipment) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		f.SetCellStyle(exportSheet, "A1", "L1", style)
	}

	dateFmt := "02/01/2006 15:04"
	for i, item := range list {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			item.InventoryNumber,
			item.Name,
			item.Type,
			item.Brand.String,
			item.Model.String,
			item.Specifications.String,
			item.Status,
			item.StateID,
			item.AssignedTo.String,
			item.LocationDetails.String,
			item.CreatedAt.Format(dateFmt),
			item.UpdatedAt.Format(dateFmt),
		}
		if err := f.SetSheetRow(exportSheet, cellName, &row); err != nil {
			return nil, err
		}
	}

	f.SetColWidth(exportSheet, "A", "B", 25)
	f.SetColWidth(exportSheet, "F", "F", 35)
	f.SetColWidth(exportSheet, "I", "J", 25)
	return f, nil
}

// BuildImportTemplate genera la plantilla vacía con los encabezados en el
// orden que espera el asistente de importación.
func BuildImportTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	headers := []interface{}{
		"Número de Inventario", "Nombre", "Tipo", "Marca", "Modelo",
		"Especificaciones", "Estado", "Región", "Asignado a",
	}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		f.SetCellStyle(exportSheet, "A1", "I1", style)
	}
	f.SetColWidth(exportSheet, "A", "I", 22)
	return f, nil
}

// ExportFileName arma el nombre del adjunto con fecha, p.ej.
// equipos_2026-08-31.xlsx.
func ExportFileName(now time.Time) string {
	return "equipos_" + now.Format("2006-01-02") + ".xlsx"
}
