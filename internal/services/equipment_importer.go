package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gestion-medios/internal/dto"
	"gestion-medios/internal/entities"
	"gestion-medios/internal/repositories"
	"gestion-medios/pkg/constants"
	apperrors "gestion-medios/pkg/errors"
)

// EquipmentImportService implementa las tres etapas de la importación:
// leer el archivo, mapear y validar filas, e insertar las válidas saltando
// los números de inventario ya registrados.
type EquipmentImportService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentImportService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) *EquipmentImportService {
	return &EquipmentImportService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

// ParseFile lee la primera hoja del Excel como matriz de cadenas. La fila 0
// son los encabezados (solo informativos: el mapeo trabaja por índice).
func (s *EquipmentImportService) ParseFile(filePath string) (*dto.UploadExcelResponse, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		s.logger.Warn("ParseFile: archivo ilegible", zap.String("path", filePath), zap.Error(err))
		return nil, apperrors.ErrUnparseableFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrUnparseableFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.ErrUnparseableFile
	}
	if len(rows) < 2 {
		return nil, apperrors.ErrEmptyImportFile
	}

	return &dto.UploadExcelResponse{
		Success:  true,
		Columns:  rows[0],
		DataRows: rows[1:],
	}, nil
}

// importRow es una fila ya proyectada y validada, con su número de fila en
// el archivo original.
type importRow struct {
	fileRow int
	record  entities.Equipment
}

// cell devuelve la celda mapeada para el campo, vacía si el índice queda
// fuera del ancho de la fila.
func cell(row []string, mapping dto.ImportMapping, field string) string {
	idx, ok := mapping[field]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// mapAndValidate es pura: proyecta cada fila según el mapeo y la parte en
// válidas e inválidas con sus motivos. No comprueba duplicados; eso se
// difiere a la inserción.
func mapAndValidate(mapping dto.ImportMapping, data [][]string) (valid []importRow, invalid []dto.RowErrorDTO) {
	for i, row := range data {
		// +2: base 1 más la fila de encabezados del archivo original.
		fileRow := i + 2
		var rowErrors []string

		inventoryNumber := cell(row, mapping, dto.ImportFieldInventoryNumber)
		name := cell(row, mapping, dto.ImportFieldName)
		equipType := cell(row, mapping, dto.ImportFieldType)
		status := cell(row, mapping, dto.ImportFieldStatus)
		stateRaw := cell(row, mapping, dto.ImportFieldStateID)

		if inventoryNumber == "" {
			rowErrors = append(rowErrors, "Número de inventario requerido")
		}
		if name == "" {
			rowErrors = append(rowErrors, "Nombre requerido")
		}

		switch {
		case equipType == "":
			rowErrors = append(rowErrors, "Tipo de equipo requerido")
		case !constants.IsValidEquipmentType(equipType):
			rowErrors = append(rowErrors, "Tipo de equipo inválido")
		}

		switch {
		case status == "":
			rowErrors = append(rowErrors, "Estado requerido")
		case !constants.IsValidEquipmentStatus(status):
			rowErrors = append(rowErrors, "Estado inválido")
		}

		stateID := 0
		if stateRaw == "" {
			rowErrors = append(rowErrors, "Región requerida")
		} else if parsed, err := strconv.Atoi(stateRaw); err != nil || parsed <= 0 {
			rowErrors = append(rowErrors, "Región inválida")
		} else {
			stateID = parsed
		}

		if len(rowErrors) > 0 {
			invalid = append(invalid, dto.RowErrorDTO{Row: fileRow, Errors: rowErrors})
			continue
		}

		valid = append(valid, importRow{
			fileRow: fileRow,
			record: entities.Equipment{
				InventoryNumber: inventoryNumber,
				Name:            name,
				Type:            strings.ToLower(equipType),
				Brand:           nullFromCell(cell(row, mapping, dto.ImportFieldBrand)),
				Model:           nullFromCell(cell(row, mapping, dto.ImportFieldModel)),
				Specifications:  nullFromCell(cell(row, mapping, dto.ImportFieldSpecifications)),
				Status:          strings.ToLower(status),
				StateID:         stateID,
				AssignedTo:      nullFromCell(cell(row, mapping, dto.ImportFieldAssignedTo)),
			},
		})
	}
	return valid, invalid
}

func nullFromCell(value string) null.String {
	if value == "" {
		return null.String{}
	}
	return null.StringFrom(value)
}

// ValidateImport ejecuta el mapeo y la validación sin efectos: sirve como
// vista previa antes de insertar.
func (s *EquipmentImportService) ValidateImport(mapping dto.ImportMapping, data [][]string) *dto.ValidationReportDTO {
	valid, invalid := mapAndValidate(mapping, data)

	details := invalid
	if details == nil {
		details = []dto.RowErrorDTO{}
	}

	return &dto.ValidationReportDTO{
		Success:      true,
		Valid:        len(valid),
		Errors:       len(invalid),
		Total:        len(data),
		ErrorDetails: details,
	}
}

// ImportEquipments inserta las filas válidas en orden, una a una. Cada fila
// es independiente: los duplicados se saltan y los fallos de inserción se
// cuentan sin abortar el lote. No hay rollback parcial; repetir la
// importación es seguro porque los ya insertados cuentan como duplicados.
func (s *EquipmentImportService) ImportEquipments(ctx context.Context, mapping dto.ImportMapping, data [][]string) (*dto.ImportReportDTO, error) {
	valid, invalid := mapAndValidate(mapping, data)

	report := &dto.ImportReportDTO{
		Success: true,
		Errors:  len(invalid),
		Total:   len(data),
	}

	for _, row := range valid {
		// Punto de cancelación cooperativo entre filas: acota la latencia
		// de archivos grandes sin coordinar escritores.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		exists, err := s.equipmentRepository.ExistsByInventoryNumber(ctx, row.record.InventoryNumber, 0)
		if err != nil {
			s.logger.Warn("ImportEquipments: fallo consultando duplicado",
				zap.Int("file_row", row.fileRow),
				zap.String("inventory_number", row.record.InventoryNumber),
				zap.Error(err),
			)
			report.Errors++
			continue
		}
		if exists {
			report.Duplicates++
			continue
		}

		record := row.record
		if err := s.equipmentRepository.CreateEquipment(ctx, &record); err != nil {
			s.logger.Warn("ImportEquipments: fallo insertando fila",
				zap.Int("file_row", row.fileRow),
				zap.String("inventory_number", record.InventoryNumber),
				zap.Error(err),
			)
			report.Errors++
			continue
		}
		report.Imported++
	}

	s.logger.Info("Importación finalizada",
		zap.Int("imported", report.Imported),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("errors", report.Errors),
		zap.Int("total", report.Total),
	)
	return report, nil
}
