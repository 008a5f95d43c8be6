package dto

// Claves lógicas admitidas en el mapeo de columnas de importación.
const (
	ImportFieldInventoryNumber = "inventory_number"
	ImportFieldName            = "name"
	ImportFieldType            = "type"
	ImportFieldBrand           = "brand"
	ImportFieldModel           = "model"
	ImportFieldSpecifications  = "specifications"
	ImportFieldStatus          = "status"
	ImportFieldStateID         = "state_id"
	ImportFieldAssignedTo      = "assigned_to"
)

// ImportMapping asocia cada campo lógico con el índice (base cero) de su
// columna en la hoja subida. El texto de los encabezados no se interpreta.
type ImportMapping map[string]int

// UploadExcelResponse es la salida de la etapa 1: la matriz cruda de la hoja.
type UploadExcelResponse struct {
	Success  bool       `json:"success"`
	Columns  []string   `json:"columns"`
	DataRows [][]string `json:"dataRows"`
}

type ValidateImportDTO struct {
	Mapping ImportMapping `json:"mapping" validate:"required"`
	Data    [][]string    `json:"data" validate:"required"`
}

// ImportEquipmentDTO acepta además el resumen de validación que reenvía el
// frontend; es informativo, la inserción vuelve a validar por su cuenta.
type ImportEquipmentDTO struct {
	Mapping    ImportMapping `json:"mapping" validate:"required"`
	Data       [][]string    `json:"data" validate:"required"`
	Validation interface{}   `json:"validation,omitempty"`
}

// RowErrorDTO señala una fila inválida con su número de fila en el archivo
// original (base 1, contando el encabezado).
type RowErrorDTO struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

type ValidationReportDTO struct {
	Success      bool          `json:"success"`
	Valid        int           `json:"valid"`
	Errors       int           `json:"errors"`
	Total        int           `json:"total"`
	ErrorDetails []RowErrorDTO `json:"errorDetails"`
}

type ImportReportDTO struct {
	Success    bool `json:"success"`
	Imported   int  `json:"imported"`
	Duplicates int  `json:"duplicates"`
	Errors     int  `json:"errors"`
	Total      int  `json:"total"`
}
