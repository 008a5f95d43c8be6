package utils

import (
	"bytes"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	apperrors "gestion-medios/pkg/errors"
)

// Firma ZIP: un .xlsx es un contenedor ZIP.
var zipSignature = []byte{0x50, 0x4B, 0x03, 0x04}

// ValidateSpreadsheetFile comprueba tamaño, extensión y cabecera mágica del
// archivo subido antes de almacenarlo.
func ValidateSpreadsheetFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, maxSizeMB int64) error {
	if maxSizeMB > 0 && fileHeader.Size > maxSizeMB*1024*1024 {
		return apperrors.NewInvalidInputError("el archivo supera el límite de %d MB", maxSizeMB)
	}

	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".xlsx" {
		return apperrors.NewInvalidInputError("el archivo debe ser un Excel (.xlsx)")
	}

	header := make([]byte, 4)
	if _, err := io.ReadFull(file, header); err != nil {
		return apperrors.ErrUnparseableFile
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return apperrors.ErrUnparseableFile
	}

	if !bytes.Equal(header, zipSignature) {
		return apperrors.NewInvalidInputError("el archivo debe ser un Excel (.xlsx)")
	}
	return nil
}
