package utils

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "gestion-medios/pkg/errors"
)

func xlsxHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestValidateSpreadsheetFileAcceptsZipMagic(t *testing.T) {
	content := bytes.NewReader([]byte{0x50, 0x4B, 0x03, 0x04, 0x01, 0x02})
	err := ValidateSpreadsheetFile(xlsxHeader("inventario.xlsx", 6), content, 10)
	assert.NoError(t, err)

	// El lector queda al inicio para la escritura posterior.
	pos, err := content.Seek(0, io.SeekCurrent)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestValidateSpreadsheetFileRejectsWrongExtension(t *testing.T) {
	content := bytes.NewReader([]byte{0x50, 0x4B, 0x03, 0x04})
	err := ValidateSpreadsheetFile(xlsxHeader("inventario.csv", 4), content, 10)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestValidateSpreadsheetFileRejectsWrongMagic(t *testing.T) {
	content := bytes.NewReader([]byte("PK no es"))
	err := ValidateSpreadsheetFile(xlsxHeader("inventario.xlsx", 8), content, 10)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestValidateSpreadsheetFileRejectsOversize(t *testing.T) {
	content := bytes.NewReader([]byte{0x50, 0x4B, 0x03, 0x04})
	err := ValidateSpreadsheetFile(xlsxHeader("inventario.xlsx", 11*1024*1024), content, 10)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestValidateSpreadsheetFileRejectsTruncated(t *testing.T) {
	content := bytes.NewReader([]byte{0x50, 0x4B})
	err := ValidateSpreadsheetFile(xlsxHeader("inventario.xlsx", 2), content, 10)
	assert.ErrorIs(t, err, apperrors.ErrUnparseableFile)
}
