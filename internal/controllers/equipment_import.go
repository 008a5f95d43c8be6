package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gestion-medios/internal/dto"
	"gestion-medios/internal/services"
	apperrors "gestion-medios/pkg/errors"
	"gestion-medios/pkg/filestorage"
	"gestion-medios/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type EquipmentImportController struct {
	importService *services.EquipmentImportService
	fileStorage   filestorage.FileStorageInterface
	maxSizeMB     int64
	logger        *zap.Logger
}

func NewEquipmentImportController(
	importService *services.EquipmentImportService,
	fileStorage filestorage.FileStorageInterface,
	maxSizeMB int64,
	logger *zap.Logger,
) *EquipmentImportController {
	return &EquipmentImportController{
		importService: importService,
		fileStorage:   fileStorage,
		maxSizeMB:     maxSizeMB,
		logger:        logger,
	}
}

// UploadExcel es la etapa 1: recibe el archivo, lo deja en el almacenamiento
// temporal, devuelve la matriz cruda y elimina el temporal pase lo que pase.
func (c *EquipmentImportController) UploadExcel(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "No se recibió ningún archivo", err, nil), c.logger)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "No se pudo leer el archivo", err, nil), c.logger)
	}
	defer file.Close()

	if err := utils.ValidateSpreadsheetFile(fileHeader, file, c.maxSizeMB); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filePath, err := c.fileStorage.Save(file, fileHeader.Filename, "imports")
	if err != nil {
		c.logger.Error("UploadExcel: fallo guardando el archivo temporal", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer func() {
		if err := c.fileStorage.Delete(filePath); err != nil {
			c.logger.Warn("UploadExcel: no se pudo borrar el temporal", zap.String("path", filePath), zap.Error(err))
		}
	}()

	result, err := c.importService.ParseFile(filePath)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("UploadExcel: archivo procesado",
		zap.String("filename", fileHeader.Filename),
		zap.Int("rows", len(result.DataRows)),
	)
	return ctx.JSON(http.StatusOK, result)
}

// ValidateImport es la etapa 2: mapea y valida sin insertar nada; el
// frontend la usa como vista previa.
func (c *EquipmentImportController) ValidateImport(ctx echo.Context) error {
	var payload dto.ValidateImportDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	report := c.importService.ValidateImport(payload.Mapping, payload.Data)
	return ctx.JSON(http.StatusOK, report)
}

// ImportEquipments es la etapa 3: inserta las filas válidas y devuelve el
// resumen autoritativo del lote.
func (c *EquipmentImportController) ImportEquipments(ctx echo.Context) error {
	var payload dto.ImportEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	report, err := c.importService.ImportEquipments(ctx.Request().Context(), payload.Mapping, payload.Data)
	if err != nil {
		c.logger.Error("ImportEquipments: importación interrumpida", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, report)
}

func writeWorkbook(ctx echo.Context, workbook *excelize.File, fileName string) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().WriteHeader(http.StatusOK)
	_, err := workbook.WriteTo(ctx.Response().Writer)
	return err
}
