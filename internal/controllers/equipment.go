package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gestion-medios/internal/dto"
	"gestion-medios/internal/services"
	apperrors "gestion-medios/pkg/errors"
	"gestion-medios/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(service services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

// parseEquipmentFilter normaliza los parámetros de listado. Los filtros de
// igualdad vacíos se ignoran; page y limit llegan ya recortados.
func parseEquipmentFilter(ctx echo.Context) dto.EquipmentFilter {
	values := ctx.Request().URL.Query()
	page, limit, offset := utils.ParsePagination(values)

	filter := dto.EquipmentFilter{
		Type:   values.Get("type"),
		Status: values.Get("status"),
		Search: values.Get("search"),
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}

	if stateStr := values.Get("state_id"); stateStr != "" {
		if stateID, err := strconv.Atoi(stateStr); err == nil && stateID > 0 {
			filter.StateID = &stateID
		}
	}
	return filter
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	principal, err := utils.PrincipalFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), c.logger)
	}

	filter := parseEquipmentFilter(ctx)
	list, pagination, err := c.equipmentService.GetEquipments(ctx.Request().Context(), principal, filter)
	if err != nil {
		c.logger.Error("GetEquipments: fallo obteniendo el listado", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if list == nil {
		list = []dto.EquipmentDTO{}
	}
	return ctx.JSON(http.StatusOK, dto.EquipmentListResponse{
		Success:    true,
		Equipment:  list,
		Pagination: pagination,
	})
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	principal, err := utils.PrincipalFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), c.logger)
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de ID no válido", err, nil), c.logger)
	}

	equipment, err := c.equipmentService.FindEquipment(ctx.Request().Context(), principal, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, dto.EquipmentResponse{Success: true, Equipment: *equipment})
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	principal, err := utils.PrincipalFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), c.logger)
	}

	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), principal, payload)
	if err != nil {
		c.logger.Error("CreateEquipment: fallo creando el equipo",
			zap.String("inventory_number", payload.InventoryNumber),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusCreated, dto.EquipmentResponse{Success: true, Equipment: *equipment})
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	principal, err := utils.PrincipalFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), c.logger)
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de ID no válido", err, nil), c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), principal, id, payload)
	if err != nil {
		c.logger.Error("UpdateEquipment: fallo actualizando el equipo", zap.Int("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, dto.EquipmentResponse{Success: true, Equipment: *equipment})
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	principal, err := utils.PrincipalFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), c.logger)
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de ID no válido", err, nil), c.logger)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), principal, id); err != nil {
		c.logger.Error("DeleteEquipment: fallo eliminando el equipo", zap.Int("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

func (c *EquipmentController) ExportEquipments(ctx echo.Context) error {
	principal, err := utils.PrincipalFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), c.logger)
	}

	filter := parseEquipmentFilter(ctx)
	list, err := c.equipmentService.GetAllForExport(ctx.Request().Context(), principal, filter)
	if err != nil {
		c.logger.Error("ExportEquipments: fallo obteniendo los datos", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	workbook, err := services.BuildEquipmentWorkbook(list)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer workbook.Close()

	return writeWorkbook(ctx, workbook, services.ExportFileName(time.Now()))
}

func (c *EquipmentController) DownloadTemplate(ctx echo.Context) error {
	workbook, err := services.BuildImportTemplate()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer workbook.Close()

	return writeWorkbook(ctx, workbook, "plantilla_equipos.xlsx")
}
