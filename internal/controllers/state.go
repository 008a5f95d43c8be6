package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gestion-medios/internal/dto"
	"gestion-medios/internal/entities"
	"gestion-medios/internal/services"
	"gestion-medios/pkg/utils"
)

type StateController struct {
	stateService *services.StateService
	logger       *zap.Logger
}

func NewStateController(stateService *services.StateService, logger *zap.Logger) *StateController {
	return &StateController{stateService: stateService, logger: logger}
}

func (c *StateController) GetStates(ctx echo.Context) error {
	states, err := c.stateService.GetStates(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetStates: fallo obteniendo el catálogo", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if states == nil {
		states = []entities.State{}
	}
	return ctx.JSON(http.StatusOK, dto.StateListResponse{Success: true, States: states})
}
