package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gestion-medios/pkg/errors"
)

// ErrorBody es el sobre de error que consume el frontend: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

var errorStatusList = map[error]int{
	apperrors.ErrNotFound:                 http.StatusNotFound,
	apperrors.ErrForbidden:                http.StatusForbidden,
	apperrors.ErrInvalidRole:              http.StatusForbidden,
	apperrors.ErrUnauthorized:             http.StatusUnauthorized,
	apperrors.ErrDuplicateInventoryNumber: http.StatusBadRequest,
	apperrors.ErrUnparseableFile:          http.StatusBadRequest,
	apperrors.ErrEmptyImportFile:          http.StatusBadRequest,
	apperrors.ErrBadRequest:               http.StatusBadRequest,
}

// ErrorResponse traduce cualquier error del servicio al sobre {"error": msg}
// con su código HTTP. Los errores no clasificados se registran y salen como
// 500 con un mensaje genérico, sin detalle interno.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("Error HTTP",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("el campo '%s' no cumple la regla '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: strings.Join(msgs, "; ")})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: invalidInput.Message})
	}

	for sentinel, status := range errorStatusList {
		if errors.Is(err, sentinel) {
			return c.JSON(status, ErrorBody{Error: sentinel.Error()})
		}
	}

	logger.Error("Error inesperado", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Error interno del servidor"})
}
