package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gestion-medios/internal/authz"
	"gestion-medios/pkg/contextkeys"
	apperrors "gestion-medios/pkg/errors"
	"gestion-medios/pkg/service"
	"gestion-medios/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth valida el token Bearer y deja el Principal en el contexto del request.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("Auth: encabezado Authorization vacío")
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrEmptyAuthHeader.Error(), nil, nil), m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("Auth: formato de encabezado Authorization no válido")
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidAuthHeader.Error(), nil, nil), m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("Auth: token rechazado", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err, nil), m.logger)
		}

		principal := authz.Principal{
			ID:      claims.UserID,
			Role:    authz.Role(claims.Role),
			StateID: claims.StateID,
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.PrincipalKey, principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRoles corta con 403 cuando el rol del principal no está en la lista.
func (m *AuthMiddleware) RequireRoles(roles ...authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := utils.PrincipalFromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), m.logger)
			}

			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}

			m.logger.Warn("RequireRoles: rol sin permiso para la ruta",
				zap.String("role", string(principal.Role)),
				zap.String("path", c.Path()),
			)
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden, apperrors.ErrForbidden.Error(), nil, nil), m.logger)
		}
	}
}
