package utils

import (
	"context"

	"gestion-medios/internal/authz"
	"gestion-medios/pkg/contextkeys"
	apperrors "gestion-medios/pkg/errors"
)

func PrincipalFromContext(ctx context.Context) (authz.Principal, error) {
	principal, ok := ctx.Value(contextkeys.PrincipalKey).(authz.Principal)
	if !ok {
		return authz.Principal{}, apperrors.ErrPrincipalNotFoundInContext
	}
	return principal, nil
}
