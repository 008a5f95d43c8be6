package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"gestion-medios/internal/authz"
	apperrors "gestion-medios/pkg/errors"
)

// JwtCustomClaim transporta el principal emitido por el servicio de
// autenticación externo: {id, rol, estado}.
type JwtCustomClaim struct {
	UserID  int    `json:"user_id"`
	Role    string `json:"role"`
	StateID int    `json:"state_id"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(principal authz.Principal) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
}

type jwtService struct {
	secretKey      string
	accessTokenTTL time.Duration
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration) JWTService {
	return &jwtService{
		secretKey:      secretKey,
		accessTokenTTL: accessTokenTTL,
	}
}

func (s *jwtService) GenerateToken(principal authz.Principal) (string, error) {
	claims := &JwtCustomClaim{
		UserID:  principal.ID,
		Role:    string(principal.Role),
		StateID: principal.StateID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
