package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gestion-medios/internal/authz"
	"gestion-medios/internal/dto"
	"gestion-medios/internal/entities"
	"gestion-medios/pkg/contextkeys"
	"gestion-medios/pkg/customvalidator"
	apperrors "gestion-medios/pkg/errors"
	"gestion-medios/pkg/utils"
)

type stubEquipmentService struct {
	list       []dto.EquipmentDTO
	pagination dto.PaginationDTO
	equipment  *dto.EquipmentDTO
	err        error

	lastFilter dto.EquipmentFilter
}

func (s *stubEquipmentService) GetEquipments(ctx context.Context, principal authz.Principal, filter dto.EquipmentFilter) ([]dto.EquipmentDTO, dto.PaginationDTO, error) {
	s.lastFilter = filter
	return s.list, s.pagination, s.err
}

func (s *stubEquipmentService) FindEquipment(ctx context.Context, principal authz.Principal, id int) (*dto.EquipmentDTO, error) {
	return s.equipment, s.err
}

func (s *stubEquipmentService) CreateEquipment(ctx context.Context, principal authz.Principal, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	return s.equipment, s.err
}

func (s *stubEquipmentService) UpdateEquipment(ctx context.Context, principal authz.Principal, id int, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	return s.equipment, s.err
}

func (s *stubEquipmentService) DeleteEquipment(ctx context.Context, principal authz.Principal, id int) error {
	return s.err
}

func (s *stubEquipmentService) GetAllForExport(ctx context.Context, principal authz.Principal, filter dto.EquipmentFilter) ([]entities.Equipment, error) {
	return nil, s.err
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

func newTestContext(t *testing.T, e *echo.Echo, method, target, body string, principal *authz.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if principal != nil {
		req = req.WithContext(context.WithValue(req.Context(), contextkeys.PrincipalKey, *principal))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetEquipmentsEnvelope(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubEquipmentService{
		list: []dto.EquipmentDTO{{ID: 1, InventoryNumber: "INV-001", Name: "Laptop"}},
		pagination: dto.PaginationDTO{
			CurrentPage: 1, TotalPages: 3, Total: 41, Limit: 20,
			HasNextPage: true, HasPrevPage: false,
		},
	}
	ctrl := NewEquipmentController(stub, zap.NewNop())

	principal := authz.Principal{ID: 1, Role: authz.RoleAdmin}
	ctx, rec := newTestContext(t, e, http.MethodGet, "/api/equipment?page=1&limit=20", "", &principal)

	require.NoError(t, ctrl.GetEquipments(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "success")
	assert.Contains(t, body, "equipment")
	assert.Contains(t, body, "pagination")

	var pagination map[string]interface{}
	require.NoError(t, json.Unmarshal(body["pagination"], &pagination))
	// El bloque de paginación usa claves camelCase.
	assert.Equal(t, float64(1), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, float64(41), pagination["total"])
	assert.Equal(t, true, pagination["hasNextPage"])
	assert.Equal(t, false, pagination["hasPrevPage"])
}

func TestGetEquipmentsEmptyListIsArrayNotNull(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubEquipmentService{pagination: dto.PaginationDTO{CurrentPage: 1, Limit: 20}}
	ctrl := NewEquipmentController(stub, zap.NewNop())

	principal := authz.Principal{ID: 1, Role: authz.RoleAdmin}
	ctx, rec := newTestContext(t, e, http.MethodGet, "/api/equipment", "", &principal)

	require.NoError(t, ctrl.GetEquipments(ctx))
	assert.Contains(t, rec.Body.String(), `"equipment":[]`)
}

func TestGetEquipmentsParsesFilters(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubEquipmentService{}
	ctrl := NewEquipmentController(stub, zap.NewNop())

	principal := authz.Principal{ID: 1, Role: authz.RoleAdmin}
	ctx, _ := newTestContext(t, e, http.MethodGet,
		"/api/equipment?state_id=4&type=laptop&status=active&search=dell&page=2&limit=50", "", &principal)

	require.NoError(t, ctrl.GetEquipments(ctx))
	require.NotNil(t, stub.lastFilter.StateID)
	assert.Equal(t, 4, *stub.lastFilter.StateID)
	assert.Equal(t, "laptop", stub.lastFilter.Type)
	assert.Equal(t, "active", stub.lastFilter.Status)
	assert.Equal(t, "dell", stub.lastFilter.Search)
	assert.Equal(t, 2, stub.lastFilter.Page)
	assert.Equal(t, 50, stub.lastFilter.Limit)
	assert.Equal(t, 50, stub.lastFilter.Offset)
}

func TestGetEquipmentsWithoutPrincipal(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewEquipmentController(&stubEquipmentService{}, zap.NewNop())

	ctx, rec := newTestContext(t, e, http.MethodGet, "/api/equipment", "", nil)
	require.NoError(t, ctrl.GetEquipments(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFindEquipmentErrorStatuses(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "no encontrado", err: apperrors.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "fuera de alcance", err: apperrors.ErrForbidden, wantCode: http.StatusForbidden},
		{name: "rol desconocido", err: apperrors.ErrInvalidRole, wantCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(t)
			ctrl := NewEquipmentController(&stubEquipmentService{err: tc.err}, zap.NewNop())

			principal := authz.Principal{ID: 7, Role: authz.RoleManager, StateID: 4}
			ctx, rec := newTestContext(t, e, http.MethodGet, "/api/equipment/5", "", &principal)
			ctx.SetParamNames("id")
			ctx.SetParamValues("5")

			require.NoError(t, ctrl.FindEquipment(ctx))
			assert.Equal(t, tc.wantCode, rec.Code)

			var body utils.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.err.Error(), body.Error)
		})
	}
}

func TestFindEquipmentInvalidID(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewEquipmentController(&stubEquipmentService{}, zap.NewNop())

	principal := authz.Principal{ID: 1, Role: authz.RoleAdmin}
	ctx, rec := newTestContext(t, e, http.MethodGet, "/api/equipment/abc", "", &principal)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	require.NoError(t, ctrl.FindEquipment(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEquipmentDuplicateReturnsBadRequest(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewEquipmentController(&stubEquipmentService{err: apperrors.ErrDuplicateInventoryNumber}, zap.NewNop())

	payload := `{
		"inventory_number": "INV-001",
		"name": "Laptop de soporte",
		"type": "laptop",
		"brand": "Dell",
		"model": "Latitude 5440",
		"status": "active",
		"state_id": 4,
		"assigned_to": "Juan Pérez"
	}`
	principal := authz.Principal{ID: 1, Role: authz.RoleAdmin}
	ctx, rec := newTestContext(t, e, http.MethodPost, "/api/equipment", payload, &principal)

	require.NoError(t, ctrl.CreateEquipment(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperrors.ErrDuplicateInventoryNumber.Error(), body.Error)
}

func TestCreateEquipmentValidationFailure(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewEquipmentController(&stubEquipmentService{}, zap.NewNop())

	// type fuera del catálogo y state_id ausente.
	payload := `{
		"inventory_number": "INV-001",
		"name": "Laptop",
		"type": "lavadora",
		"brand": "Dell",
		"model": "Latitude",
		"status": "active",
		"assigned_to": "Juan"
	}`
	principal := authz.Principal{ID: 1, Role: authz.RoleAdmin}
	ctx, rec := newTestContext(t, e, http.MethodPost, "/api/equipment", payload, &principal)

	require.NoError(t, ctrl.CreateEquipment(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "equipment_type")
}
