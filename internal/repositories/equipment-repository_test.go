package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion-medios/internal/authz"
	"gestion-medios/internal/dto"
)

func mustScope(t *testing.T, p authz.Principal) authz.Scope {
	t.Helper()
	scope, err := authz.ResolveScope(p)
	require.NoError(t, err)
	return scope
}

func TestBuildListQueryAdminWithoutFilters(t *testing.T) {
	scope := mustScope(t, authz.Principal{ID: 1, Role: authz.RoleAdmin})
	selectBuilder, countBuilder := buildListQuery(scope, dto.EquipmentFilter{Limit: 20, Offset: 0})

	query, args, err := selectBuilder.ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY e.created_at DESC, e.id DESC")
	assert.Contains(t, query, "LIMIT 20")
	assert.Contains(t, query, "OFFSET 0")
	assert.Empty(t, args)

	countQuery, countArgs, err := countBuilder.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM equipment e", countQuery)
	assert.Empty(t, countArgs)
}

func TestBuildListQueryManagerScopePrecedesClientFilters(t *testing.T) {
	scope := mustScope(t, authz.Principal{ID: 7, Role: authz.RoleManager, StateID: 4})
	otherState := 9
	filter := dto.EquipmentFilter{
		StateID: &otherState,
		Type:    "laptop",
		Status:  "active",
		Limit:   10,
		Offset:  20,
	}

	selectBuilder, _ := buildListQuery(scope, filter)
	query, args, err := selectBuilder.ToSql()
	require.NoError(t, err)

	// El predicado del alcance va primero y en AND: el filtro state_id del
	// cliente no lo reemplaza, se acumula sobre él.
	assert.Contains(t, query, "WHERE e.state_id = $1 AND e.state_id = $2")
	assert.Contains(t, query, "e.type = $3")
	assert.Contains(t, query, "e.status = $4")
	assert.Equal(t, []interface{}{4, 9, "laptop", "active"}, args)
}

func TestBuildListQuerySearchSpansColumns(t *testing.T) {
	scope := mustScope(t, authz.Principal{ID: 1, Role: authz.RoleAdmin})
	filter := dto.EquipmentFilter{Search: "  dell  ", Limit: 20}

	selectBuilder, countBuilder := buildListQuery(scope, filter)
	query, args, err := selectBuilder.ToSql()
	require.NoError(t, err)

	for _, col := range equipmentSearchColumns {
		assert.Contains(t, query, col+" ILIKE")
	}
	require.Len(t, args, len(equipmentSearchColumns))
	for _, arg := range args {
		assert.Equal(t, "%dell%", arg)
	}

	// La consulta de conteo aplica los mismos predicados que la de datos.
	countQuery, countArgs, err := countBuilder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, countQuery, "ILIKE")
	assert.Equal(t, args, countArgs)
	assert.NotContains(t, countQuery, "LIMIT")
}

func TestBuildListQueryConsultantUsesAssignmentSubquery(t *testing.T) {
	scope := mustScope(t, authz.Principal{ID: 12, Role: authz.RoleConsultant, StateID: 2})

	selectBuilder, _ := buildListQuery(scope, dto.EquipmentFilter{Limit: 20})
	query, args, err := selectBuilder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "EXISTS (SELECT 1 FROM equipment_assignments")
	assert.Contains(t, query, "a.user_id = $1")
	assert.Contains(t, query, "a.returned_at IS NULL")
	assert.Equal(t, []interface{}{12}, args)
}
