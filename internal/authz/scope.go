package authz

import (
	sq "github.com/Masterminds/squirrel"

	apperrors "gestion-medios/pkg/errors"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleConsultant Role = "consultant"
)

// Principal es el usuario autenticado que entrega el middleware. La emisión
// de tokens vive fuera de este servicio.
type Principal struct {
	ID      int  `json:"id"`
	Role    Role `json:"role"`
	StateID int  `json:"state_id"`
}

// Scope es el predicado de visibilidad de filas derivado del rol. Se combina
// con AND con los filtros del cliente y nunca puede ser anulado por estos.
type Scope struct {
	role      Role
	principal Principal
}

func ResolveScope(p Principal) (Scope, error) {
	switch p.Role {
	case RoleAdmin, RoleManager, RoleConsultant:
		return Scope{role: p.Role, principal: p}, nil
	default:
		return Scope{}, apperrors.ErrInvalidRole
	}
}

func (s Scope) Role() Role           { return s.role }
func (s Scope) Principal() Principal { return s.principal }

// Predicate devuelve la condición de visibilidad sobre el alias de tabla
// indicado, o nil cuando el rol no restringe el acceso.
func (s Scope) Predicate(alias string) sq.Sqlizer {
	switch s.role {
	case RoleManager:
		return sq.Eq{alias + ".state_id": s.principal.StateID}
	case RoleConsultant:
		return sq.Expr(
			"EXISTS (SELECT 1 FROM equipment_assignments a WHERE a.equipment_id = "+alias+".id AND a.user_id = ? AND a.returned_at IS NULL)",
			s.principal.ID,
		)
	default:
		return nil
	}
}

// NeedsAssignmentLookup indica si la comprobación de una fila concreta
// requiere consultar las asignaciones activas (caso consultant).
func (s Scope) NeedsAssignmentLookup() bool { return s.role == RoleConsultant }

// AllowsRow responde si la fila es visible para el principal. Para el rol
// consultant el llamador debe aportar el resultado de la consulta de
// asignaciones activas.
func (s Scope) AllowsRow(stateID int, hasActiveAssignment bool) bool {
	switch s.role {
	case RoleAdmin:
		return true
	case RoleManager:
		return stateID == s.principal.StateID
	case RoleConsultant:
		return hasActiveAssignment
	}
	return false
}

// CanWrite responde si el rol puede crear o modificar equipos.
func (s Scope) CanWrite() bool {
	return s.role == RoleAdmin || s.role == RoleManager
}

// CanDelete responde si el rol puede eliminar equipos.
func (s Scope) CanDelete() bool { return s.role == RoleAdmin }
