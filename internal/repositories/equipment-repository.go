package repositories

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gestion-medios/internal/authz"
	"gestion-medios/internal/dto"
	"gestion-medios/internal/entities"
	apperrors "gestion-medios/pkg/errors"
)

const equipmentTable = "equipment"
const equipmentAlias = "e"
const equipmentFields = "e.id, e.inventory_number, e.name, e.type, e.brand, e.model, e.specifications, e.status, e.state_id, e.assigned_to, e.location_details, e.created_at, e.updated_at"

// Columnas donde busca el parámetro search (subcadena, sin distinguir
// mayúsculas).
var equipmentSearchColumns = []string{
	"e.inventory_number",
	"e.name",
	"e.brand",
	"e.model",
	"e.assigned_to",
}

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, scope authz.Scope, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id int) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *entities.Equipment) error
	UpdateEquipment(ctx context.Context, equipment *entities.Equipment) error
	DeleteEquipment(ctx context.Context, id int) error
	ExistsByInventoryNumber(ctx context.Context, inventoryNumber string, excludeID int) (bool, error)
	HasActiveAssignment(ctx context.Context, equipmentID, userID int) (bool, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

// applyEquipmentPredicates combina el predicado del alcance con los filtros
// del cliente. El alcance va siempre primero y en AND: el cliente no puede
// anularlo con sus propios filtros.
func applyEquipmentPredicates(builder sq.SelectBuilder, scope authz.Scope, filter dto.EquipmentFilter) sq.SelectBuilder {
	if pred := scope.Predicate(equipmentAlias); pred != nil {
		builder = builder.Where(pred)
	}

	if filter.StateID != nil {
		builder = builder.Where(sq.Eq{"e.state_id": *filter.StateID})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"e.type": filter.Type})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"e.status": filter.Status})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		conditions := make([]sq.Sqlizer, 0, len(equipmentSearchColumns))
		for _, col := range equipmentSearchColumns {
			conditions = append(conditions, sq.Expr(col+" ILIKE ?", pattern))
		}
		builder = builder.Where(sq.Or(conditions))
	}

	return builder
}

// buildListQuery arma la consulta de datos y la de conteo con los mismos
// predicados. El orden por created_at con desempate por id hace la
// paginación reproducible.
func buildListQuery(scope authz.Scope, filter dto.EquipmentFilter) (sq.SelectBuilder, sq.SelectBuilder) {
	selectBuilder := sq.Select(equipmentFields).
		From(equipmentTable + " " + equipmentAlias).
		PlaceholderFormat(sq.Dollar)
	selectBuilder = applyEquipmentPredicates(selectBuilder, scope, filter).
		OrderBy("e.created_at DESC", "e.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	countBuilder := sq.Select("COUNT(*)").
		From(equipmentTable + " " + equipmentAlias).
		PlaceholderFormat(sq.Dollar)
	countBuilder = applyEquipmentPredicates(countBuilder, scope, filter)

	return selectBuilder, countBuilder
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, scope authz.Scope, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	selectBuilder, countBuilder := buildListQuery(scope, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		var equipment entities.Equipment
		if err := scanEquipment(rows, &equipment); err != nil {
			return nil, 0, err
		}
		list = append(list, equipment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id int) (*entities.Equipment, error) {
	query := "SELECT " + equipmentFields + " FROM " + equipmentTable + " e WHERE e.id = $1"

	var equipment entities.Equipment
	err := scanEquipment(r.storage.QueryRow(ctx, query, id), &equipment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	query := `
		INSERT INTO equipment (inventory_number, name, type, brand, model, specifications, status, state_id, assigned_to, location_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := r.storage.QueryRow(ctx, query,
		equipment.InventoryNumber,
		equipment.Name,
		equipment.Type,
		equipment.Brand,
		equipment.Model,
		equipment.Specifications,
		equipment.Status,
		equipment.StateID,
		equipment.AssignedTo,
		equipment.LocationDetails,
	).Scan(&equipment.ID, &equipment.CreatedAt, &equipment.UpdatedAt)

	if err != nil {
		// La restricción UNIQUE de la tabla es la garantía real frente a dos
		// altas concurrentes; la verificación previa solo es el camino rápido.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return apperrors.ErrDuplicateInventoryNumber
			case foreignKeyViolationCode:
				return apperrors.NewInvalidInputError("el estado indicado no existe")
			}
		}
		return err
	}
	return nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	query := `
		UPDATE equipment
		SET inventory_number = $1, name = $2, type = $3, brand = $4, model = $5,
		    specifications = $6, status = $7, state_id = $8, assigned_to = $9,
		    location_details = $10, updated_at = now()
		WHERE id = $11
		RETURNING updated_at`

	err := r.storage.QueryRow(ctx, query,
		equipment.InventoryNumber,
		equipment.Name,
		equipment.Type,
		equipment.Brand,
		equipment.Model,
		equipment.Specifications,
		equipment.Status,
		equipment.StateID,
		equipment.AssignedTo,
		equipment.LocationDetails,
		equipment.ID,
	).Scan(&equipment.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return apperrors.ErrDuplicateInventoryNumber
			case foreignKeyViolationCode:
				return apperrors.NewInvalidInputError("el estado indicado no existe")
			}
		}
		return err
	}
	return nil
}

// DeleteEquipment elimina sin comprobar asignaciones pendientes: una vez
// confirmada la existencia, el borrado siempre procede (decisión de producto).
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ExistsByInventoryNumber comprueba unicidad con coincidencia exacta,
// sensible a mayúsculas. excludeID descarta la propia fila al actualizar
// (0 para altas).
func (r *EquipmentRepository) ExistsByInventoryNumber(ctx context.Context, inventoryNumber string, excludeID int) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM equipment WHERE inventory_number = $1 AND id <> $2)",
		inventoryNumber, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *EquipmentRepository) HasActiveAssignment(ctx context.Context, equipmentID, userID int) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM equipment_assignments WHERE equipment_id = $1 AND user_id = $2 AND returned_at IS NULL)",
		equipmentID, userID,
	).Scan(&exists)
	return exists, err
}

func scanEquipment(row pgx.Row, equipment *entities.Equipment) error {
	return row.Scan(
		&equipment.ID,
		&equipment.InventoryNumber,
		&equipment.Name,
		&equipment.Type,
		&equipment.Brand,
		&equipment.Model,
		&equipment.Specifications,
		&equipment.Status,
		&equipment.StateID,
		&equipment.AssignedTo,
		&equipment.LocationDetails,
		&equipment.CreatedAt,
		&equipment.UpdatedAt,
	)
}
