package services

import (
	"context"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gestion-medios/internal/authz"
	"gestion-medios/internal/dto"
	"gestion-medios/internal/entities"
	"gestion-medios/internal/repositories"
	apperrors "gestion-medios/pkg/errors"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, principal authz.Principal, filter dto.EquipmentFilter) ([]dto.EquipmentDTO, dto.PaginationDTO, error)
	FindEquipment(ctx context.Context, principal authz.Principal, id int) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, principal authz.Principal, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, principal authz.Principal, id int, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, principal authz.Principal, id int) error
	GetAllForExport(ctx context.Context, principal authz.Principal, filter dto.EquipmentFilter) ([]entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, principal authz.Principal, filter dto.EquipmentFilter) ([]dto.EquipmentDTO, dto.PaginationDTO, error) {
	scope, err := authz.ResolveScope(principal)
	if err != nil {
		return nil, dto.PaginationDTO{}, err
	}

	list, total, err := s.equipmentRepository.GetEquipments(ctx, scope, filter)
	if err != nil {
		return nil, dto.PaginationDTO{}, err
	}

	result := make([]dto.EquipmentDTO, 0, len(list))
	for i := range list {
		result = append(result, dto.EquipmentToDTO(&list[i]))
	}
	return result, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, principal authz.Principal, id int) (*dto.EquipmentDTO, error) {
	scope, err := authz.ResolveScope(principal)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRowScope(ctx, scope, equipment); err != nil {
		return nil, err
	}

	result := dto.EquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, principal authz.Principal, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	scope, err := authz.ResolveScope(principal)
	if err != nil {
		return nil, err
	}
	if !scope.CanWrite() {
		return nil, apperrors.ErrForbidden
	}
	// Un manager solo da de alta equipos en su propia región.
	if scope.Role() == authz.RoleManager && payload.StateID != principal.StateID {
		return nil, apperrors.ErrForbidden
	}

	// Verificación previa de unicidad: mejora el mensaje; la restricción
	// UNIQUE de la tabla cubre la carrera entre dos altas concurrentes.
	exists, err := s.equipmentRepository.ExistsByInventoryNumber(ctx, payload.InventoryNumber, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateInventoryNumber
	}

	equipment := &entities.Equipment{
		InventoryNumber: payload.InventoryNumber,
		Name:            payload.Name,
		Type:            strings.ToLower(payload.Type),
		Brand:           null.StringFrom(payload.Brand),
		Model:           null.StringFrom(payload.Model),
		Specifications:  null.StringFromPtr(payload.Specifications),
		Status:          strings.ToLower(payload.Status),
		StateID:         payload.StateID,
		AssignedTo:      null.StringFrom(payload.AssignedTo),
		LocationDetails: null.StringFromPtr(payload.LocationDetails),
	}

	if err := s.equipmentRepository.CreateEquipment(ctx, equipment); err != nil {
		return nil, err
	}

	s.logger.Info("Equipo creado",
		zap.Int("id", equipment.ID),
		zap.String("inventory_number", equipment.InventoryNumber),
		zap.Int("user_id", principal.ID),
	)

	result := dto.EquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, principal authz.Principal, id int, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	scope, err := authz.ResolveScope(principal)
	if err != nil {
		return nil, err
	}
	if !scope.CanWrite() {
		return nil, apperrors.ErrForbidden
	}

	current, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRowScope(ctx, scope, current); err != nil {
		return nil, err
	}
	if scope.Role() == authz.RoleManager && payload.StateID != principal.StateID {
		return nil, apperrors.ErrForbidden
	}

	exists, err := s.equipmentRepository.ExistsByInventoryNumber(ctx, payload.InventoryNumber, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateInventoryNumber
	}

	// Escritura última-gana: no hay campo de versión y la concurrencia de
	// escritura esperada es mínima.
	equipment := &entities.Equipment{
		ID:              id,
		InventoryNumber: payload.InventoryNumber,
		Name:            payload.Name,
		Type:            strings.ToLower(payload.Type),
		Brand:           null.StringFrom(payload.Brand),
		Model:           null.StringFrom(payload.Model),
		Specifications:  null.StringFromPtr(payload.Specifications),
		Status:          strings.ToLower(payload.Status),
		StateID:         payload.StateID,
		AssignedTo:      null.StringFrom(payload.AssignedTo),
		LocationDetails: null.StringFromPtr(payload.LocationDetails),
		CreatedAt:       current.CreatedAt,
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, equipment); err != nil {
		return nil, err
	}

	result := dto.EquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, principal authz.Principal, id int) error {
	scope, err := authz.ResolveScope(principal)
	if err != nil {
		return err
	}
	if !scope.CanDelete() {
		return apperrors.ErrForbidden
	}

	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkRowScope(ctx, scope, equipment); err != nil {
		return err
	}

	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Equipo eliminado",
		zap.Int("id", id),
		zap.String("inventory_number", equipment.InventoryNumber),
		zap.Int("user_id", principal.ID),
	)
	return nil
}

func (s *EquipmentService) GetAllForExport(ctx context.Context, principal authz.Principal, filter dto.EquipmentFilter) ([]entities.Equipment, error) {
	scope, err := authz.ResolveScope(principal)
	if err != nil {
		return nil, err
	}

	// Sin paginación: la exportación vuelca el conjunto filtrado completo.
	filter.Limit = 100000
	filter.Offset = 0

	list, _, err := s.equipmentRepository.GetEquipments(ctx, scope, filter)
	return list, err
}

// checkRowScope distingue la fila fuera de alcance (403) de la inexistente
// (404): un rol restringido no puede sondear la existencia de registros.
func (s *EquipmentService) checkRowScope(ctx context.Context, scope authz.Scope, equipment *entities.Equipment) error {
	hasAssignment := false
	if scope.NeedsAssignmentLookup() {
		var err error
		hasAssignment, err = s.equipmentRepository.HasActiveAssignment(ctx, equipment.ID, scope.Principal().ID)
		if err != nil {
			return err
		}
	}
	if !scope.AllowsRow(equipment.StateID, hasAssignment) {
		return apperrors.ErrForbidden
	}
	return nil
}
