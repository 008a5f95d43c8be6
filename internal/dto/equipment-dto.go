package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"gestion-medios/internal/entities"
)

// CreateEquipmentDTO exige brand, model y assigned_to aunque en el esquema
// sean anulables: es la lista de campos obligatorios del producto.
type CreateEquipmentDTO struct {
	InventoryNumber string  `json:"inventory_number" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Type            string  `json:"type" validate:"required,equipment_type"`
	Brand           string  `json:"brand" validate:"required"`
	Model           string  `json:"model" validate:"required"`
	Specifications  *string `json:"specifications,omitempty"`
	Status          string  `json:"status" validate:"required,equipment_status"`
	StateID         int     `json:"state_id" validate:"required,gt=0"`
	AssignedTo      string  `json:"assigned_to" validate:"required"`
	LocationDetails *string `json:"location_details,omitempty"`
}

// UpdateEquipmentDTO repite la misma lista de obligatorios: el PUT
// sobrescribe todos los campos mutables.
type UpdateEquipmentDTO struct {
	InventoryNumber string  `json:"inventory_number" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Type            string  `json:"type" validate:"required,equipment_type"`
	Brand           string  `json:"brand" validate:"required"`
	Model           string  `json:"model" validate:"required"`
	Specifications  *string `json:"specifications,omitempty"`
	Status          string  `json:"status" validate:"required,equipment_status"`
	StateID         int     `json:"state_id" validate:"required,gt=0"`
	AssignedTo      string  `json:"assigned_to" validate:"required"`
	LocationDetails *string `json:"location_details,omitempty"`
}

type EquipmentDTO struct {
	ID              int         `json:"id"`
	InventoryNumber string      `json:"inventory_number"`
	Name            string      `json:"name"`
	Type            string      `json:"type"`
	Brand           null.String `json:"brand"`
	Model           null.String `json:"model"`
	Specifications  null.String `json:"specifications"`
	Status          string      `json:"status"`
	StateID         int         `json:"state_id"`
	AssignedTo      null.String `json:"assigned_to"`
	LocationDetails null.String `json:"location_details"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

func EquipmentToDTO(e *entities.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:              e.ID,
		InventoryNumber: e.InventoryNumber,
		Name:            e.Name,
		Type:            e.Type,
		Brand:           e.Brand,
		Model:           e.Model,
		Specifications:  e.Specifications,
		Status:          e.Status,
		StateID:         e.StateID,
		AssignedTo:      e.AssignedTo,
		LocationDetails: e.LocationDetails,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       e.UpdatedAt.Format(time.RFC3339),
	}
}

// EquipmentFilter son los filtros de listado ya normalizados del query string.
type EquipmentFilter struct {
	StateID *int
	Type    string
	Status  string
	Search  string
	Page    int
	Limit   int
	Offset  int
}

type EquipmentListResponse struct {
	Success    bool           `json:"success"`
	Equipment  []EquipmentDTO `json:"equipment"`
	Pagination PaginationDTO  `json:"pagination"`
}

type EquipmentResponse struct {
	Success   bool         `json:"success"`
	Equipment EquipmentDTO `json:"equipment"`
}
