package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Equipment es la fila de la tabla equipment. Los campos anulables en el
// esquema usan null.String aunque algunos sean obligatorios para el
// validador (regla de negocio documentada, no del esquema).
type Equipment struct {
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
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
