package dto

import "gestion-medios/internal/entities"

type StateListResponse struct {
	Success bool             `json:"success"`
	States  []entities.State `json:"states"`
}
