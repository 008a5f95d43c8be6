package dto

// PaginationDTO es el bloque de paginación del sobre de listado. Las claves
// van en camelCase porque así las consume el frontend.
type PaginationDTO struct {
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	Total       uint64 `json:"total"`
	Limit       int    `json:"limit"`
	HasNextPage bool   `json:"hasNextPage"`
	HasPrevPage bool   `json:"hasPrevPage"`
}

func NewPagination(page, limit int, total uint64) PaginationDTO {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}
	return PaginationDTO{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
