package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParsePagination normaliza page y limit del query string. Un limit no
// numérico o ausente cae al valor por defecto; uno numérico se recorta al
// rango [1, MaxLimit]. page se recorta a un mínimo de 1, sin tope superior.
func ParsePagination(values url.Values) (page, limit, offset int) {
	page = 1
	limit = DefaultLimit

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 1 {
			page = p
		}
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case l < 1:
				limit = 1
			case l > MaxLimit:
				limit = MaxLimit
			default:
				limit = l
			}
		}
	}

	offset = (page - 1) * limit
	return
}
