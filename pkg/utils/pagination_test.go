package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "sin parámetros", query: "", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "valores normales", query: "page=3&limit=50", wantPage: 3, wantLimit: 50, wantOffset: 100},
		{name: "limit cero se recorta a uno", query: "limit=0", wantPage: 1, wantLimit: 1, wantOffset: 0},
		{name: "limit negativo se recorta a uno", query: "limit=-5", wantPage: 1, wantLimit: 1, wantOffset: 0},
		{name: "limit no numérico cae al valor por defecto", query: "limit=abc", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "limit por encima del tope", query: "limit=1000", wantPage: 1, wantLimit: 100, wantOffset: 0},
		{name: "page cero se recorta a uno", query: "page=0&limit=10", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "page negativo se recorta a uno", query: "page=-2", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "page no numérico cae a uno", query: "page=xyz&limit=30", wantPage: 1, wantLimit: 30, wantOffset: 0},
		{name: "offset combina page y limit", query: "page=5&limit=25", wantPage: 5, wantLimit: 25, wantOffset: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			assert.NoError(t, err)

			page, limit, offset := ParsePagination(values)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
