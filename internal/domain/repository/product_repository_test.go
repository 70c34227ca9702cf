package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortField_ValoresConocidos(t *testing.T) {
	cases := map[string]ProductSortField{
		"":         SortByID,
		"price":    SortByPrice,
		"PRICE":    SortByPrice,
		" name ":   SortByName,
		"Category": SortByCategory,
		"stock":    SortByStock,
		"id":       SortByID,
		"weight":   SortByID,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSortField(in), "sortBy=%q", in)
	}
}
