package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_InStock_SegunCantidad(t *testing.T) {
	assert.True(t, (&Product{StockQuantity: 1}).InStock())
	assert.False(t, (&Product{StockQuantity: 0}).InStock())
}
