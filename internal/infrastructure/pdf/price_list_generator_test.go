package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0.00":       "0.00",
		"49.99":      "49.99",
		"999.00":     "999.00",
		"1299.00":    "1,299.00",
		"1000000.50": "1,000,000.50",
		"-25000.00":  "-25,000.00",
		"123456":     "123,456",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}

func TestGeneratePriceList_DevuelvePDF(t *testing.T) {
	g := NewPriceListGenerator("Catalog API")
	products := []*entity.Product{
		{ID: 1, Name: "Laptop Pro", CategoryName: "Electronics", Price: decimal.NewFromInt(1299), StockQuantity: 15, CreatedAt: time.Now()},
		{ID: 2, Name: "Wireless Mouse", CategoryName: "Electronics", Price: decimal.RequireFromString("49.99"), CreatedAt: time.Now()},
	}

	out, err := g.GeneratePriceList(context.Background(), "Product price list", products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGeneratePriceList_SinProductos(t *testing.T) {
	out, err := NewPriceListGenerator("Catalog API").GeneratePriceList(context.Background(), "Empty", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGeneratePriceList_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPriceListGenerator("Catalog API").GeneratePriceList(ctx, "x", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
