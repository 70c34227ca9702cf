package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CategoryName es de solo lectura: lo completa el repositorio al leer (join con categories).
type Product struct {
	ID            int64
	Name          string
	CategoryID    int64
	CategoryName  string
	Price         decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
}

// InStock indica si hay existencias disponibles.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}
