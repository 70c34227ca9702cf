package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID    int64           `json:"categoryId" validate:"required,gt=0"`
	Price         decimal.Decimal `json:"price" validate:"gte=0"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
}

// UpdateProductRequest entrada para actualización parcial: solo se aplican los campos no nulos.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID    *int64           `json:"categoryId" validate:"omitempty,gt=0"`
	Price         *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int             `json:"stockQuantity" validate:"omitempty,gte=0"`
}

// ListProductsQuery filtros, orden y paginación del listado. Punteros nil = sin filtro.
type ListProductsQuery struct {
	CategoryID   *int64
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStock      *bool
	Name         string
	CategoryName string
	SortBy       string // price | name | category | stock; otro valor ordena por id
	SortOrder    string // asc | desc; otro valor = asc
	PageRequest
}

// ProductView proyección de un producto hacia el cliente. Solo la implementan
// FullProduct (con existencias) y ReducedProduct (sin existencias).
type ProductView interface {
	productView()
}

// ProductSummary campos comunes a ambas proyecciones.
type ProductSummary struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// FullProduct proyección de un producto con stock > 0. InStock siempre es true.
type FullProduct struct {
	ProductSummary
	StockQuantity int  `json:"stockQuantity"`
	InStock       bool `json:"inStock"`
}

// ReducedProduct proyección de un producto agotado: omite stockQuantity e inStock.
type ReducedProduct struct {
	ProductSummary
}

func (FullProduct) productView()    {}
func (ReducedProduct) productView() {}
