package repository

import (
	"context"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
}

// ProductSortField campo por el que se ordena el listado.
type ProductSortField string

const (
	SortByID       ProductSortField = "id"
	SortByPrice    ProductSortField = "price"
	SortByName     ProductSortField = "name"
	SortByCategory ProductSortField = "category"
	SortByStock    ProductSortField = "stock"
)

// ParseSortField interpreta sortBy sin distinguir mayúsculas. Valores vacíos o desconocidos
// caen en SortByID.
func ParseSortField(s string) ProductSortField {
	switch f := ProductSortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByPrice, SortByName, SortByCategory, SortByStock:
		return f
	default:
		return SortByID
	}
}

// ProductFilter criterios del listado. Los campos nil o vacíos no filtran.
// Todos los filtros se combinan con AND; Limit y Offset se aplican después de ordenar.
type ProductFilter struct {
	CategoryID   *int64
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStock      *bool
	Name         string // subcadena, sin distinguir mayúsculas
	CategoryName string // subcadena, sin distinguir mayúsculas
	SortBy       ProductSortField
	Descending   bool
	Limit        int
	Offset       int
}
