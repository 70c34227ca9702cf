package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn dentro de una transacción, con repositorios atados a esa tx.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// PriceListGenerator genera la lista de precios en PDF.
type PriceListGenerator interface {
	GeneratePriceList(ctx context.Context, title string, products []*entity.Product) ([]byte, error)
}
