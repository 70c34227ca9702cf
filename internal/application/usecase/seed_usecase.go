package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SeedProduct producto inicial; Category referencia el nombre de una de SeedCategories.
type SeedProduct struct {
	Name          string
	Category      string
	Price         decimal.Decimal
	StockQuantity int
}

// Datos iniciales del catálogo.
var (
	SeedCategories = []string{"Home", "Electronics", "Sports"}

	SeedProducts = []SeedProduct{
		{Name: "Laptop Pro", Category: "Electronics", Price: decimal.NewFromInt(1299), StockQuantity: 15},
		{Name: "Wireless Mouse", Category: "Electronics", Price: decimal.RequireFromString("49.99"), StockQuantity: 0},
		{Name: "Coffee Maker", Category: "Home", Price: decimal.RequireFromString("89.99"), StockQuantity: 30},
		{Name: "Yoga Mat", Category: "Sports", Price: decimal.RequireFromString("29.99"), StockQuantity: 100},
	}
)

// CatalogSeeder carga los datos iniciales solo si no hay categorías.
type CatalogSeeder struct {
	tx  CatalogTxRunner
	now func() time.Time
}

// NewCatalogSeeder construye el seeder.
func NewCatalogSeeder(tx CatalogTxRunner) *CatalogSeeder {
	return &CatalogSeeder{tx: tx, now: time.Now}
}

// Seed inserta categorías y productos en una sola transacción. Es idempotente:
// devuelve false sin tocar nada si el catálogo ya tiene categorías.
func (s *CatalogSeeder) Seed(ctx context.Context) (bool, error) {
	seeded := false
	err := s.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
		n, err := categoryRepo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		now := s.now().UTC()
		ids := make(map[string]int64, len(SeedCategories))
		for _, name := range SeedCategories {
			c := &entity.Category{Name: name, CreatedAt: now}
			if err := categoryRepo.Create(ctx, c); err != nil {
				return fmt.Errorf("seed category %s: %w", name, err)
			}
			ids[name] = c.ID
		}
		for _, sp := range SeedProducts {
			p := &entity.Product{
				Name:          sp.Name,
				CategoryID:    ids[sp.Category],
				Price:         sp.Price,
				StockQuantity: sp.StockQuantity,
				CreatedAt:     now,
			}
			if err := productRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("seed product %s: %w", sp.Name, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
