package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSeeded(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	seeded, err := usecase.NewCatalogSeeder(NewTxRunner(db)).Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)
	return db
}

func names(list []*entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}

func TestSeed_EsIdempotente(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	seeded, err := usecase.NewCatalogSeeder(NewTxRunner(db)).Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := NewCategoryRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	n, err = NewProductRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestCategoryRepo_ListYGetByID(t *testing.T) {
	db := openSeeded(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Home", list[0].Name)

	c, err := repo.GetByID(ctx, list[1].ID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Electronics", c.Name)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_GetByID_IncluyeCategoria(t *testing.T) {
	db := openSeeded(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Wireless Mouse", p.Name)
	assert.Equal(t, "Electronics", p.CategoryName)
	assert.Equal(t, "49.99", p.Price.String())
	assert.Equal(t, 0, p.StockQuantity)
	assert.False(t, p.CreatedAt.IsZero())

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_List_Filtros(t *testing.T) {
	db := openSeeded(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	inStock, outOfStock := true, false
	minPrice, maxPrice := decimal.RequireFromString("49.99"), decimal.NewFromInt(100)
	electronics := int64(2)

	tests := []struct {
		name   string
		filter repository.ProductFilter
		want   []string
	}{
		{"sin filtros", repository.ProductFilter{}, []string{"Laptop Pro", "Wireless Mouse", "Coffee Maker", "Yoga Mat"}},
		{"categoria", repository.ProductFilter{CategoryID: &electronics}, []string{"Laptop Pro", "Wireless Mouse"}},
		{"rango de precio inclusivo", repository.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}, []string{"Wireless Mouse", "Coffee Maker"}},
		{"con stock", repository.ProductFilter{InStock: &inStock}, []string{"Laptop Pro", "Coffee Maker", "Yoga Mat"}},
		{"sin stock", repository.ProductFilter{InStock: &outOfStock}, []string{"Wireless Mouse"}},
		{"nombre sin distinguir mayusculas", repository.ProductFilter{Name: "MOUSE"}, []string{"Wireless Mouse"}},
		{"nombre de categoria parcial", repository.ProductFilter{CategoryName: "elec"}, []string{"Laptop Pro", "Wireless Mouse"}},
		{"sin coincidencias", repository.ProductFilter{Name: "tablet"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(list))
		})
	}
}

func TestProductRepo_List_OrdenYPaginacion(t *testing.T) {
	db := openSeeded(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	list, err := repo.List(ctx, repository.ProductFilter{SortBy: repository.SortByPrice, Descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop Pro", "Coffee Maker", "Wireless Mouse", "Yoga Mat"}, names(list))

	list, err = repo.List(ctx, repository.ProductFilter{SortBy: repository.SortByName})
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee Maker", "Laptop Pro", "Wireless Mouse", "Yoga Mat"}, names(list))

	list, err = repo.List(ctx, repository.ProductFilter{SortBy: repository.SortByStock})
	require.NoError(t, err)
	assert.Equal(t, []string{"Wireless Mouse", "Laptop Pro", "Coffee Maker", "Yoga Mat"}, names(list))

	// Empate por categoría: desempata el id.
	list, err = repo.List(ctx, repository.ProductFilter{SortBy: repository.SortByCategory})
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop Pro", "Wireless Mouse", "Coffee Maker", "Yoga Mat"}, names(list))

	list, err = repo.List(ctx, repository.ProductFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee Maker", "Yoga Mat"}, names(list))

	list, err = repo.List(ctx, repository.ProductFilter{Limit: 10, Offset: 40})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductRepo_CreateUpdateDelete(t *testing.T) {
	db := openSeeded(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &entity.Product{Name: "Tent", CategoryID: 3, Price: decimal.RequireFromString("199.50"), StockQuantity: 4, CreatedAt: created}
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, int64(5), p.ID)

	p.Name = "Tent XL"
	p.StockQuantity = 0
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tent XL", got.Name)
	assert.Equal(t, 0, got.StockQuantity)
	assert.Equal(t, "Sports", got.CategoryName)
	assert.True(t, got.CreatedAt.Equal(created))

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	err = repo.Update(ctx, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_Create_CategoriaInexistente(t *testing.T) {
	db := openSeeded(t)
	repo := NewProductRepository(db)

	err := repo.Create(context.Background(), &entity.Product{Name: "Ghost", CategoryID: 99, Price: decimal.NewFromInt(1), CreatedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestTxRunner_RollbackAnteError(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	ctx := context.Background()

	err = NewTxRunner(db).Run(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
		if err := categoryRepo.Create(ctx, &entity.Category{Name: "Garden", CreatedAt: time.Now()}); err != nil {
			return err
		}
		return productRepo.Create(ctx, &entity.Product{Name: "Hose", CategoryID: 42, Price: decimal.NewFromInt(10), CreatedAt: time.Now()})
	})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	n, err := NewCategoryRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
