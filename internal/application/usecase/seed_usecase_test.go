package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeed_CatalogoVacio(t *testing.T) {
	products := &mockProductRepo{}
	categories := &mockCategoryRepo{}
	categories.On("Count", mock.Anything).Return(int64(0), nil)

	nextID := int64(0)
	categories.On("Create", mock.Anything, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			nextID++
			args.Get(1).(*entity.Category).ID = nextID
		}).Return(nil)

	var created []*entity.Product
	products.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) { created = append(created, args.Get(1).(*entity.Product)) }).
		Return(nil)

	seeded, err := NewCatalogSeeder(&fakeTxRunner{categories: categories, products: products}).Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, seeded)
	categories.AssertNumberOfCalls(t, "Create", 3)
	require.Len(t, created, 4)

	// Home=1, Electronics=2, Sports=3
	assert.Equal(t, "Laptop Pro", created[0].Name)
	assert.Equal(t, int64(2), created[0].CategoryID)
	assert.Equal(t, 0, created[1].StockQuantity)
	assert.Equal(t, int64(1), created[2].CategoryID)
	assert.Equal(t, int64(3), created[3].CategoryID)
}

func TestSeed_OmiteSiHayCategorias(t *testing.T) {
	products := &mockProductRepo{}
	categories := &mockCategoryRepo{}
	categories.On("Count", mock.Anything).Return(int64(3), nil)

	seeded, err := NewCatalogSeeder(&fakeTxRunner{categories: categories, products: products}).Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeed_PropagaErrores(t *testing.T) {
	products := &mockProductRepo{}
	categories := &mockCategoryRepo{}
	boom := errors.New("boom")
	categories.On("Count", mock.Anything).Return(int64(0), nil)
	categories.On("Create", mock.Anything, mock.Anything).Return(boom)

	seeded, err := NewCatalogSeeder(&fakeTxRunner{categories: categories, products: products}).Seed(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, seeded)
}
