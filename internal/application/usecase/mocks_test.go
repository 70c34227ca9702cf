package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *mockProductRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Category)
	return list, args.Error(1)
}

func (m *mockCategoryRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeTxRunner ejecuta fn sin transacción real, con los mocks dados.
type fakeTxRunner struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	return fn(r.categories, r.products)
}

type fakePriceList struct {
	title    string
	products []*entity.Product
}

func (g *fakePriceList) GeneratePriceList(_ context.Context, title string, products []*entity.Product) ([]byte, error) {
	g.title = title
	g.products = products
	return []byte("%PDF-fake"), nil
}
