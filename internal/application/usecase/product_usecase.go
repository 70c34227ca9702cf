package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// MaxExportRows tope de filas de la lista de precios en PDF.
const MaxExportRows = 1000

// Precio admitido por la columna NUMERIC(12,2): dos decimales y menor que 10^10.
const priceScale = 2

var maxPriceExclusive = decimal.New(1, 10)

// ProductUseCase consultas y comandos sobre productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	priceList    PriceListGenerator
	now          func() time.Time
}

// NewProductUseCase construye el caso de uso. priceList puede ser nil si no se expone la exportación.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, priceList PriceListGenerator) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		priceList:    priceList,
		now:          time.Now,
	}
}

// List aplica filtros, orden y paginación y proyecta cada fila según su stock.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ListProductsQuery) ([]dto.ProductView, error) {
	if err := q.PageRequest.Validate(); err != nil {
		return nil, err
	}
	filter := toProductFilter(q)
	filter.Limit = q.PageSize
	filter.Offset = q.Offset()

	list, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]dto.ProductView, 0, len(list))
	for _, p := range list {
		views = append(views, toProductView(p))
	}
	return views, nil
}

// GetByID obtiene un producto por ID. ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (dto.ProductView, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductView(product), nil
}

// Create crea un producto. La categoría debe existir; si no, no se persiste nada.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (dto.ProductView, error) {
	name := strings.TrimSpace(in.Name)
	if err := checkProductFields(&name, &in.Price, &in.StockQuantity); err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrCategoryNotFound, in.CategoryID)
	}
	product := &entity.Product{
		Name:          name,
		CategoryID:    category.ID,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CreatedAt:     uc.now().UTC(),
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.CategoryName = category.Name
	return toProductView(product), nil
}

// Update aplica solo los campos no nulos. CreatedAt nunca cambia.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	var name *string
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		name = &trimmed
	}
	if err := checkProductFields(name, in.Price, in.StockQuantity); err != nil {
		return err
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return fmt.Errorf("%w: id %d", domain.ErrCategoryNotFound, *in.CategoryID)
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	if name != nil {
		product.Name = *name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return err
	}
	return nil
}

// Delete elimina un producto de forma permanente. ErrProductNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrProductNotFound
	}
	return nil
}

// ExportPriceList genera el PDF con los productos que cumplen los filtros de q.
// La paginación de q se ignora; se exportan como máximo MaxExportRows filas.
func (uc *ProductUseCase) ExportPriceList(ctx context.Context, q dto.ListProductsQuery) ([]byte, error) {
	if uc.priceList == nil {
		return nil, errors.New("price list generator not configured")
	}
	filter := toProductFilter(q)
	filter.Limit = MaxExportRows
	filter.Offset = 0

	list, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.priceList.GeneratePriceList(ctx, "Product price list", list)
}

// checkProductFields valida los invariantes de los campos presentes (nil = no se valida).
func checkProductFields(name *string, price *decimal.Decimal, stock *int) error {
	fields := map[string]string{}
	if name != nil && *name == "" {
		fields["name"] = "required"
	}
	if price != nil {
		switch {
		case price.IsNegative():
			fields["price"] = "gte=0"
		case !price.Equal(price.Round(priceScale)):
			fields["price"] = fmt.Sprintf("scale=%d", priceScale)
		case price.GreaterThanOrEqual(maxPriceExclusive):
			fields["price"] = "lt=" + maxPriceExclusive.String()
		}
	}
	if stock != nil && *stock < 0 {
		fields["stockQuantity"] = "gte=0"
	}
	if len(fields) > 0 {
		return &dto.ValidationError{Fields: fields}
	}
	return nil
}

func toProductFilter(q dto.ListProductsQuery) repository.ProductFilter {
	return repository.ProductFilter{
		CategoryID:   q.CategoryID,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		InStock:      q.InStock,
		Name:         strings.TrimSpace(q.Name),
		CategoryName: strings.TrimSpace(q.CategoryName),
		SortBy:       repository.ParseSortField(q.SortBy),
		Descending:   strings.EqualFold(strings.TrimSpace(q.SortOrder), "desc"),
	}
}

// toProductView elige la proyección según el stock: completa si hay existencias, reducida si no.
func toProductView(p *entity.Product) dto.ProductView {
	summary := dto.ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		CreatedAt:    p.CreatedAt,
	}
	if p.InStock() {
		return dto.FullProduct{ProductSummary: summary, StockQuantity: p.StockQuantity, InStock: true}
	}
	return dto.ReducedProduct{ProductSummary: summary}
}
