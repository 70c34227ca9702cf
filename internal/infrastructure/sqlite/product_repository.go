package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productSortColumns = map[repository.ProductSortField]string{
	repository.SortByPrice:    "p.price",
	repository.SortByName:     "p.name",
	repository.SortByCategory: "c.name",
	repository.SortByStock:    "p.stock_quantity",
}

// ProductRepo implementación de ProductRepository sobre gorm/SQLite.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador. db puede ser una transacción.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	m := productModel{
		Name:          product.Name,
		CategoryID:    product.CategoryID,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		CreatedAt:     product.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateWriteError("insert product", err)
	}
	product.ID = m.ID
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var row productRow
	err := r.joined(ctx).Where("p.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// Update reescribe los campos editables; Select fuerza a gorm a escribir también los valores cero.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res := r.db.WithContext(ctx).
		Model(&productModel{ID: product.ID}).
		Select("name", "category_id", "price", "stock_quantity").
		Updates(productModel{
			Name:          product.Name,
			CategoryID:    product.CategoryID,
			Price:         product.Price,
			StockQuantity: product.StockQuantity,
		})
	if res.Error != nil {
		return translateWriteError("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&productModel{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete product: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	q := r.joined(ctx)
	if f.CategoryID != nil {
		q = q.Where("p.category_id = ?", *f.CategoryID)
	}
	if f.MinPrice != nil {
		q = q.Where("p.price >= ?", f.MinPrice.InexactFloat64())
	}
	if f.MaxPrice != nil {
		q = q.Where("p.price <= ?", f.MaxPrice.InexactFloat64())
	}
	if f.InStock != nil {
		if *f.InStock {
			q = q.Where("p.stock_quantity > 0")
		} else {
			q = q.Where("p.stock_quantity = 0")
		}
	}
	if f.Name != "" {
		q = q.Where("instr(lower(p.name), lower(?)) > 0", f.Name)
	}
	if f.CategoryName != "" {
		q = q.Where("instr(lower(c.name), lower(?)) > 0", f.CategoryName)
	}

	if column, ok := productSortColumns[f.SortBy]; ok {
		dir := " ASC"
		if f.Descending {
			dir = " DESC"
		}
		q = q.Order(column + dir)
	}
	q = q.Order("p.id ASC")

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []productRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&productModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products AS p").
		Select("p.id, p.name, p.category_id, c.name AS category_name, p.price, p.stock_quantity, p.created_at").
		Joins("JOIN categories AS c ON c.id = p.category_id")
}

func translateWriteError(op string, err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return domain.ErrCategoryNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
