package sqlite

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type categoryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (categoryModel) TableName() string { return "categories" }

// productModel: price con afinidad NUMERIC para que SQLite compare y ordene numéricamente.
type productModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"size:200;not null"`
	CategoryID    int64           `gorm:"not null;index"`
	Category      categoryModel   `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
}

func (productModel) TableName() string { return "products" }

// productRow fila del join products/categories.
type productRow struct {
	ID            int64
	Name          string
	CategoryID    int64
	CategoryName  string
	Price         decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:            r.ID,
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		CategoryName:  r.CategoryName,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		CreatedAt:     r.CreatedAt,
	}
}

func (m categoryModel) toEntity() *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
}
