package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre gorm/SQLite.
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository construye el adaptador. db puede ser una transacción.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	m := categoryModel{Name: category.Name, CreatedAt: category.CreatedAt}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = m.ID
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var m categoryModel
	err := r.db.WithContext(ctx).Take(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return m.toEntity(), nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var models []categoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&categoryModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}
