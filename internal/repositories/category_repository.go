package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"catalog/internal/models/db_models"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *db_models.Category) (uint, error)
	GetByID(ctx context.Context, id uint) (*db_models.Category, error)
	GetByIDWithProducts(ctx context.Context, id uint) (*db_models.Category, error)
	List(ctx context.Context) ([]db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *db_models.Category) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(category).Error
	})
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByIDWithProducts(ctx context.Context, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.id ASC")
		}).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
