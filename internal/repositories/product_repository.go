package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"catalog/internal/models/db_models"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *db_models.Product) (uint, error)
	GetByID(ctx context.Context, id uint) (*db_models.Product, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Product, int64, error)
	Search(ctx context.Context, filter ProductFilter, page, pageSize int) ([]db_models.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *db_models.Product) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Category").Create(product).Error
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetByID returns nil and no error when the product does not exist.
func (r *productRepository) GetByID(ctx context.Context, id uint) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "products.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *productRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Product, int64, error) {
	return r.Search(ctx, ProductFilter{}, page, pageSize)
}

// Search returns one page of products matching filter and the total match count.
func (r *productRepository) Search(ctx context.Context, filter ProductFilter, page, pageSize int) ([]db_models.Product, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Product{}).
		Scopes(filter.Scope()).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var products []db_models.Product
	err = r.db.WithContext(ctx).
		Model(&db_models.Product{}).
		Scopes(filter.Scope(), Paginate(page, pageSize)).
		Preload("Category").
		Order("products.id ASC").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
