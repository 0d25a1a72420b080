package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"catalog/internal/models/db_models"
	"catalog/internal/models/request_models"
	"catalog/internal/models/response_models"
	"catalog/internal/repositories"
	"catalog/internal/storage"
	"catalog/pkg/utils"
)

// PageSize is the fixed number of products per listing page.
const PageSize = 10

type ProductServiceInterface interface {
	CountProducts(ctx context.Context) (response_models.HomeResponse, error)
	GetProductByID(ctx context.Context, id uint) (response_models.Product, error)
	ListProducts(ctx context.Context, page int) (response_models.Page[response_models.Product], error)
	SearchProducts(ctx context.Context, req request_models.ProductSearchRequest, page int) (response_models.Page[response_models.Product], error)
	CreateProduct(ctx context.Context, req request_models.CreateProductRequest) (response_models.Product, error)
}

type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	images       storage.ImageStore
	log          *zap.Logger
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	images storage.ImageStore,
	log *zap.Logger,
) ProductServiceInterface {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		images:       images,
		log:          log,
	}
}

func (s *ProductService) CountProducts(ctx context.Context) (response_models.HomeResponse, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		s.log.Error("Error counting products", zap.Error(err))
		return response_models.HomeResponse{}, utils.ErrDatabaseError
	}
	s.log.Info("Home page", zap.Int64("products", count))
	return response_models.HomeResponse{Count: count}, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (response_models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Error fetching product", zap.Uint("id", id), zap.Error(err))
		return response_models.Product{}, utils.ErrDatabaseError
	}
	if product == nil {
		return response_models.Product{}, utils.ErrProductNotFound
	}
	return ToProductResponse(*product), nil
}

func (s *ProductService) ListProducts(ctx context.Context, page int) (response_models.Page[response_models.Product], error) {
	return s.search(ctx, repositories.ProductFilter{}, page)
}

func (s *ProductService) SearchProducts(ctx context.Context, req request_models.ProductSearchRequest, page int) (response_models.Page[response_models.Product], error) {
	filter, err := ParseProductFilter(req)
	if err != nil {
		return response_models.Page[response_models.Product]{}, err
	}
	return s.search(ctx, filter, page)
}

func (s *ProductService) search(ctx context.Context, filter repositories.ProductFilter, page int) (response_models.Page[response_models.Product], error) {
	if page < 1 {
		return response_models.Page[response_models.Product]{}, utils.ErrPageNotFound
	}

	var (
		products []db_models.Product
		total    int64
		err      error
	)
	if filter.IsZero() {
		products, total, err = s.productRepo.List(ctx, page, PageSize)
	} else {
		products, total, err = s.productRepo.Search(ctx, filter, page, PageSize)
	}
	if err != nil {
		s.log.Error("Error searching products", zap.Error(err))
		return response_models.Page[response_models.Product]{}, utils.ErrDatabaseError
	}

	// an empty page past the end is a 404, page 1 is always valid
	if len(products) == 0 && page != 1 {
		return response_models.Page[response_models.Product]{}, utils.ErrPageNotFound
	}

	items := make([]response_models.Product, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return response_models.NewPage(items, page, PageSize, total), nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req request_models.CreateProductRequest) (response_models.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return response_models.Product{}, utils.ErrInvalidPrice
	}

	category, err := s.categoryRepo.GetByID(ctx, req.Category)
	if err != nil {
		s.log.Error("Error fetching category", zap.Uint("id", req.Category), zap.Error(err))
		return response_models.Product{}, utils.ErrDatabaseError
	}
	if category == nil {
		return response_models.Product{}, utils.ErrCategoryNotFound
	}

	filename := ""
	if req.Image != nil && s.images.Allowed(req.Image.Filename) {
		filename, err = s.images.Save(req.Image)
		if errors.Is(err, storage.ErrUnusableName) {
			s.log.Warn("Skipping image with unusable name", zap.String("filename", req.Image.Filename))
			filename = ""
		} else if err != nil {
			s.log.Error("Error saving image", zap.String("filename", req.Image.Filename), zap.Error(err))
			return response_models.Product{}, utils.ErrUploadFailed
		}
	}

	product := &db_models.Product{
		Name:       req.Name,
		Price:      price,
		Company:    req.Company,
		Image:      filename,
		CategoryID: category.ID,
	}
	if _, err := s.productRepo.CreateProduct(ctx, product); err != nil {
		s.log.Error("Error creating product", zap.Error(err))
		if rmErr := s.images.Remove(filename); rmErr != nil {
			s.log.Error("Error removing orphaned image", zap.String("filename", filename), zap.Error(rmErr))
		}
		return response_models.Product{}, utils.ErrDatabaseError
	}
	product.Category = *category

	s.log.Info("Product created", zap.Uint("id", product.ID), zap.String("name", product.Name))
	return ToProductResponse(*product), nil
}

// ParseProductFilter turns raw query criteria into a repository filter.
// A request without criteria yields the zero filter, which lists everything.
func ParseProductFilter(req request_models.ProductSearchRequest) (repositories.ProductFilter, error) {
	if req.IsEmpty() {
		return repositories.ProductFilter{}, nil
	}
	filter := repositories.ProductFilter{
		Name:     req.Name,
		Company:  req.Company,
		Category: req.Category,
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return repositories.ProductFilter{}, utils.ErrInvalidPrice
		}
		filter.Price = &price
	}
	return filter, nil
}

func ToProductResponse(p db_models.Product) response_models.Product {
	return response_models.Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price.StringFixed(2),
		Company:      p.Company,
		Image:        p.Image,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
	}
}
