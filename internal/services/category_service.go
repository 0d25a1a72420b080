package services

import (
	"context"

	"go.uber.org/zap"

	"catalog/internal/models/db_models"
	"catalog/internal/models/request_models"
	"catalog/internal/models/response_models"
	"catalog/internal/repositories"
	"catalog/pkg/utils"
)

type CategoryServiceInterface interface {
	GetCategoryByID(ctx context.Context, id uint) (response_models.Category, error)
	ListCategories(ctx context.Context) ([]response_models.Category, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (response_models.Category, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		log:          log,
	}
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (response_models.Category, error) {
	category, err := s.categoryRepo.GetByIDWithProducts(ctx, id)
	if err != nil {
		s.log.Error("Error fetching category", zap.Uint("id", id), zap.Error(err))
		return response_models.Category{}, utils.ErrDatabaseError
	}
	if category == nil {
		return response_models.Category{}, utils.ErrCategoryNotFound
	}

	resp := response_models.Category{
		ID:       category.ID,
		Name:     category.Name,
		Products: make([]response_models.Product, 0, len(category.Products)),
	}
	for _, p := range category.Products {
		p.Category = db_models.Category{BaseModel: category.BaseModel, Name: category.Name}
		resp.Products = append(resp.Products, ToProductResponse(p))
	}
	return resp, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]response_models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.log.Error("Error listing categories", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := make([]response_models.Category, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, response_models.Category{ID: c.ID, Name: c.Name})
	}
	return resp, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (response_models.Category, error) {
	category := &db_models.Category{Name: req.Name}
	if _, err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		s.log.Error("Error creating category", zap.Error(err))
		return response_models.Category{}, utils.ErrDatabaseError
	}

	s.log.Info("Category created", zap.Uint("id", category.ID), zap.String("name", category.Name))
	return response_models.Category{ID: category.ID, Name: category.Name}, nil
}
