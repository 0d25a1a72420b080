package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"catalog/internal/models/request_models"
	"catalog/internal/models/response_models"
	"catalog/pkg/utils"
)

type stubProductService struct {
	createErr error
}

func (stubProductService) CountProducts(context.Context) (response_models.HomeResponse, error) {
	return response_models.HomeResponse{}, nil
}

func (stubProductService) GetProductByID(context.Context, uint) (response_models.Product, error) {
	return response_models.Product{}, utils.ErrProductNotFound
}

func (stubProductService) ListProducts(context.Context, int) (response_models.Page[response_models.Product], error) {
	return response_models.Page[response_models.Product]{}, nil
}

func (stubProductService) SearchProducts(context.Context, request_models.ProductSearchRequest, int) (response_models.Page[response_models.Product], error) {
	return response_models.Page[response_models.Product]{}, nil
}

func (s stubProductService) CreateProduct(context.Context, request_models.CreateProductRequest) (response_models.Product, error) {
	return response_models.Product{}, s.createErr
}

type stubCategoryService struct {
	listErr error
}

func (stubCategoryService) GetCategoryByID(context.Context, uint) (response_models.Category, error) {
	return response_models.Category{}, utils.ErrCategoryNotFound
}

func (s stubCategoryService) ListCategories(context.Context) ([]response_models.Category, error) {
	return []response_models.Category{}, s.listErr
}

func (stubCategoryService) CreateCategory(context.Context, request_models.CreateCategoryRequest) (response_models.Category, error) {
	return response_models.Category{}, nil
}

func postProduct(t *testing.T, pc *ProductController) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/:lang/product-create", pc.CreateProduct)

	form := url.Values{"name": {"Hammer"}, "price": {"9.99"}, "category": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/en/product-create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(utils.RequestedWithHeader, utils.XMLHttpRequest)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct_InvalidPriceRerendersForm(t *testing.T) {
	pc := NewProductController(stubProductService{createErr: utils.ErrInvalidPrice}, stubCategoryService{}, 1<<20)

	w := postProduct(t, pc)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"numeric"`)
}

func TestCreateProduct_InvalidPriceWithCategoryListFailure(t *testing.T) {
	pc := NewProductController(
		stubProductService{createErr: utils.ErrInvalidPrice},
		stubCategoryService{listErr: utils.ErrDatabaseError},
		1<<20,
	)

	w := postProduct(t, pc)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), `"price":"numeric"`)
}
