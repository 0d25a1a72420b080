package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog/internal/i18n"
	"catalog/internal/models/request_models"
	"catalog/internal/services"
	"catalog/pkg/flash"
	"catalog/pkg/utils"
)

type ProductController struct {
	productService  services.ProductServiceInterface
	categoryService services.CategoryServiceInterface
	maxUploadBytes  int64
}

func NewProductController(
	productService services.ProductServiceInterface,
	categoryService services.CategoryServiceInterface,
	maxUploadBytes int64,
) *ProductController {
	return &ProductController{
		productService:  productService,
		categoryService: categoryService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// Home shows how many products the catalog holds.
func (p *ProductController) Home(c *gin.Context) {
	home, err := p.productService.CountProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.Render(c, http.StatusOK, "home.html", home, "Home fetched successfully")
}

func (p *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.HandleServiceError(c, utils.ErrProductNotFound)
		return
	}

	product, err := p.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.Render(c, http.StatusOK, "product.html", product, "Product fetched successfully")
}

func (p *ProductController) ListProducts(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrPageNotFound)
		return
	}

	products, err := p.productService.ListProducts(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RenderWith(c, http.StatusOK, "products.html", products, gin.H{
		"BaseURL": "/products",
		"Query":   "",
	}, "Products fetched successfully")
}

// SearchProducts filters by the name, price, company and category query
// parameters. Absent parameters do not restrict the result.
func (p *ProductController) SearchProducts(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrPageNotFound)
		return
	}

	var req request_models.ProductSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	products, err := p.productService.SearchProducts(c.Request.Context(), req, page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RenderWith(c, http.StatusOK, "products.html", products, gin.H{
		"BaseURL": "/product-search",
		"Query":   c.Request.URL.RawQuery,
		"Search":  req,
	}, "Products fetched successfully")
}

func (p *ProductController) CreateProductForm(c *gin.Context) {
	p.renderProductForm(c, http.StatusOK, request_models.CreateProductRequest{}, nil)
}

func (p *ProductController) CreateProduct(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, p.maxUploadBytes)

	var req request_models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, "Upload is too large")
			return
		}
		p.renderProductForm(c, http.StatusUnprocessableEntity, req, utils.BindingErrors(err))
		return
	}

	product, err := p.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPrice) {
			p.renderProductForm(c, http.StatusUnprocessableEntity, req, utils.FieldErrors{"price": "numeric"})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	lang := c.GetString("lang")
	message := i18n.T(lang, "The product %s has been created", product.Name)
	if utils.WantsJSON(c) {
		c.JSON(http.StatusCreated, utils.APIResponse{
			Status:  "success",
			Code:    http.StatusCreated,
			Message: message,
			TraceID: c.GetString("trace_id"),
			Data:    product,
		})
		return
	}
	flash.Add(c, "success", message)
	c.Redirect(http.StatusSeeOther, langURL(c, "/product/%d", product.ID))
}

// renderProductForm shows the create form with the category choices.
func (p *ProductController) renderProductForm(c *gin.Context, code int, req request_models.CreateProductRequest, errs utils.FieldErrors) {
	categories, err := p.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RenderForm(c, code, "product-create.html", req, errs, gin.H{
		"Categories": categories,
	})
}
