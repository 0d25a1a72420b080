package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog/internal/i18n"
	"catalog/internal/models/request_models"
	"catalog/internal/services"
	"catalog/pkg/flash"
	"catalog/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.Render(c, http.StatusOK, "categories.html", categories, "Categories fetched successfully")
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.HandleServiceError(c, utils.ErrCategoryNotFound)
		return
	}

	category, err := cc.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.Render(c, http.StatusOK, "category.html", category, "Category fetched successfully")
}

func (cc *CategoryController) CreateCategoryForm(c *gin.Context) {
	utils.RenderForm(c, http.StatusOK, "category-create.html", request_models.CreateCategoryRequest{}, nil, nil)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RenderForm(c, http.StatusUnprocessableEntity, "category-create.html", req, utils.BindingErrors(err), nil)
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := i18n.T(c.GetString("lang"), "The category %s has been created", category.Name)
	if utils.WantsJSON(c) {
		c.JSON(http.StatusCreated, utils.APIResponse{
			Status:  "success",
			Code:    http.StatusCreated,
			Message: message,
			TraceID: c.GetString("trace_id"),
			Data:    category,
		})
		return
	}
	flash.Add(c, "success", message)
	c.Redirect(http.StatusSeeOther, langURL(c, "/category/%d", category.ID))
}
