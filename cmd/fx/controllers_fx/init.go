package controllers_fx

import (
	"go.uber.org/fx"

	"catalog/internal/api/controllers"
	"catalog/internal/config"
	"catalog/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideProductController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewHealthController))

func provideProductController(
	cfg *config.Config,
	productService services.ProductServiceInterface,
	categoryService services.CategoryServiceInterface,
) *controllers.ProductController {
	return controllers.NewProductController(productService, categoryService, cfg.MaxUploadBytes)
}
