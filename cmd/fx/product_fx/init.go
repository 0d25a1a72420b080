package product_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog/internal/config"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/storage"
)

var Module = fx.Provide(
	provideProductRepo, provideImageStore, provideProductService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideImageStore(cfg *config.Config) (storage.ImageStore, error) {
	return storage.NewDiskImageStore(cfg.UploadFolder, cfg.AllowedExtensions)
}

func provideProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	images storage.ImageStore,
	log *zap.Logger,
) services.ProductServiceInterface {
	return services.NewProductService(productRepo, categoryRepo, images, log)
}
