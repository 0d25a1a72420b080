package api

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog/internal/api/controllers"
	"catalog/internal/config"
	"catalog/internal/i18n"
	"catalog/pkg/flash"
	"catalog/pkg/middleware"
	"catalog/pkg/utils"
)

type RouterDeps struct {
	Config     *config.Config
	Log        *zap.Logger
	Resolver   *i18n.Resolver
	Flash      flash.Store
	Template   *template.Template
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Health     *controllers.HealthController
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(flash.Middleware(d.Flash))
	r.SetHTMLTemplate(d.Template)
	r.MaxMultipartMemory = d.Config.MaxUploadBytes

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d RouterDeps) {
	r.GET("/", func(c *gin.Context) {
		lang := d.Resolver.Match(c.GetHeader("Accept-Language"))
		c.Redirect(http.StatusFound, "/"+lang+"/")
	})
	r.GET("/healthz", d.Health.Health)
	r.Static("/uploads", d.Config.UploadFolder)
	r.NoRoute(notFound(d.Resolver, d.Log))

	lang := r.Group("/:lang", middleware.LocaleMiddleware(d.Resolver))
	lang.GET("/", d.Products.Home)
	lang.GET("/home", d.Products.Home)

	lang.GET("/product/:id", d.Products.GetProduct)
	lang.GET("/product-create", d.Products.CreateProductForm)
	lang.POST("/product-create", d.Products.CreateProduct)
	lang.GET("/products", d.Products.ListProducts)
	lang.GET("/products/:page", d.Products.ListProducts)
	lang.GET("/product-search", d.Products.SearchProducts)
	lang.GET("/product-search/:page", d.Products.SearchProducts)

	lang.GET("/categories", d.Categories.ListCategories)
	lang.GET("/category/:id", d.Categories.GetCategory)
	lang.GET("/category-create", d.Categories.CreateCategoryForm)
	lang.POST("/category-create", d.Categories.CreateCategory)
}

// notFound renders the themed 404 page for unmatched routes, taking the
// language from the first path segment when it is an allowed one.
func notFound(resolver *i18n.Resolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		first, rest, found := strings.Cut(path, "/")
		c.Set("lang", resolver.Resolve(first))
		if found && resolver.Allowed(first) {
			c.Set("lang_path", "/"+rest)
		} else {
			c.Set("lang_path", "/")
		}

		log.Warn("Route not found",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", c.GetString("trace_id")))
		utils.RespondError(c, http.StatusNotFound, "Page not found")
	}
}
