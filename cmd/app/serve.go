package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"catalog/cmd/fx/category_fx"
	"catalog/cmd/fx/controllers_fx"
	"catalog/cmd/fx/core_fx"
	"catalog/cmd/fx/db_fx"
	"catalog/cmd/fx/flash_fx"
	"catalog/cmd/fx/product_fx"
	"catalog/internal/api"
	"catalog/internal/api/controllers"
	"catalog/internal/config"
	"catalog/internal/i18n"
	"catalog/internal/web"
	"catalog/pkg/flash"
)

func newServeCommand(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				fx.Supply(cfg()),
				core_fx.Module,
				db_fx.Module,
				flash_fx.Module,
				category_fx.Module,
				product_fx.Module,
				controllers_fx.Module,

				fx.Provide(web.NewTemplate),
				fx.Provide(ProvideRouter),
				fx.Invoke(StartServer),
				fx.NopLogger,
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	resolver *i18n.Resolver,
	store flash.Store,
	tmpl *template.Template,
	productController *controllers.ProductController,
	categoryController *controllers.CategoryController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.GinMode)
	return api.NewRouter(api.RouterDeps{
		Config:     cfg,
		Log:        log,
		Resolver:   resolver,
		Flash:      store,
		Template:   tmpl,
		Products:   productController,
		Categories: categoryController,
		Health:     healthController,
	})
}
