package core_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"catalog/internal/config"
	"catalog/internal/i18n"
	"catalog/internal/logger"
)

var Module = fx.Provide(
	provideLogger, provideResolver)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log, nil
}

func provideResolver(cfg *config.Config) *i18n.Resolver {
	return i18n.NewResolver(cfg.AllowedLanguages, cfg.DefaultLanguage)
}
